package cipher

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
)

// MaxClueAttempts 是随机抽取提示字母的最大次数。
const MaxClueAttempts = 1000

// seedStream 与种子组合成 PCG 的第二个状态字，保证同一种子得到同一序列。
const seedStream = 0x9f4e8bfaa1

// Engine 负责生成替换映射、加解密与挑选提示。
// 一个 Engine 在一次运行中顺序使用，不支持并发调用。
type Engine struct {
	rng  *rand.Rand
	draw func(*rand.Rand) Mapping
}

// NewEngine 使用随机种子创建 Engine。
func NewEngine() *Engine {
	return newEngine(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededEngine 使用固定种子创建 Engine，相同种子与相同输入产生相同映射。
func NewSeededEngine(seed uint64) *Engine {
	return newEngine(rand.NewPCG(seed, seed^seedStream))
}

func newEngine(src rand.Source) *Engine {
	return &Engine{rng: rand.New(src), draw: shuffled}
}

// GenerateMapping 抽取随机排列，直到没有字母映射到自身。
func (e *Engine) GenerateMapping() (Mapping, error) {
	for attempt := 0; attempt < MaxMappingAttempts; attempt++ {
		m := e.draw(e.rng)
		if !m.Funky() {
			return m, nil
		}
	}
	return Mapping{}, fmt.Errorf("%w after %d attempts", ErrCipherConstruction, MaxMappingAttempts)
}

// Encipher 加密 text，并校验逆映射能还原原文。
func (e *Engine) Encipher(m Mapping, text string) (string, error) {
	crypt := m.Apply(text)
	if back := Decipher(m, crypt); back != text {
		return "", fmt.Errorf("%w: %q deciphers to %q", ErrCipherConsistency, text, back)
	}
	return crypt, nil
}

// Decipher 用映射的逆还原密文。
func Decipher(m Mapping, crypt string) string {
	return m.Inverse().Apply(crypt)
}

// ChooseClue 在 text 中随机取一个字母，返回它与对应密文字母。
func (e *Engine) ChooseClue(m Mapping, text string) (Clue, error) {
	runes := []rune(text)
	if len(runes) > 0 {
		for attempt := 0; attempt < MaxClueAttempts; attempt++ {
			r := runes[e.rng.IntN(len(runes))]
			if r > unicode.MaxASCII || !unicode.IsLetter(r) {
				continue
			}
			c := strings.ToUpper(string(r))
			crypt, err := e.Encipher(m, c)
			if err != nil {
				return Clue{}, err
			}
			return Clue{Cipher: crypt[0], Clear: c[0], Mapping: m}, nil
		}
	}
	return Clue{}, fmt.Errorf("%w: %q", ErrClueSelection, text)
}

// NewQuote 为一条引文生成独立的映射、密文与提示。
func (e *Engine) NewQuote(text string) (*Quote, error) {
	m, err := e.GenerateMapping()
	if err != nil {
		return nil, err
	}
	crypt, err := e.Encipher(m, text)
	if err != nil {
		return nil, err
	}
	clue, err := e.ChooseClue(m, text)
	if err != nil {
		return nil, err
	}
	return &Quote{Text: text, Crypt: crypt, Clue: clue}, nil
}
