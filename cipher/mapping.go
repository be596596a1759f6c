package cipher

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Letters 是映射覆盖的字母表。
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	alphabetSize = len(Letters)

	// MaxMappingAttempts 是生成无不动点映射的最大尝试次数。
	MaxMappingAttempts = 100
)

// Mapping 描述一个大小写共用的单表替换：m[i] 为明文字母 i 对应的密文字母序号。
type Mapping [alphabetSize]byte

// Identity 返回恒等映射，仅用于测试与校验。
func Identity() Mapping {
	var m Mapping
	for i := range m {
		m[i] = byte(i)
	}
	return m
}

// Inverse 返回逆映射：inv[m[i]] = i。
func (m Mapping) Inverse() Mapping {
	var inv Mapping
	for i, v := range m {
		inv[v] = byte(i)
	}
	return inv
}

// Funky 判断映射中是否存在映射到自身的字母。
func (m Mapping) Funky() bool {
	for i, v := range m {
		if int(v) == i {
			return true
		}
	}
	return false
}

// Bijective 判断映射是否为 26 个字母上的双射。
func (m Mapping) Bijective() bool {
	var seen [alphabetSize]bool
	for _, v := range m {
		if int(v) >= alphabetSize || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Apply 按映射替换文本中的 ASCII 字母，保持大小写，其余字符原样保留。
func (m Mapping) Apply(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteByte('A' + m[r-'A'])
		case r >= 'a' && r <= 'z':
			b.WriteByte('a' + m[r-'a'])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Clear 返回明文字母表的成对表示，如 "AaBb...Zz"。
func (m Mapping) Clear() string {
	return pairs(Identity())
}

// Subst 返回与 Clear 对齐的密文字母表成对表示。
func (m Mapping) Subst() string {
	return pairs(m)
}

func (m Mapping) String() string {
	return fmt.Sprintf("%s -> %s", m.Clear(), m.Subst())
}

func pairs(m Mapping) string {
	var b strings.Builder
	b.Grow(alphabetSize * 2)
	for _, v := range m {
		b.WriteByte('A' + v)
		b.WriteByte('a' + v)
	}
	return b.String()
}

// shuffled 生成一个均匀随机的字母排列，不做不动点检查。
func shuffled(rng *rand.Rand) Mapping {
	m := Identity()
	rng.Shuffle(alphabetSize, func(i, j int) { m[i], m[j] = m[j], m[i] })
	return m
}
