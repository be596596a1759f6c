package cipher

import (
	"fmt"
	"strings"
)

// Quote 是加密后的引文，创建后只读。
type Quote struct {
	Text  string
	Crypt string
	Clue  Clue
}

// Puzzle 返回印在页面上的大写密文。
func (q *Quote) Puzzle() string {
	return strings.ToUpper(q.Crypt)
}

// Mapping 返回该引文使用的替换映射。
func (q *Quote) Mapping() Mapping {
	return q.Clue.Mapping
}

// Clue 记录一对已揭示的字母以及完整映射（供答案页使用）。
type Clue struct {
	Cipher  byte
	Clear   byte
	Mapping Mapping
}

// Short 返回 "密文=明文" 形式的简短提示，例如 "Q=E"。
func (c Clue) Short() string {
	return string([]byte{c.Cipher, '=', c.Clear})
}

// Label 返回页面上绘制的提示文字。
func (c Clue) Label() string {
	return "Clue: " + c.Short()
}

// Long 返回带完整对照的提示，如 "Clue: Q=E (AaBb...) (QqXx...)"，括号内依次为明文与密文字母表。
func (c Clue) Long() string {
	return fmt.Sprintf("%s (%s) (%s)", c.Label(), c.Mapping.Clear(), c.Mapping.Subst())
}

// Pair 是答案表中的一行：密文字母对与明文字母对，如 "Xx" / "Aa"。
type Pair struct {
	Crypt string
	Clear string
}

// Table 按明文字母顺序返回 26 行密文/明文对照。
func (c Clue) Table() []Pair {
	clear, subst := c.Mapping.Clear(), c.Mapping.Subst()
	rows := make([]Pair, 0, alphabetSize)
	for i := 0; i < alphabetSize; i++ {
		j := i * 2
		rows = append(rows, Pair{Crypt: subst[j : j+2], Clear: clear[j : j+2]})
	}
	return rows
}
