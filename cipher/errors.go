package cipher

import "errors"

var (
	// ErrCipherConstruction 表示在尝试上限内未找到无不动点的映射。
	ErrCipherConstruction = errors.New("cipher: no mapping without fixed points")
	// ErrCipherConsistency 表示加密结果无法经逆映射还原为原文。
	ErrCipherConsistency = errors.New("cipher: round trip mismatch")
	// ErrClueSelection 表示文本中没有可作提示的字母。
	ErrClueSelection = errors.New("cipher: no letter to use as clue")
)
