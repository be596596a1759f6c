package layout

import (
	"strconv"
	"strings"
)

// 版式与样式中的长度默认以英寸表示；渲染器使用毫米与点。

// Unit represents the unit a length was written in.
type Unit int

const (
	UnitIN Unit = iota // inches, the default for bare numbers
	UnitMM             // millimeters
	UnitPT             // points
)

// Conversion constants.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
	InToMm = 25.4
	InToPt = 72.0
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitPT:
		return "pt"
	default:
		return "in"
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// ToMM converts this length to millimeters.
func (l Length) ToMM() float64 {
	switch l.Unit {
	case UnitMM:
		return l.Value
	case UnitPT:
		return l.Value * PtToMm
	default:
		return l.Value * InToMm
	}
}

// ToPT converts this length to points.
func (l Length) ToPT() float64 {
	switch l.Unit {
	case UnitPT:
		return l.Value
	case UnitMM:
		return l.Value * MmToPt
	default:
		return l.Value * InToPt
	}
}

// ParseLength parses "0.25", "0.25in", "6mm" or "18pt". Bare numbers are inches.
func ParseLength(value string) (Length, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, false
	}
	unit := UnitIN
	for _, suf := range []struct {
		s string
		u Unit
	}{{"mm", UnitMM}, {"in", UnitIN}, {"pt", UnitPT}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			v = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Value: f, Unit: unit}, true
}

// InchesToMM converts a profile coordinate to millimeters.
func InchesToMM(in float64) float64 { return in * InToMm }
