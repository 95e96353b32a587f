package normalize

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type priceKind uint8

const (
	priceAbsent priceKind = iota
	priceNumber
	priceString
)

// RawPrice is a price as it arrived on the wire: a JSON number, a JSON string
// (the backend serializes decimals as "89.99"), or absent.
type RawPrice struct {
	kind   priceKind
	number float64
	text   string
}

func NumberPrice(v float64) RawPrice { return RawPrice{kind: priceNumber, number: v} }

func StringPrice(s string) RawPrice { return RawPrice{kind: priceString, text: s} }

func (p RawPrice) IsNumber() bool { return p.kind == priceNumber }

func (p RawPrice) IsString() bool { return p.kind == priceString }

// UnmarshalJSON never fails. Values that are neither numbers nor strings are
// kept as unparsable text and normalize to zero.
func (p *RawPrice) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = RawPrice{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*p = StringPrice(string(trimmed))
			return nil
		}
		*p = StringPrice(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		*p = StringPrice(string(trimmed))
		return nil
	}
	*p = NumberPrice(f)
	return nil
}

func (p RawPrice) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case priceNumber:
		return json.Marshal(p.number)
	case priceString:
		return json.Marshal(p.text)
	default:
		return []byte("null"), nil
	}
}

// NormalizePrice resolves a raw price to a non-negative number. Unparsable,
// non-finite and negative inputs yield 0.
func NormalizePrice(p RawPrice) float64 {
	var v float64
	switch p.kind {
	case priceNumber:
		v = p.number
	case priceString:
		parsed, ok := parseDecimal(p.text)
		if !ok {
			return 0
		}
		v = parsed
	default:
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || isHexLiteral(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// isHexLiteral reports hex floats ("0x1p4"), which ParseFloat would accept.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
