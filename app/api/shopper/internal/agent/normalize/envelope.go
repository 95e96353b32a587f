package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownEnvelope reports a list response that is neither a bare array
	// nor an object with a "results" or "data" array. It is recoverable.
	ErrUnknownEnvelope = errors.New("unrecognized product list envelope")
	// ErrMalformedItem reports array elements that were not objects and were skipped.
	ErrMalformedItem = errors.New("malformed product list item")
)

type EnvelopeKind uint8

const (
	EnvelopeUnknown EnvelopeKind = iota
	EnvelopeArray
	EnvelopeResults
	EnvelopeData
)

func (k EnvelopeKind) String() string {
	switch k {
	case EnvelopeArray:
		return "array"
	case EnvelopeResults:
		return "results"
	case EnvelopeData:
		return "data"
	default:
		return "unknown"
	}
}

// RawListEnvelope is the decoded shape of a catalog list response.
type RawListEnvelope struct {
	kind  EnvelopeKind
	items []json.RawMessage
}

func (e RawListEnvelope) Kind() EnvelopeKind { return e.kind }

// ParseEnvelope classifies body. It never fails; unrecognized input is EnvelopeUnknown.
func ParseEnvelope(body []byte) RawListEnvelope {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return RawListEnvelope{}
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return RawListEnvelope{}
		}
		return RawListEnvelope{kind: EnvelopeArray, items: items}
	case '{':
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return RawListEnvelope{}
		}
		if items, ok := asArray(wrapped["results"]); ok {
			return RawListEnvelope{kind: EnvelopeResults, items: items}
		}
		if items, ok := asArray(wrapped["data"]); ok {
			return RawListEnvelope{kind: EnvelopeData, items: items}
		}
	}
	return RawListEnvelope{}
}

// Products decodes the envelope's items. Elements that are not objects are
// skipped and reported with ErrMalformedItem.
func (e RawListEnvelope) Products() ([]RawProduct, error) {
	if e.kind == EnvelopeUnknown {
		return []RawProduct{}, ErrUnknownEnvelope
	}

	products := make([]RawProduct, 0, len(e.items))
	skipped := 0
	for _, item := range e.items {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			skipped++
			continue
		}
		var p RawProduct
		if err := json.Unmarshal(trimmed, &p); err != nil {
			skipped++
			continue
		}
		products = append(products, p)
	}
	if skipped > 0 {
		return products, fmt.Errorf("%w: skipped %d of %d", ErrMalformedItem, skipped, len(e.items))
	}
	return products, nil
}

// ExtractProductList accepts a bare array, {"results": [...]} or {"data": [...]}.
// Any other shape yields an empty, non-nil slice and ErrUnknownEnvelope.
func ExtractProductList(body []byte) ([]RawProduct, error) {
	return ParseEnvelope(body).Products()
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, false
	}
	return items, true
}
