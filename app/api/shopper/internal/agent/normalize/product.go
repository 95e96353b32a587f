package normalize

import (
	"bytes"
	"encoding/json"
	"strings"

	"SellerAgent/app/dal/catalog"
)

const untitledProduct = "Untitled product"

// RawID accepts ids sent as JSON numbers or strings.
type RawID string

func (id *RawID) UnmarshalJSON(data []byte) error {
	*id = RawID(scalarText(data))
	return nil
}

// RawProduct is a product in any of the shapes the backend has produced.
// Decoding is lenient per field: a field of the wrong type is treated as
// absent instead of failing the whole record.
type RawProduct struct {
	ID          RawID    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       RawPrice `json:"price"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

func (r *RawProduct) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = RawProduct{
		ID:          RawID(scalarText(fields["id"])),
		Name:        scalarText(fields["name"]),
		Description: scalarText(fields["description"]),
		ImageURL:    scalarText(fields["image_url"]),
		Category:    scalarText(fields["category"]),
		Tags:        tagList(fields["tags"]),
	}
	if raw, ok := fields["price"]; ok {
		_ = r.Price.UnmarshalJSON(raw)
	}
	return nil
}

// Normalize converts a raw product to the canonical model. It never fails.
func Normalize(raw RawProduct) catalog.Product {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = untitledProduct
	}
	description := strings.TrimSpace(raw.Description)
	if description == "" {
		description = name
	}
	tags := make([]string, len(raw.Tags))
	copy(tags, raw.Tags)

	return catalog.Product{
		ID:          catalog.ID(strings.TrimSpace(string(raw.ID))),
		Name:        name,
		Description: description,
		Price:       NormalizePrice(raw.Price),
		ImageURL:    strings.TrimSpace(raw.ImageURL),
		Category:    strings.TrimSpace(raw.Category),
		Tags:        tags,
	}
}

func NormalizeAll(raws []RawProduct) []catalog.Product {
	out := make([]catalog.Product, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

// scalarText returns strings unquoted and numbers/bools in their literal form.
// Objects, arrays and null yield "".
func scalarText(data json.RawMessage) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ""
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	default:
		return string(trimmed)
	}
}

// tagList accepts an array (non-string elements are kept in literal form) or
// a comma separated string.
func tagList(data json.RawMessage) []string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil
		}
		tags := make([]string, 0, len(items))
		for _, item := range items {
			if tag := scalarText(item); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	case '"':
		parts := strings.Split(scalarText(trimmed), ",")
		tags := make([]string, 0, len(parts))
		for _, part := range parts {
			if tag := strings.TrimSpace(part); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	default:
		return nil
	}
}
