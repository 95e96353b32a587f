package catalog

// ID is the opaque product identifier. Numeric ids keep their textual form.
type ID string

func (id ID) String() string { return string(id) }

// Product is the canonical in-memory product record.
type Product struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// Clone returns a copy that does not share the tag slice.
func (p Product) Clone() Product {
	if p.Tags != nil {
		p.Tags = append(make([]string, 0, len(p.Tags)), p.Tags...)
	}
	return p
}

// Filter narrows a catalog listing. Zero value matches everything.
type Filter struct {
	Category string
	Search   string
}
