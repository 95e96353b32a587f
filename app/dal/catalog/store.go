package catalog

import "strings"

// Store is an ordered, read-only product snapshot. It is safe for concurrent
// use because nothing mutates it after NewStore returns.
type Store struct {
	products []Product
	index    map[ID]int
}

// NewStore copies products into a new Store. Later duplicates of an id are
// dropped so the id stays a uniqueness key.
func NewStore(products []Product) *Store {
	s := &Store{
		products: make([]Product, 0, len(products)),
		index:    make(map[ID]int, len(products)),
	}
	for _, p := range products {
		if _, ok := s.index[p.ID]; ok {
			continue
		}
		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p.Clone())
	}
	return s
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.products)
}

// All returns the catalog in seed order.
func (s *Store) All() []Product {
	if s == nil {
		return nil
	}
	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) Lookup(id ID) (Product, bool) {
	if s == nil {
		return Product{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i].Clone(), true
}

// Filter applies an exact, case-insensitive category match and a substring
// search over name, description and tags.
func (s *Store) Filter(f Filter) []Product {
	if s == nil {
		return nil
	}
	category := strings.TrimSpace(f.Category)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

func matchesSearch(p Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
