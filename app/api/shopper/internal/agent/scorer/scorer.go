package scorer

import (
	"math/rand/v2"
	"sort"
	"strings"

	"SellerAgent/app/dal/catalog"
)

const (
	MaxResults     = 5
	FallbackSample = 4
)

// Shuffler produces a uniform random permutation. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

type scored struct {
	product catalog.Product
	score   int
}

// Tokenize lowercases the query and splits it on whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

func SearchText(p catalog.Product) string {
	return strings.ToLower(p.Name + " " + p.Description + " " + strings.Join(p.Tags, " "))
}

// Score counts the tokens occurring as substrings of text. Repeated tokens
// count once per occurrence in the query.
func Score(tokens []string, text string) int {
	n := 0
	for _, token := range tokens {
		if strings.Contains(text, token) {
			n++
		}
	}
	return n
}

// Rank returns up to MaxResults products with a positive score, best first.
// Ties keep catalog order.
func Rank(query string, products []catalog.Product) []catalog.Product {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []catalog.Product{}
	}

	hits := make([]scored, 0, len(products))
	for _, p := range products {
		if s := Score(tokens, SearchText(p)); s > 0 {
			hits = append(hits, scored{product: p, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > MaxResults {
		hits = hits[:MaxResults]
	}
	out := make([]catalog.Product, len(hits))
	for i, h := range hits {
		out[i] = h.product
	}
	return out
}

// ScoreAndRank ranks products against query and falls back to a random sample
// of FallbackSample products when nothing matches. A nil rnd uses the global
// source.
func ScoreAndRank(query string, products []catalog.Product, rnd Shuffler) []catalog.Product {
	if len(products) == 0 {
		return []catalog.Product{}
	}
	if ranked := Rank(query, products); len(ranked) > 0 {
		return ranked
	}
	return Sample(products, FallbackSample, rnd)
}

// Sample returns min(n, len(products)) distinct products taken from a uniform
// permutation. The input slice is not modified.
func Sample(products []catalog.Product, n int, rnd Shuffler) []catalog.Product {
	if rnd == nil {
		rnd = globalShuffler{}
	}
	pool := make([]catalog.Product, len(products))
	copy(pool, products)
	rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n < 0 {
		n = 0
	}
	if n < len(pool) {
		pool = pool[:n]
	}
	return pool
}
