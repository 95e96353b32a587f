package scorer

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SellerAgent/app/dal/catalog"
)

func mouseAndMat() []catalog.Product {
	return []catalog.Product{
		{ID: "1", Name: "Wireless Mouse", Description: "Ergonomic", Tags: []string{"electronics", "wireless"}},
		{ID: "2", Name: "Yoga Mat", Description: "Non-slip", Tags: []string{"fitness"}},
	}
}

func TestWirelessMouseScenario(t *testing.T) {
	products := mouseAndMat()
	tokens := Tokenize("wireless mouse")
	assert.Equal(t, 2, Score(tokens, SearchText(products[0])))
	assert.Equal(t, 0, Score(tokens, SearchText(products[1])))

	ranked := ScoreAndRank("wireless mouse", products, rand.New(rand.NewPCG(1, 2)))
	require.Len(t, ranked, 1)
	assert.Equal(t, catalog.ID("1"), ranked[0].ID)
}

func TestTokenizeAndScore(t *testing.T) {
	assert.Equal(t, []string{"red", "shoes", "red"}, Tokenize("  Red\tSHOES red "))
	assert.Empty(t, Tokenize("   "))

	// duplicates count once per query occurrence
	assert.Equal(t, 3, Score(Tokenize("red shoes red"), "red running shoes"))
	assert.Equal(t, "mug big kitchen gift", SearchText(catalog.Product{Name: "Mug", Description: "Big", Tags: []string{"Kitchen", "gift"}}))
}

func TestRankOrderingAndLimit(t *testing.T) {
	products := []catalog.Product{
		{ID: "a", Name: "blue shirt"},
		{ID: "b", Name: "blue cotton shirt"},
		{ID: "c", Name: "cotton socks"},
		{ID: "d", Name: "blue cotton shirt xl"},
		{ID: "e", Name: "shirt"},
		{ID: "f", Name: "blue hat"},
		{ID: "g", Name: "cotton shirt"},
		{ID: "h", Name: "lamp"},
	}

	ranked := Rank("blue cotton shirt", products)
	require.Len(t, ranked, MaxResults)

	tokens := Tokenize("blue cotton shirt")
	prev := len(tokens) + 1
	for _, p := range ranked {
		s := Score(tokens, SearchText(p))
		assert.Positive(t, s)
		assert.LessOrEqual(t, s, prev)
		prev = s
	}

	ids := make([]catalog.ID, len(ranked))
	for i, p := range ranked {
		ids[i] = p.ID
	}
	// ties keep catalog order: b,d score 3; a,g score 2; c is the first 1
	assert.Equal(t, []catalog.ID{"b", "d", "a", "g", "c"}, ids)
}

func TestNoMatchFallsBackToSample(t *testing.T) {
	products := catalog.Seed()
	members := make(map[catalog.ID]struct{}, len(products))
	for _, p := range products {
		members[p.ID] = struct{}{}
	}

	got := ScoreAndRank("zzzqqq", products, rand.New(rand.NewPCG(7, 7)))
	require.Len(t, got, FallbackSample)

	seen := make(map[catalog.ID]struct{})
	for _, p := range got {
		_, ok := members[p.ID]
		assert.True(t, ok)
		_, dup := seen[p.ID]
		assert.False(t, dup)
		seen[p.ID] = struct{}{}
	}
}

func TestFallbackOnSmallCatalogReturnsEverything(t *testing.T) {
	products := mouseAndMat()
	got := ScoreAndRank("teapot", products, nil)
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []catalog.ID{"1", "2"}, []catalog.ID{got[0].ID, got[1].ID})
	assert.Equal(t, catalog.ID("1"), products[0].ID)
}

func TestEmptyCatalog(t *testing.T) {
	assert.Empty(t, ScoreAndRank("anything", nil, nil))
	assert.Empty(t, Rank("anything", nil))
}

func TestEmptyQueryFallsBack(t *testing.T) {
	got := ScoreAndRank("", catalog.Seed(), rand.New(rand.NewPCG(3, 4)))
	assert.Len(t, got, FallbackSample)
}
