package recommend

import (
	"context"

	"SellerAgent/app/api/shopper/internal/agent/scorer"
	"SellerAgent/app/dal/catalog"
)

// LocalRecommender ranks the local catalog by keyword overlap and answers
// with a canned reply. It never fails.
type LocalRecommender struct {
	store *catalog.Store
	rnd   Rand
}

// NewLocalRecommender uses the global random source when rnd is nil.
func NewLocalRecommender(store *catalog.Store, rnd Rand) *LocalRecommender {
	return &LocalRecommender{store: store, rnd: LockedRand(rnd)}
}

func (l *LocalRecommender) Recommend(_ context.Context, q Query) (*Reply, error) {
	products := scorer.ScoreAndRank(q.Text, l.store.All(), l.rnd)
	if len(products) == 0 {
		return &Reply{Message: emptyCatalogReply, Products: []catalog.Product{}}, nil
	}
	return &Reply{Message: pickReply(l.rnd), Products: products}, nil
}
