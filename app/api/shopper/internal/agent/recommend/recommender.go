package recommend

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"SellerAgent/app/api/shopper/internal/agent/chat"
	"SellerAgent/app/dal/catalog"
)

var ErrEmptyReply = errors.New("recommender returned an empty reply")

type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

type Query struct {
	Text      string
	SessionID string
	// History holds earlier turns of the conversation, oldest first.
	History []chat.Turn
}

type Reply struct {
	Message  string
	Products []catalog.Product
}

// Recommender answers a shopper query with a message and products.
// Implementations: remote.Client, ModelRecommender, LocalRecommender.
type Recommender interface {
	Recommend(ctx context.Context, q Query) (*Reply, error)
}

type SessionProvider interface {
	GetOrCreateSession(ctx context.Context) string
}

// Rand is the randomness used for fallback sampling, reply selection and
// latency shaping. *rand.Rand satisfies it. Each component wraps an injected
// source in a mutex; wrap it once with LockedRand to share it between
// components.
type Rand interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type lockedRand struct {
	mu sync.Mutex
	r  Rand
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// LockedRand serializes access to r. The global source is already safe.
func LockedRand(r Rand) Rand {
	switch r := r.(type) {
	case nil:
		return globalRand{}
	case globalRand, *lockedRand:
		return r
	default:
		return &lockedRand{r: r}
	}
}
