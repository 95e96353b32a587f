package shopper

import (
	"context"
	"strings"
	"testing"
	"time"

	"SellerAgent/app/api/shopper/internal/agent/cart"
	"SellerAgent/app/api/shopper/internal/agent/chat"
	"SellerAgent/app/api/shopper/internal/agent/recommend"
	"SellerAgent/app/api/shopper/internal/agent/session"
	"SellerAgent/app/api/shopper/internal/mq"
	"SellerAgent/app/api/shopper/internal/svc"
	"SellerAgent/app/api/shopper/internal/types"
	"SellerAgent/app/common/consts/biz"
	"SellerAgent/app/common/consts/errno"
	"SellerAgent/app/dal/catalog"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/x/errors"
)

func newLocalServiceContext() *svc.ServiceContext {
	store := catalog.NewStore(catalog.Seed())
	sessions := session.NewManager(nil)
	return &svc.ServiceContext{
		Store:        store,
		Sessions:     sessions,
		Orchestrator: recommend.NewOrchestrator(sessions, recommend.NewLocalRecommender(store, nil), nil),
		Cart:         cart.NewService(sessions, nil),
		Transcript:   chat.NewTranscript(),
	}
}

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var codeErr *errors.CodeMsg
	require.ErrorAs(t, err, &codeErr)
	return codeErr.Code
}

func TestRecommendRecordsConversation(t *testing.T) {
	sc := newLocalServiceContext()
	l := NewRecommendLogic(context.Background(), sc)

	resp, err := l.Recommend(&types.RecommendRequest{Query: "  wireless earbuds "})
	require.NoError(t, err)
	assert.Equal(t, string(recommend.SourceLocal), resp.Source)
	assert.NotEmpty(t, resp.Message)
	require.NotEmpty(t, resp.Products)
	assert.LessOrEqual(t, len(resp.Products), 5)
	assert.True(t, strings.HasPrefix(resp.SessionId, "fallback-"))

	turns := sc.Transcript.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, chat.RoleUser, turns[0].Role)
	assert.Equal(t, "wireless earbuds", turns[0].Content)
	assert.Equal(t, chat.RoleAssistant, turns[1].Role)
	assert.Len(t, turns[1].Products, len(resp.Products))

	conv, err := NewConversationLogic(context.Background(), sc).Conversation()
	require.NoError(t, err)
	require.Len(t, conv.Turns, 2)
	assert.Equal(t, "user", conv.Turns[0].Role)

	_, err = NewConversationLogic(context.Background(), sc).ResetConversation()
	require.NoError(t, err)
	assert.Zero(t, sc.Transcript.Len())
}

// stalledWriter blocks until its context ends, like a broker that never acks.
type stalledWriter struct {
	deadline    time.Time
	hasDeadline bool
}

func (w *stalledWriter) WriteMessages(ctx context.Context, _ ...kafka.Message) error {
	w.deadline, w.hasDeadline = ctx.Deadline()
	<-ctx.Done()
	return ctx.Err()
}

func (w *stalledWriter) Close() error { return nil }

func TestRecommendBoundsEventPublish(t *testing.T) {
	w := &stalledWriter{}
	sc := newLocalServiceContext()
	sc.Publisher = mq.NewPublisherWithWriter(w)

	start := time.Now()
	resp, err := NewRecommendLogic(context.Background(), sc).Recommend(&types.RecommendRequest{Query: "wireless earbuds"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.EqualValues(t, errno.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Products)
	require.True(t, w.hasDeadline)
	assert.WithinDuration(t, start.Add(biz.EventPublishTimeout), w.deadline, time.Second)
	assert.Less(t, elapsed, biz.EventPublishTimeout+2*time.Second)
}

func TestRecommendRejectsBadQueries(t *testing.T) {
	l := NewRecommendLogic(context.Background(), newLocalServiceContext())

	_, err := l.Recommend(&types.RecommendRequest{Query: "   "})
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))

	_, err = l.Recommend(&types.RecommendRequest{Query: strings.Repeat("a", 1001)})
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))
}

func TestListProductsLocal(t *testing.T) {
	sc := newLocalServiceContext()
	l := NewListProductsLogic(context.Background(), sc)

	all, err := l.ListProducts(&types.ListProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Products, sc.Store.Len())
	assert.Equal(t, string(recommend.SourceLocal), all.Source)

	some, err := l.ListProducts(&types.ListProductsRequest{Search: "mouse"})
	require.NoError(t, err)
	require.NotEmpty(t, some.Products)
	for _, p := range some.Products {
		text := strings.ToLower(p.Name + " " + p.Description + " " + strings.Join(p.Tags, " "))
		assert.Contains(t, text, "mouse")
	}
}

func TestAddToCartWithoutBackend(t *testing.T) {
	sc := newLocalServiceContext()
	l := NewAddToCartLogic(context.Background(), sc)

	_, err := l.AddToCart(&types.AddToCartRequest{ProductId: "does-not-exist"})
	assert.Equal(t, errno.ProductNotFound, codeOf(t, err))

	_, err = l.AddToCart(&types.AddToCartRequest{})
	assert.Equal(t, errno.InvalidParam, codeOf(t, err))

	resp, err := l.AddToCart(&types.AddToCartRequest{ProductId: "1", Quantity: 1})
	require.NoError(t, err)
	assert.False(t, resp.Added)
	assert.EqualValues(t, errno.CartUnavailable, resp.StatusCode)
}

func TestSessionIsStable(t *testing.T) {
	sc := newLocalServiceContext()
	first, err := NewSessionLogic(context.Background(), sc).Session()
	require.NoError(t, err)
	assert.True(t, first.Fallback)

	second, err := NewSessionLogic(context.Background(), sc).Session()
	require.NoError(t, err)
	assert.Equal(t, first.SessionId, second.SessionId)
}
