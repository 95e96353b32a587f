package recommend

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SellerAgent/app/api/shopper/internal/agent/chat"
	"SellerAgent/app/dal/catalog"
)

type staticSessions string

func (s staticSessions) GetOrCreateSession(context.Context) string { return string(s) }

type remoteFunc func(ctx context.Context, q Query) (*Reply, error)

func (f remoteFunc) Recommend(ctx context.Context, q Query) (*Reply, error) { return f(ctx, q) }

func seededRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func testStore() *catalog.Store {
	return catalog.NewStore([]catalog.Product{
		{ID: "1", Name: "Wireless Mouse", Description: "Ergonomic", Price: 25, Tags: []string{"electronics"}},
		{ID: "2", Name: "Yoga Mat", Description: "Non-slip", Price: 30, Tags: []string{"fitness"}},
		{ID: "3", Name: "Desk Lamp", Description: "Warm light", Price: 40, Tags: []string{"home"}},
	})
}

func TestRemoteSuccessIsReturnedVerbatim(t *testing.T) {
	var seen Query
	remote := remoteFunc(func(_ context.Context, q Query) (*Reply, error) {
		seen = q
		return &Reply{Message: "From the backend", Products: []catalog.Product{{ID: "9", Name: "Remote"}}}, nil
	})
	o := NewOrchestrator(staticSessions("s-1"), NewLocalRecommender(testStore(), seededRand()), remote)

	res := o.GetRecommendation(context.Background(), "mouse")
	assert.Equal(t, SourceRemote, res.Source)
	assert.Equal(t, "From the backend", res.Message)
	assert.Equal(t, "s-1", res.SessionID)
	require.Len(t, res.Products, 1)
	assert.Equal(t, catalog.ID("9"), res.Products[0].ID)
	assert.Equal(t, Query{Text: "mouse", SessionID: "s-1"}, seen)
}

func TestRemoteFailureFallsBackLocally(t *testing.T) {
	failures := map[string]Recommender{
		"error": remoteFunc(func(context.Context, Query) (*Reply, error) {
			return nil, errors.New("connection refused")
		}),
		"nil reply": remoteFunc(func(context.Context, Query) (*Reply, error) { return nil, nil }),
		"empty message": remoteFunc(func(context.Context, Query) (*Reply, error) {
			return &Reply{Message: "  ", Products: []catalog.Product{{ID: "9"}}}, nil
		}),
	}

	for name, remote := range failures {
		t.Run(name, func(t *testing.T) {
			o := NewOrchestrator(staticSessions("s-1"), NewLocalRecommender(testStore(), seededRand()), remote)
			res := o.GetRecommendation(context.Background(), "wireless mouse")
			assert.Equal(t, SourceLocal, res.Source)
			assert.Contains(t, cannedReplies, res.Message)
			require.Len(t, res.Products, 1)
			assert.Equal(t, catalog.ID("1"), res.Products[0].ID)
		})
	}
}

func TestRemoteTimeoutFallsBack(t *testing.T) {
	remote := remoteFunc(func(ctx context.Context, _ Query) (*Reply, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	o := NewOrchestrator(staticSessions("s-1"), NewLocalRecommender(testStore(), seededRand()), remote,
		WithTimeout(20*time.Millisecond))

	start := time.Now()
	res := o.GetRecommendation(context.Background(), "nothing relevant here")
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, SourceLocal, res.Source)
	assert.NotEmpty(t, res.Message)
	assert.Len(t, res.Products, 3)
}

func TestNoRemoteAnswersLocally(t *testing.T) {
	o := NewOrchestrator(staticSessions("s-1"), NewLocalRecommender(testStore(), seededRand()), nil)
	assert.False(t, o.HasRemote())

	res := o.GetRecommendation(context.Background(), "yoga")
	assert.Equal(t, SourceLocal, res.Source)
	require.Len(t, res.Products, 1)
	assert.Equal(t, catalog.ID("2"), res.Products[0].ID)
}

func TestEmptyCatalogStillAnswers(t *testing.T) {
	failing := remoteFunc(func(context.Context, Query) (*Reply, error) { return nil, errors.New("down") })
	o := NewOrchestrator(staticSessions("s-1"), NewLocalRecommender(catalog.NewStore(nil), seededRand()), failing)

	res := o.GetRecommendation(context.Background(), "anything")
	assert.NotEmpty(t, res.Message)
	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Products)
}

func TestLocalDelayHonorsCancellation(t *testing.T) {
	o := NewOrchestrator(staticSessions("s-1"), NewLocalRecommender(testStore(), seededRand()), nil,
		WithLocalDelay(time.Hour, 2*time.Hour), WithRand(seededRand()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := o.GetRecommendation(ctx, "lamp")
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, SourceLocal, res.Source)
	assert.NotEmpty(t, res.Products)
}

func TestLocalDelayWaitsAtLeastMinimum(t *testing.T) {
	o := NewOrchestrator(staticSessions("s-1"), NewLocalRecommender(testStore(), seededRand()), nil,
		WithLocalDelay(30*time.Millisecond, 40*time.Millisecond))

	start := time.Now()
	o.GetRecommendation(context.Background(), "lamp")
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSharedSeededRandAcrossRequests(t *testing.T) {
	rnd := LockedRand(seededRand())
	o := NewOrchestrator(staticSessions("s-1"), NewLocalRecommender(testStore(), rnd), nil,
		WithLocalDelay(0, time.Millisecond), WithRand(rnd))

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// an unmatched query shuffles the catalog for its fallback sample
			results[i] = o.GetRecommendation(context.Background(), "zzz unmatched")
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		assert.Equal(t, SourceLocal, res.Source)
		assert.Len(t, res.Products, 3)
		assert.Contains(t, CannedReplies(), res.Message)
	}
}

func TestLockedRand(t *testing.T) {
	assert.Equal(t, globalRand{}, LockedRand(nil))
	assert.Equal(t, globalRand{}, LockedRand(globalRand{}))

	locked := LockedRand(seededRand())
	require.IsType(t, &lockedRand{}, locked)
	assert.Same(t, locked, LockedRand(locked))
}

type fakeChatModel struct {
	content string
	err     error
	got     []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.got = input
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.content, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func TestModelRecommenderParsesReply(t *testing.T) {
	fake := &fakeChatModel{content: "Sure! {\"response\": \"Try these\", \"products\": [3, \"1\", 3, 99]} Enjoy."}
	m, err := NewModelRecommender(context.Background(), fake, testStore())
	require.NoError(t, err)

	history := []chat.Turn{
		{Role: chat.RoleUser, Content: "hi"},
		{Role: chat.RoleAssistant, Content: "hello"},
	}
	reply, err := m.Recommend(context.Background(), Query{Text: "something for my desk", History: history})
	require.NoError(t, err)
	assert.Equal(t, "Try these", reply.Message)
	require.Len(t, reply.Products, 2)
	assert.Equal(t, catalog.ID("3"), reply.Products[0].ID)
	assert.Equal(t, catalog.ID("1"), reply.Products[1].ID)

	require.Len(t, fake.got, 4)
	assert.Equal(t, schema.System, fake.got[0].Role)
	assert.Contains(t, fake.got[0].Content, "Wireless Mouse")
	assert.Equal(t, schema.Assistant, fake.got[2].Role)
	assert.Equal(t, "something for my desk", fake.got[3].Content)
}

func TestModelRecommenderRejectsUnusableReplies(t *testing.T) {
	for _, content := range []string{"no json at all", `{"response": "", "products": [1]}`, `{"response": "x", "products": [1}`} {
		m, err := NewModelRecommender(context.Background(), &fakeChatModel{content: content}, testStore())
		require.NoError(t, err)
		_, err = m.Recommend(context.Background(), Query{Text: "mouse"})
		assert.Error(t, err, content)
	}
}

func TestModelFailureFallsBackThroughOrchestrator(t *testing.T) {
	m, err := NewModelRecommender(context.Background(), &fakeChatModel{err: errors.New("quota exceeded")}, testStore())
	require.NoError(t, err)

	o := NewOrchestrator(staticSessions("s-1"), NewLocalRecommender(testStore(), seededRand()), m)
	res := o.GetRecommendation(context.Background(), "yoga mat")
	assert.Equal(t, SourceLocal, res.Source)
	require.NotEmpty(t, res.Products)
	assert.Equal(t, catalog.ID("2"), res.Products[0].ID)
}

func TestNewModelRecommenderRequiresModel(t *testing.T) {
	_, err := NewModelRecommender(context.Background(), nil, testStore())
	assert.Error(t, err)
}

func TestCannedRepliesIsACopy(t *testing.T) {
	replies := CannedReplies()
	require.Len(t, replies, 5)
	replies[0] = "changed"
	assert.NotEqual(t, "changed", cannedReplies[0])
}
