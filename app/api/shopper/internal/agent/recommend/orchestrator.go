package recommend

import (
	"context"
	"strings"
	"time"

	"SellerAgent/app/api/shopper/internal/agent/chat"
	"SellerAgent/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/logx"
)

type Result struct {
	Message   string
	Products  []catalog.Product
	Source    Source
	SessionID string
}

type Option func(*Orchestrator)

// WithTimeout bounds each remote attempt. Zero leaves only the caller's deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.timeout = d }
}

// WithLocalDelay makes the local path wait a random duration in [lo, hi]
// before answering.
func WithLocalDelay(lo, hi time.Duration) Option {
	return func(o *Orchestrator) {
		if lo < 0 {
			lo = 0
		}
		if hi < lo {
			hi = lo
		}
		o.minDelay, o.maxDelay = lo, hi
	}
}

// WithRand replaces the random source used for latency shaping.
func WithRand(rnd Rand) Option {
	return func(o *Orchestrator) {
		if rnd != nil {
			o.rnd = LockedRand(rnd)
		}
	}
}

// Orchestrator tries the remote recommender and falls back to the local
// catalog on any failure.
type Orchestrator struct {
	sessions SessionProvider
	local    *LocalRecommender
	remote   Recommender

	timeout            time.Duration
	minDelay, maxDelay time.Duration
	rnd                Rand
}

// NewOrchestrator builds an orchestrator. A nil remote means every call is
// answered locally.
func NewOrchestrator(sessions SessionProvider, local *LocalRecommender, remote Recommender, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		sessions: sessions,
		local:    local,
		remote:   remote,
		rnd:      globalRand{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) HasRemote() bool { return o.remote != nil }

// GetRecommendation never returns an error; degraded paths end in SourceLocal.
func (o *Orchestrator) GetRecommendation(ctx context.Context, text string, history ...chat.Turn) Result {
	logger := logx.WithContext(ctx)
	sessionID := o.sessions.GetOrCreateSession(ctx)
	q := Query{Text: text, SessionID: sessionID, History: history}

	if o.remote != nil {
		reply, err := o.tryRemote(ctx, q)
		if err == nil {
			return Result{
				Message:   reply.Message,
				Products:  nonNil(reply.Products),
				Source:    SourceRemote,
				SessionID: sessionID,
			}
		}
		logger.Errorw("remote recommendation failed, answering locally",
			logx.Field("err", err.Error()),
			logx.Field("session_id", sessionID),
		)
	}

	o.wait(ctx)
	reply, _ := o.local.Recommend(ctx, q)
	return Result{
		Message:   reply.Message,
		Products:  nonNil(reply.Products),
		Source:    SourceLocal,
		SessionID: sessionID,
	}
}

func (o *Orchestrator) tryRemote(ctx context.Context, q Query) (*Reply, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	reply, err := o.remote.Recommend(ctx, q)
	if err != nil {
		return nil, err
	}
	if reply == nil || strings.TrimSpace(reply.Message) == "" {
		return nil, ErrEmptyReply
	}
	return reply, nil
}

func (o *Orchestrator) wait(ctx context.Context) {
	d := o.minDelay
	if span := o.maxDelay - o.minDelay; span > 0 {
		d += time.Duration(o.rnd.IntN(int(span) + 1))
	}
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func nonNil(products []catalog.Product) []catalog.Product {
	if products == nil {
		return []catalog.Product{}
	}
	return products
}
