package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"SellerAgent/app/common/consts/biz"
	"SellerAgent/app/common/snowflake"

	"github.com/zeromicro/go-zero/core/logx"
)

var errEmptySession = errors.New("remote returned an empty session id")

// Creator asks the backend for a new session id.
type Creator interface {
	CreateSession(ctx context.Context) (string, error)
}

type Option func(*Manager)

func WithLogger(l logx.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithFallbackGenerator replaces the snowflake based fallback id source.
func WithFallbackGenerator(gen func() string) Option {
	return func(m *Manager) { m.fallback = gen }
}

// Manager resolves the shopper session once and caches it for the life of
// the process. A remote failure is absorbed by a locally generated id which
// is then treated as authoritative.
type Manager struct {
	creator  Creator
	logger   logx.Logger
	fallback func() string

	mu         sync.Mutex
	id         string
	isFallback bool
}

func NewManager(creator Creator, opts ...Option) *Manager {
	m := &Manager{
		creator:  creator,
		logger:   logx.WithContext(context.Background()),
		fallback: func() string { return snowflake.Token(biz.FallbackSessionPrefix) },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetOrCreateSession returns the cached id, resolving it on the first call.
// It never fails. Concurrent first callers wait on the same resolution.
func (m *Manager) GetOrCreateSession(ctx context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.id != "" {
		return m.id
	}

	id, err := m.create(ctx)
	if err != nil {
		id = m.fallback()
		m.isFallback = true
		m.logger.Errorw("create session failed, using local id",
			logx.Field("err", err.Error()),
			logx.Field("session_id", id),
		)
	} else {
		m.logger.Infow("session created", logx.Field("session_id", id))
	}
	m.id = id
	return id
}

func (m *Manager) create(ctx context.Context) (string, error) {
	if m.creator == nil {
		return "", errors.New("no session backend configured")
	}
	id, err := m.creator.CreateSession(ctx)
	if err != nil {
		return "", err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errEmptySession
	}
	return id, nil
}

func (m *Manager) Current() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id, m.id != ""
}

// IsFallback reports whether the current id was generated locally.
func (m *Manager) IsFallback() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isFallback
}
