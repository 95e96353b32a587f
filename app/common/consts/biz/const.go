package biz

import "time"

type CtxKey string

const (
	SESSION_KEY CtxKey = "session_id"

	SessionCookie    = "shopper_session"
	SessionCookieTTL = time.Hour * 24

	// MaxQueryLength mirrors the backend's message field limit.
	MaxQueryLength = 1000

	DefaultCartQuantity = 1

	FallbackSessionPrefix = "fallback"

	DefaultRemoteTimeout = 5 * time.Second
	DefaultCatalogTTL    = 30 * time.Second

	EventPublishTimeout = 500 * time.Millisecond
)
