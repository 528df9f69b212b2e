package domain

import "time"

// Token describes an issued bearer credential. Tokens are stateless; this is
// metadata returned alongside the signed string, nothing is persisted.
type Token struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}
