package demo

import "github.com/google/uuid"

// TokenSource issues run tokens. A token correlates every log record
// and transcript of a single demo pass.
type TokenSource interface {
	NewToken() string
}

// UUIDSource issues time-sortable UUIDv7 run tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, so tokens
// sort by creation time, which helps when scanning logs across runs.
//
// Thread-safety: UUIDSource is stateless and safe for concurrent use.
type UUIDSource struct{}

// NewToken creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDSource) NewToken() string {
	return uuid.Must(uuid.NewV7()).String()
}
