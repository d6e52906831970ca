package testutil

// FixedTokenSource returns the same run token every time.
//
// The demo stamps each pass with a run token; fixing the token makes
// transcripts and log records reproducible across test runs.
//
// Thread-safety: FixedTokenSource is stateless and safe for concurrent
// use.
type FixedTokenSource struct {
	token string
}

// NewFixedTokenSource creates a source that always returns token.
// An empty token defaults to "test-run-default".
func NewFixedTokenSource(token string) *FixedTokenSource {
	if token == "" {
		token = "test-run-default"
	}
	return &FixedTokenSource{token: token}
}

// NewToken returns the fixed run token.
//
// Implements demo.TokenSource.
func (s *FixedTokenSource) NewToken() string {
	return s.token
}
