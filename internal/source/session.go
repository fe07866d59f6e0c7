// Package source fetches gate entries from the estate's upstream REST API.
package source

import "sync"

// Session holds the bearer token used against the upstream API.
//
// It has an explicit lifecycle: Init when the application starts (or after a
// login), Clear on logout or when the upstream answers 401. A Session is safe
// for concurrent use.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession returns a session initialised with token. An empty token gives
// an inactive session.
func NewSession(token string) *Session {
	s := &Session{}
	s.Init(token)
	return s
}

// Init replaces the current token.
func (s *Session) Init(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Token returns the current token, or "" when the session is inactive.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Active reports whether the session holds a token.
func (s *Session) Active() bool {
	return s.Token() != ""
}

// Clear drops the token.
func (s *Session) Clear() {
	s.Init("")
}
