// Package session attaches Spotify credentials to outgoing pathfinder
// requests. Token acquisition and refresh live outside this process; the
// session only applies tokens it was given.
package session

import (
	"errors"
	"net/http"
)

// ErrMissingAccessToken is returned by ApplyHeaders when the session was
// built without an access token. The request is never sent in that case.
var ErrMissingAccessToken = errors.New("session: access token is not configured")

// Session holds the credentials applied to every pathfinder request. It is
// immutable and safe for concurrent use.
type Session struct {
	accessToken string
	clientToken string
}

// New returns a Session carrying the given tokens. An empty access token is
// accepted at construction time but will cause ApplyHeaders to fail.
func New(accessToken, clientToken string) *Session {
	return &Session{
		accessToken: accessToken,
		clientToken: clientToken,
	}
}

// ApplyHeaders sets the Authorization bearer header and, when configured,
// the client-token header on req.
func (s *Session) ApplyHeaders(req *http.Request) error {
	if s.accessToken == "" {
		return ErrMissingAccessToken
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	if s.clientToken != "" {
		req.Header.Set("client-token", s.clientToken)
	}
	return nil
}
