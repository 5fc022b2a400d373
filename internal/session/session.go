// Package session wraps the cookie store that holds the signed-in
// identity: bearer token, user id and username, nothing else. All other
// state is re-fetched from the portal API on every page.
package session

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	cookieName = "portal_session"

	keyToken    = "token"
	keyUserID   = "user_id"
	keyUsername = "username"
	keySID      = "sid"
	keyFlash    = "flash"
)

type Session struct {
	Token    string
	UserID   int
	Username string
	// SID keys per-session UI state (toasts); it is minted on first
	// touch and survives sign-out so a "logged out" toast can still
	// render.
	SID string
}

func (s Session) IsAuthenticated() bool { return s.Token != "" }

func (s Session) IsAdmin() bool { return s.Username == "admin" }

type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(secret string) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   0, // session cookie; the portal decides token lifetime
	}
	return &Store{cookies: cs}
}

// Current reads the session without mutating it. A missing or
// undecodable cookie yields a zero session.
func (s *Store) Current(r *http.Request) Session {
	sess, _ := s.cookies.Get(r, cookieName)
	out := Session{}
	if v, ok := sess.Values[keyToken].(string); ok {
		out.Token = v
	}
	if v, ok := sess.Values[keyUserID].(int); ok {
		out.UserID = v
	}
	if v, ok := sess.Values[keyUsername].(string); ok {
		out.Username = v
	}
	if v, ok := sess.Values[keySID].(string); ok {
		out.SID = v
	}
	return out
}

// EnsureSID returns the per-session UI key, minting and persisting one
// if the cookie does not carry it yet.
func (s *Store) EnsureSID(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, _ := s.cookies.Get(r, cookieName)
	if v, ok := sess.Values[keySID].(string); ok && v != "" {
		return v, nil
	}
	sid := uuid.NewString()
	sess.Values[keySID] = sid
	return sid, sess.Save(r, w)
}

func (s *Store) SignIn(w http.ResponseWriter, r *http.Request, token string, userID int, username string) error {
	sess, _ := s.cookies.Get(r, cookieName)
	sess.Values[keyToken] = token
	sess.Values[keyUserID] = userID
	sess.Values[keyUsername] = username
	if _, ok := sess.Values[keySID].(string); !ok {
		sess.Values[keySID] = uuid.NewString()
	}
	return sess.Save(r, w)
}

func (s *Store) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, cookieName)
	delete(sess.Values, keyToken)
	delete(sess.Values, keyUserID)
	delete(sess.Values, keyUsername)
	return sess.Save(r, w)
}

// SetFlash stores a message shown exactly once on the next page render,
// the counterpart of passing a message through router navigation state.
func (s *Store) SetFlash(w http.ResponseWriter, r *http.Request, message string) error {
	sess, _ := s.cookies.Get(r, cookieName)
	sess.AddFlash(message, keyFlash)
	return sess.Save(r, w)
}

// PopFlash consumes the pending message, if any. Saving after the read
// is what prevents re-display on back-navigation.
func (s *Store) PopFlash(w http.ResponseWriter, r *http.Request) (string, bool) {
	sess, _ := s.cookies.Get(r, cookieName)
	flashes := sess.Flashes(keyFlash)
	if len(flashes) == 0 {
		return "", false
	}
	_ = sess.Save(r, w)
	msg, ok := flashes[0].(string)
	return msg, ok && msg != ""
}
