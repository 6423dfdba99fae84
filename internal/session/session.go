// Package session holds per-browser state between requests.
//
// Sessions live in process memory. The interesting part is the flash
// slots: each slot is a write-once-read-once message channel. A value
// written during one request cycle is readable until the end of the
// request cycle that read it, then the middleware clears it. Readers
// themselves never clear slots.
package session

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName is the name of the cookie the session token travels in.
const CookieName = "lumen_session"

const contextKey = "lumen-ledger-session"

// Slot names a flash message channel.
type Slot string

const (
	SlotMessage Slot = "message"
	SlotSuccess Slot = "success"
	SlotError   Slot = "error"
	SlotInfo    Slot = "info"
	SlotWarning Slot = "warning"
)

// Slots lists all flash slots in the order they appear in the snapshot.
var Slots = []Slot{SlotMessage, SlotSuccess, SlotError, SlotInfo, SlotWarning}

// Session is the state for one browser session.
type Session struct {
	Token string

	mu       sync.Mutex
	userID   uint64
	flash    map[Slot]string
	consumed map[Slot]bool
}

// Store keeps all active sessions.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Create registers a fresh session and returns it. Upstream auth code
// uses this to establish a session outside of a request cycle.
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{
		Token:    uuid.NewString(),
		flash:    make(map[Slot]string),
		consumed: make(map[Slot]bool),
	}
	s.sessions[session.Token] = session

	return session
}

// get returns the session for the token, creating a new session when
// the token is empty or unknown.
func (s *Store) get(token string) *Session {
	s.mu.Lock()
	session, ok := s.sessions[token]
	s.mu.Unlock()

	if ok {
		return session
	}

	return s.Create()
}

// Middleware binds the request to its session.
//
// After the handler chain has run, flash slots that were read during
// the request are cleared. This is the session layer's job, producers
// reading the slots must not clear them.
func (s *Store) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CookieName)
		session := s.get(token)

		if session.Token != token {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, session.Token, 0, "/", "", false, true)
		}

		c.Set(contextKey, session)
		c.Next()

		session.clearConsumed()
	}
}

// FromContext returns the session bound to the request, or nil outside
// of the session middleware.
func FromContext(c *gin.Context) *Session {
	value, ok := c.Get(contextKey)
	if !ok {
		return nil
	}

	return value.(*Session)
}

// Login binds an authenticated user to the session.
func (s *Session) Login(userID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = userID
}

// Logout removes the user binding.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = 0
}

// UserID returns the authenticated user's ID and whether the session
// is authenticated at all.
func (s *Session) UserID() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userID, s.userID != 0
}

// Flash writes a message into a slot. Writing a slot arms it for
// exactly one read cycle, replacing any unread value.
func (s *Session) Flash(slot Slot, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flash[slot] = message
	s.consumed[slot] = false
}

// PeekFlash reads a slot without clearing it. Reading marks the slot
// as consumed so the middleware clears it when the request finishes.
func (s *Session) PeekFlash(slot Slot) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.flash[slot]
	if ok {
		s.consumed[slot] = true
	}

	return message, ok
}

func (s *Session) clearConsumed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for slot, done := range s.consumed {
		if done {
			delete(s.flash, slot)
			delete(s.consumed, slot)
		}
	}
}
