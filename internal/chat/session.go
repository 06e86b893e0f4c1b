package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting seeds every new or reset session as the first assistant message.
const Greeting = "Namaste! I am your crop advisory assistant. Ask me about soil, weather, pests, mandi prices or your crop."

type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is one conversation: an ordered, append-only message history
// starting with the seeded greeting. It lives only in memory and is
// discarded when the process ends.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Messages  []Message `json:"messages"`
}

// SessionStore owns all live sessions. The router itself stays pure; the
// store is the single place conversation state mutates, behind one lock.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	router   *Router
	now      func() time.Time
}

func NewSessionStore(router *Router) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		router:   router,
		now:      time.Now,
	}
}

func (s *SessionStore) newMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	}
}

// Create starts a new session seeded with the greeting and returns a copy.
func (s *SessionStore) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
		Messages:  []Message{s.newMessage(RoleAssistant, Greeting)},
	}
	s.sessions[sess.ID] = sess
	return snapshot(sess)
}

// Get returns a copy of the session, or false if it does not exist.
func (s *SessionStore) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return snapshot(sess), true
}

// Reset discards the session's history and re-seeds it with a fresh
// greeting, leaving exactly one message.
func (s *SessionStore) Reset(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	sess.Messages = []Message{s.newMessage(RoleAssistant, Greeting)}
	return snapshot(sess), true
}

// PostMessage appends the user message, routes it, then appends the
// assistant reply; both carry capture-time timestamps. The assistant
// message is returned.
func (s *SessionStore) PostMessage(id, content string) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Message{}, false
	}

	userMsg := s.newMessage(RoleUser, content)
	sess.Messages = append(sess.Messages, userMsg)

	_, reply := s.router.Route(content)
	assistantMsg := s.newMessage(RoleAssistant, reply)
	sess.Messages = append(sess.Messages, assistantMsg)

	return assistantMsg, true
}

// snapshot copies a session so callers never share the live message slice.
func snapshot(sess *Session) Session {
	out := *sess
	out.Messages = make([]Message, len(sess.Messages))
	copy(out.Messages, sess.Messages)
	return out
}
