// pkg/memcache/chat_sessions.go
package memcache

import (
	"sync"
	"time"
)

type ChatTurn struct {
	Role    string
	Content string
}

type ChatSessionStore interface {
	Append(sessionID string, role, content string)

	// History returns the retained turns for sessionID, oldest first.
	// Expired sessions return nil.
	History(sessionID string) []ChatTurn
}

type sessionEntry struct {
	turns     []ChatTurn
	expiresAt time.Time
}

// ChatSessions keeps short conversation context in memory so the
// assistant can resolve follow-up messages. Single-node only; a
// restart drops all sessions, which is acceptable for chat context.
type ChatSessions struct {
	mu       sync.RWMutex
	data     map[string]sessionEntry
	ttl      time.Duration
	maxTurns int
}

func NewChatSessions(ttl time.Duration, maxTurns int) *ChatSessions {
	if maxTurns < 1 {
		maxTurns = 10
	}
	return &ChatSessions{
		data:     make(map[string]sessionEntry),
		ttl:      ttl,
		maxTurns: maxTurns,
	}
}

func (s *ChatSessions) Append(sessionID string, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		e = sessionEntry{}
	}

	e.turns = append(e.turns, ChatTurn{Role: role, Content: content})
	if len(e.turns) > s.maxTurns {
		e.turns = e.turns[len(e.turns)-s.maxTurns:]
	}
	e.expiresAt = time.Now().Add(s.ttl)
	s.data[sessionID] = e
}

func (s *ChatSessions) History(sessionID string) []ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil
	}

	out := make([]ChatTurn, len(e.turns))
	copy(out, e.turns)
	return out
}
