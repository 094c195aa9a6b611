package session

import (
	"strings"
	"sync"
	"time"
)

const (
	memoryCap     = 20
	contextWindow = 5
)

type Turn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Memory is a bounded rolling log of recent turns. It only widens the
// matching context for fallback replies; intent classification never reads it.
type Memory struct {
	mu    sync.Mutex
	turns []Turn
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Add(role, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, Turn{Role: role, Text: text, Timestamp: time.Now()})
	if len(m.turns) > memoryCap {
		m.turns = m.turns[len(m.turns)-memoryCap:]
	}
}

func (m *Memory) Turns() []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Context renders the last few turns as "role: text" lines.
func (m *Memory) Context() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	start := len(m.turns) - contextWindow
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	for i, t := range m.turns[start:] {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.Role)
		b.WriteString(": ")
		b.WriteString(t.Text)
	}
	return b.String()
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}
