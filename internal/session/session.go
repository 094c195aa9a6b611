// Package session scopes all mutable conversation state. Every session owns
// its own cart engine, conversation memory and cosmetic RNG; nothing is
// shared between sessions.
package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
)

type Session struct {
	ID     string
	Engine *order.Engine
	Memory *Memory

	mu                   sync.Mutex
	selectedRestaurantID int
	ecoMode              bool
	rng                  *rand.Rand
}

func (s *Session) SelectRestaurant(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedRestaurantID = id
}

func (s *Session) SelectedRestaurant() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedRestaurantID
}

// ToggleEco flips eco-friendly mode and returns the new state.
func (s *Session) ToggleEco() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ecoMode = !s.ecoMode
	return s.ecoMode
}

func (s *Session) EcoMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ecoMode
}

// Intn draws from the session's cosmetic RNG.
func (s *Session) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Session) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Manager hands out isolated sessions keyed by ID.
type Manager struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	newEngine  func() *order.Engine
	randSource func() int64
}

func NewManager(newEngine func() *order.Engine) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		newEngine:  newEngine,
		randSource: func() int64 { return time.Now().UnixNano() },
	}
}

// WithRandSource overrides RNG seeding, used by tests for deterministic
// cosmetic output.
func (m *Manager) WithRandSource(seed func() int64) *Manager {
	m.randSource = seed
	return m
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &Session{
		ID:     id,
		Engine: m.newEngine(),
		Memory: NewMemory(),
		rng:    rand.New(rand.NewSource(m.randSource())),
	}
	m.sessions[id] = s
	log.Debug().Str("session_id", id).Msg("session created")
	return s
}

// Close tears a session down, cancelling any in-flight stage timers.
func (m *Manager) Close(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return false
	}
	s.Engine.Cancel()
	log.Debug().Str("session_id", id).Msg("session closed")
	return true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
