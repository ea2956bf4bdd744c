package session

import (
	"net/http"
	"sync"
	"time"

	"pocketclass/config"
	"pocketclass/models"
	"pocketclass/utils"

	"go.uber.org/zap"
)

// DefaultSessionManager is the production implementation.
type DefaultSessionManager struct {
	Endpoint string
	APIKey   string
	HTTP     *http.Client

	mu        sync.Mutex
	current   *models.Session
	listeners map[int]func(*models.Session)
	nextID    int
}

// NewManager builds a session manager from the loaded application config.
func NewManager() *DefaultSessionManager {
	return &DefaultSessionManager{
		Endpoint: signInEndpoint,
		APIKey:   config.AppConfig.FirebaseAPIKey,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Current returns a copy of the current session, or nil when signed out.
// Callers must never write through the returned value's token fields back
// into the manager; all changes flow from the provider exchange.
func (m *DefaultSessionManager) Current() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	copied := *m.current
	return &copied
}

// SignOut clears the current session and notifies listeners.
func (m *DefaultSessionManager) SignOut() {
	m.publish(nil)
	utils.GetLogger().Info("signed out")
}

// OnAuthStateChanged registers a listener for sign-in/sign-out changes.
func (m *DefaultSessionManager) OnAuthStateChanged(fn func(*models.Session)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listeners == nil {
		m.listeners = make(map[int]func(*models.Session))
	}
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.listeners, id)
		})
	}
}

// publish installs the new session and notifies listeners outside the lock.
func (m *DefaultSessionManager) publish(s *models.Session) {
	m.mu.Lock()
	m.current = s
	notify := make([]func(*models.Session), 0, len(m.listeners))
	for _, fn := range m.listeners {
		notify = append(notify, fn)
	}
	m.mu.Unlock()

	for _, fn := range notify {
		var copied *models.Session
		if s != nil {
			c := *s
			copied = &c
		}
		fn(copied)
	}
	if s != nil {
		utils.GetLogger().Debug("session published", zap.String("uid", s.UID))
	}
}
