package imdshttp

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tareqmohamed/instanceinfo/internal/models"
)

// TokenStore хранит выданные токены и время их истечения. Безопасен для конкурентного использования.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

// NewTokenStore создаёт пустое хранилище токенов.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: map[string]time.Time{},
		now:    time.Now,
	}
}

// Create выдаёт новый токен, действующий ttl.
func (s *TokenStore) Create(ttl time.Duration) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.tokens[token] = s.now().Add(ttl)
	s.mu.Unlock()

	return token
}

// Check проверяет токен; просроченный токен удаляется сразу.
func (s *TokenStore) Check(token string) error {
	if token == "" {
		return models.ErrTokenMissing
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return models.ErrTokenExpired
	}
	if !s.now().Before(expiry) {
		delete(s.tokens, token)
		return models.ErrTokenExpired
	}

	return nil
}

// Prune удаляет все просроченные токены и возвращает их количество.
func (s *TokenStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for t, expiry := range s.tokens {
		if !now.Before(expiry) {
			delete(s.tokens, t)
			n++
		}
	}

	return n
}

// Len возвращает число хранимых токенов.
func (s *TokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
