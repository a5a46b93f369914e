package mockapi

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials is returned for an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// User is an account held by the mock server.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Store keeps accounts and issued tokens in memory. Nothing survives a
// restart.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	tokens  map[string]string // token -> user ID
	cost    int
}

// NewStore creates an empty store hashing passwords at the given bcrypt cost.
// A cost below bcrypt.MinCost uses bcrypt.DefaultCost.
func NewStore(cost int) *Store {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Store{
		byEmail: make(map[string]*User),
		tokens:  make(map[string]string),
		cost:    cost,
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create adds an account. Emails are compared case-insensitively.
func (s *Store) Create(username, email, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := emailKey(email)
	if _, exists := s.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}
	s.byEmail[key] = user
	return user, nil
}

// Authenticate checks a password and returns the matching account.
func (s *Store) Authenticate(email, password string) (*User, error) {
	s.mu.RLock()
	user, ok := s.byEmail[emailKey(email)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken creates an opaque session token for user.
func (s *Store) IssueToken(user *User) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = user.ID
	s.mu.Unlock()
	return token
}

// TokenOwner returns the user ID a token was issued to.
func (s *Store) TokenOwner(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokens[token]
	return id, ok
}

// Count returns the number of accounts.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail)
}
