package user

import (
	"errors"
	"maps"
	"strings"
	"sync"
	"time"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// Store is the in-memory user registry plus per-user profiles, seeded with
// sample data at startup. Every user gets a default profile on creation.
type Store struct {
	mu       sync.RWMutex
	nextID   int
	byID     map[int]*User
	users    []*User // insertion order
	profiles map[int]Profile
}

func NewStore() *Store {
	s := &Store{
		nextID:   1,
		byID:     make(map[int]*User),
		profiles: make(map[int]Profile),
	}
	for _, u := range seed() {
		s.Create(u)
	}
	return s
}

func seed() []User {
	return []User{
		{Username: "john.doe", Email: "john@example.com", FirstName: "John", LastName: "Doe"},
		{Username: "jane.smith", Email: "jane@example.com", FirstName: "Jane", LastName: "Smith"},
	}
}

func (s *Store) Create(u User) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = time.Now().UTC()

	stored := u
	s.byID[u.ID] = &stored
	s.users = append(s.users, &stored)
	s.profiles[u.ID] = DefaultProfile()

	return u
}

func (s *Store) Get(id int) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return *u, nil
}

func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out
}

// Search filters users by substring match on email and username. Empty
// filters match everything.
func (s *Store) Search(email, username string) []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0)
	for _, u := range s.users {
		if email != "" && !strings.Contains(u.Email, email) {
			continue
		}
		if username != "" && !strings.Contains(u.Username, username) {
			continue
		}
		out = append(out, *u)
	}
	return out
}

func (s *Store) Profile(id int) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return copyProfile(p), nil
}

// UpdateProfile replaces the stored profile wholesale.
func (s *Store) UpdateProfile(id int, p Profile) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return Profile{}, ErrProfileNotFound
	}
	s.profiles[id] = copyProfile(p)
	return copyProfile(p), nil
}

func copyProfile(p Profile) Profile {
	cp := p
	cp.Preferences = make(map[string]string, len(p.Preferences))
	maps.Copy(cp.Preferences, p.Preferences)
	return cp
}
