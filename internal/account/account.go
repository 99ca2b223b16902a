package account

import (
	"encoding/json"
	"errors"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 6

	usersFile   = "users.json"
	sessionFile = "session.json"
)

// User is the stored record. PasswordHash never leaves this package.
type User struct {
	UID          string    `json:"uid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the public view of a user.
type Profile struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type session struct {
	UID      string    `json:"uid"`
	SignedIn time.Time `json:"signed_in"`
}

// Store keeps users and the current session as JSON files in one directory.
type Store struct {
	dir string
	now func() time.Time

	mu sync.Mutex
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Store{dir: dir, now: time.Now}, nil
}

func (u *User) profile() *Profile {
	return &Profile{
		UID:       u.UID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Register creates an account and signs it in.
func (s *Store) Register(name, email, password, confirm string) (*Profile, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrMissingFields
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLen {
		return nil, ErrWeakPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrEmailInUse
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := s.now()
	u := &User{
		UID:          uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	users = append(users, u)
	if err := s.saveUsers(users); err != nil {
		return nil, err
	}
	if err := s.saveSession(&session{UID: u.UID, SignedIn: now}); err != nil {
		return nil, err
	}
	return u.profile(), nil
}

// Authenticate checks credentials without touching the session.
func (s *Store) Authenticate(email, password string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}
	return u.profile(), nil
}

func (s *Store) authenticate(email, password string) (*User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrMissingFields
	}
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return u, nil
	}
	return nil, ErrInvalidCredentials
}

func (s *Store) Login(email, password string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(&session{UID: u.UID, SignedIn: s.now()}); err != nil {
		return nil, err
	}
	return u.profile(), nil
}

func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Current returns the signed-in user or ErrNotSignedIn.
func (s *Store) Current() (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.current()
	if err != nil {
		return nil, err
	}
	return u.profile(), nil
}

func (s *Store) current() (*User, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, err
	}
	var sess session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return s.find(sess.UID)
}

func (s *Store) find(uid string) (*User, error) {
	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, ErrNotSignedIn
}

// Profile looks a user up by UID.
func (s *Store) Profile(uid string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.find(uid)
	if err != nil {
		return nil, err
	}
	return u.profile(), nil
}

// ChangePassword re-authenticates the current user, replaces the password
// and signs the user out.
func (s *Store) ChangePassword(current, next, confirm string) error {
	if next != confirm {
		return ErrPasswordMismatch
	}
	if len(next) < MinPasswordLen {
		return ErrWeakPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.current()
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users, err := s.loadUsers()
	if err != nil {
		return err
	}
	for _, stored := range users {
		if stored.UID == u.UID {
			stored.PasswordHash = string(hash)
			stored.UpdatedAt = s.now()
		}
	}
	if err := s.saveUsers(users); err != nil {
		return err
	}

	err = os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) loadUsers() ([]*User, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, usersFile))
	if errors.Is(err, os.ErrNotExist) {
		return []*User{}, nil
	}
	if err != nil {
		return nil, err
	}
	var users []*User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) saveUsers(users []*User) error {
	return writeJSON(filepath.Join(s.dir, usersFile), users)
}

func (s *Store) saveSession(sess *session) error {
	return writeJSON(filepath.Join(s.dir, sessionFile), sess)
}

// writeJSON replaces path atomically.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// FormatCreated renders a timestamp as day/month/year, or "-" when unset.
func FormatCreated(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006")
}
