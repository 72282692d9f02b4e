// Package session owns the authenticated user state shared by every
// dashboard view: the in-memory session, its durable copy in a local
// SQLite key/value table, and the validate-on-startup lifecycle. The
// store is the only writer; consumers read through Token, Current and
// Authenticated.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Owen-Kz/bn-portfolio/internal/client/api"
)

// Session is the authenticated user plus the bearer token proving it. A
// non-nil session always carries a non-empty token.
type Session struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// ErrAuthentication is returned by Login for invalid credentials or a
// login response missing its token. The previous session, if any, is left
// untouched.
var ErrAuthentication = errors.New("authentication failed")

// sessionKey is the fixed row key the session persists under, the
// equivalent of the browser build's localStorage entry.
const sessionKey = "user"

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       uint64 `json:"id"`
		Email    string `json:"email"`
		Username string `json:"username"`
	} `json:"user"`
}

// Store holds the current session and its persistence. Construct with
// NewStore, then call Initialize once before rendering anything gated on
// authentication.
type Store struct {
	mu      sync.RWMutex
	db      *sql.DB
	client  *api.Client
	current *Session
	ready   bool
}

// NewStore binds the store to a local database and the backend origin. It
// creates the storage table if missing. The store builds its own API
// client wired to its own token so validation calls authenticate with
// whatever session is being checked.
func NewStore(db *sql.DB, baseURL string) (*Store, error) {
	s := &Store{db: db}
	s.client = api.New(baseURL, s.Token)
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS session_data (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize restores the persisted session, if any, and revalidates its
// token against the backend. Any failure (HTTP error status, unreachable
// backend, corrupt persisted JSON) clears the session, so the store fails
// closed.
// Protected views must not render until Initialize returns.
func (s *Store) Initialize(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.ready = true
		s.mu.Unlock()
	}()

	raw, err := s.load(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil // nothing persisted; stay logged out
		}
		return err
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		return s.clear(ctx)
	}

	// Set before the probe so the validation call carries this token.
	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	if err := s.client.Post(ctx, "/loggedIn", nil, nil); err != nil {
		// Invalid token and unreachable backend are treated the same.
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
		return s.clear(ctx)
	}
	return nil
}

// Login authenticates and, on success, swaps in and persists the new
// session. On any failure the prior session state is untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	err := s.client.Post(ctx, "/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		var re *api.RequestError
		if errors.As(err, &re) {
			return errors.Join(ErrAuthentication, errors.New(re.Message))
		}
		return err
	}
	if resp.Token == "" {
		return ErrAuthentication
	}

	sess := Session{
		ID:    resp.User.ID,
		Email: resp.User.Email,
		Name:  resp.User.Username,
		Token: resp.Token,
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.save(ctx, raw); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return nil
}

// Logout clears both the in-memory and persisted session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.clear(ctx)
}

// Token returns the current bearer token or "". It never fails; callers
// in the request path must not have to handle errors just to read a token.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Current returns a copy of the session and whether one exists.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Authenticated reports whether a session is present.
func (s *Store) Authenticated() bool {
	_, ok := s.Current()
	return ok
}

// Ready reports whether Initialize has resolved. Views gate on this to
// avoid flashing protected content before validation completes.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Client exposes the store-bound API client so dependent controllers make
// their calls with the live token.
func (s *Store) Client() *api.Client {
	return s.client
}

func (s *Store) load(ctx context.Context) ([]byte, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM session_data WHERE key = ?", sessionKey).Scan(&raw)
	return raw, err
}

func (s *Store) save(ctx context.Context, raw []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO session_data (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		sessionKey, raw)
	return err
}

func (s *Store) clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM session_data WHERE key = ?", sessionKey)
	return err
}
