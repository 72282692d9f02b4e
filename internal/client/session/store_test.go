package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var memDBSeq int

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	memDBSeq++
	dsn := fmt.Sprintf("file:session_test_%d?mode=memory&cache=shared", memDBSeq)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

// fakeBackend mimics the auth endpoints: one valid token, one user.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Email != "bisi@example.com" || req.Password != "hunter2!" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "good-token",
			"user": map[string]any{
				"id":       uint64(42),
				"email":    req.Email,
				"username": "bisi",
			},
		})
	})
	mux.HandleFunc("/loggedIn", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid or expired token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginPersistsAndRestores(t *testing.T) {
	srv := fakeBackend(t)
	db := openTestDB(t)
	ctx := context.Background()

	store, err := NewStore(db, srv.URL)
	require.NoError(t, err)
	require.NoError(t, store.Initialize(ctx))
	assert.True(t, store.Ready())
	assert.False(t, store.Authenticated(), "no persisted session means logged out")

	require.NoError(t, store.Login(ctx, "bisi@example.com", "hunter2!"))
	sess, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, uint64(42), sess.ID)
	assert.Equal(t, "bisi", sess.Name)
	assert.Equal(t, "good-token", store.Token())

	// A fresh store over the same database restores and revalidates.
	restored, err := NewStore(db, srv.URL)
	require.NoError(t, err)
	require.NoError(t, restored.Initialize(ctx))
	assert.True(t, restored.Authenticated())
	assert.Equal(t, "good-token", restored.Token())
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	srv := fakeBackend(t)
	db := openTestDB(t)
	ctx := context.Background()

	store, err := NewStore(db, srv.URL)
	require.NoError(t, err)
	require.NoError(t, store.Login(ctx, "bisi@example.com", "hunter2!"))

	err = store.Login(ctx, "bisi@example.com", "wrong")
	require.ErrorIs(t, err, ErrAuthentication)
	assert.Contains(t, err.Error(), "Invalid email or password")
	assert.True(t, store.Authenticated(), "prior session survives a failed login")
	assert.Equal(t, "good-token", store.Token())
}

func TestInitializeClearsRejectedToken(t *testing.T) {
	srv := fakeBackend(t)
	db := openTestDB(t)
	ctx := context.Background()

	store, err := NewStore(db, srv.URL)
	require.NoError(t, err)

	stale, _ := json.Marshal(Session{ID: 42, Email: "bisi@example.com", Name: "bisi", Token: "expired-token"})
	require.NoError(t, store.save(ctx, stale))

	require.NoError(t, store.Initialize(ctx))
	assert.True(t, store.Ready())
	assert.False(t, store.Authenticated(), "rejected token clears the session")
	assert.Empty(t, store.Token())

	_, err = store.load(ctx)
	assert.ErrorIs(t, err, sql.ErrNoRows, "persisted copy removed")
}

func TestInitializeClearsCorruptPersistedSession(t *testing.T) {
	srv := fakeBackend(t)
	db := openTestDB(t)
	ctx := context.Background()

	store, err := NewStore(db, srv.URL)
	require.NoError(t, err)
	require.NoError(t, store.save(ctx, []byte("{not json")))

	require.NoError(t, store.Initialize(ctx))
	assert.False(t, store.Authenticated())
	_, err = store.load(ctx)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInitializeFailsClosedWhenBackendDown(t *testing.T) {
	srv := fakeBackend(t)
	db := openTestDB(t)
	ctx := context.Background()

	store, err := NewStore(db, srv.URL)
	require.NoError(t, err)
	require.NoError(t, store.Login(ctx, "bisi@example.com", "hunter2!"))

	srv.Close()

	restored, err := NewStore(db, srv.URL)
	require.NoError(t, err)
	require.NoError(t, restored.Initialize(ctx))
	assert.True(t, restored.Ready())
	assert.False(t, restored.Authenticated(), "unreachable backend means logged out")
}

func TestLogout(t *testing.T) {
	srv := fakeBackend(t)
	db := openTestDB(t)
	ctx := context.Background()

	store, err := NewStore(db, srv.URL)
	require.NoError(t, err)
	require.NoError(t, store.Login(ctx, "bisi@example.com", "hunter2!"))

	require.NoError(t, store.Logout(ctx))
	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())
	_, err = store.load(ctx)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
