package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOmitsAuthorizationWhenLoggedOut(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth, hasAuth = r.Header.Get("Authorization"), len(r.Header.Values("Authorization")) > 0
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	require.NoError(t, c.Get(context.Background(), "/healthz", nil))
	assert.False(t, hasAuth, "no Authorization header without a token")
	assert.Empty(t, gotAuth)
}

func TestTokenReadAtCallTime(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer srv.Close()

	token := ""
	c := New(srv.URL, func() string { return token })

	require.NoError(t, c.Post(context.Background(), "/loggedIn", nil, nil))
	assert.Empty(t, gotAuth)

	token = "abc123"
	require.NoError(t, c.Post(context.Background(), "/loggedIn", nil, nil))
	assert.Equal(t, "Bearer abc123", gotAuth, "token change applies to the next call")
}

func TestErrorMessageParsedFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email already registered"})
	}))
	defer srv.Close()

	err := New(srv.URL, nil).Post(context.Background(), "/signup", map[string]string{}, nil)
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusConflict, re.Status)
	assert.Equal(t, "Email already registered", re.Message)
}

func TestErrorFieldFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Title is required"})
	}))
	defer srv.Close()

	err := New(srv.URL, nil).Post(context.Background(), "/uploadFiles", nil, nil)
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "Title is required", re.Message)
}

func TestGenericMessageForUnparseableError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	err := New(srv.URL, nil).Get(context.Background(), "/files", nil)
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusBadGateway, re.Status)
	assert.Equal(t, "Request failed", re.Message)
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := New(srv.URL, nil).Get(context.Background(), "/files", nil)
	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Zero(t, re.Status, "no response means status 0")
	assert.NotEmpty(t, re.Message)
}

func TestSuccessDecodesInto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"items": []string{"a", "b"}, "total": 3})
	}))
	defer srv.Close()

	var out struct {
		Items []string `json:"items"`
		Total int      `json:"total"`
	}
	require.NoError(t, New(srv.URL, nil).Get(context.Background(), "/getMyPortfolioItems", &out))
	assert.Equal(t, []string{"a", "b"}, out.Items)
	assert.Equal(t, 3, out.Total)
}
