package client_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuely/internal/client"
	"venuely/internal/session"
)

type fakeAPI struct {
	role       string
	actStatus  int
	loggedOut  bool
	lastAction string
}

func writeData(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": message})
}

func (f *fakeAPI) handler() http.Handler {
	mux := chi.NewRouter()

	mux.Post("/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)

		if req["password"] != "secret123" {
			writeError(w, http.StatusBadRequest, "invalid email or password")

			return
		}

		writeData(w, http.StatusOK, map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"expires_at":    time.Now().Add(time.Hour).Format(time.RFC3339),
			"account":       map[string]string{"id": "u-1", "email": req["email"]},
			"role":          f.role,
		})
	})

	mux.Get("/v1/auth/role", func(w http.ResponseWriter, _ *http.Request) {
		if f.role == "" {
			writeError(w, http.StatusNotFound, "role not found")

			return
		}

		writeData(w, http.StatusOK, map[string]string{"user_id": "u-1", "role": f.role})
	})

	mux.Post("/v1/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		f.loggedOut = true

		w.WriteHeader(http.StatusOK)
	})

	mux.Patch("/v1/invites/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.lastAction = req["action"]

		if f.actStatus != 0 {
			writeError(w, f.actStatus, "invite already accepted")

			return
		}

		chatID := "c-1"
		writeData(w, http.StatusOK, map[string]any{
			"invite_id":      chi.URLParam(r, "id"),
			"status":         req["action"],
			"chat_id":        chatID,
			"chat_available": true,
		})
	})

	return mux
}

func newConsole(t *testing.T, fake *fakeAPI) (func(args ...string) (string, error), *client.FileStore) {
	t.Helper()

	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	cfg := client.Config{APIURL: srv.URL, SessionFile: filepath.Join(t.TempDir(), "session.json"), TimeoutSeconds: 5}
	api := client.NewAPI(cfg)
	store := client.NewFileStore(cfg.SessionFile)

	run := func(args ...string) (string, error) {
		provider := client.NewProvider(api, store)
		roles := session.NewRoleResolverWithTimeout(client.NewRoleSource(api, store), time.Second)
		resolver := session.New(provider, roles, "")
		defer resolver.Close()

		out := &bytes.Buffer{}
		err := client.NewConsole(api, resolver).App(out).RunContext(context.Background(), append([]string{"venuely"}, args...))

		return out.String(), err
	}

	return run, store
}

func TestConsole_SignInPersistsSession(t *testing.T) {
	fake := &fakeAPI{role: "user"}
	run, store := newConsole(t, fake)

	out, err := run("signin", "--email", "host@example.com", "--password", "secret123")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as host@example.com (user)")

	stored, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "access-1", stored.AccessToken)

	out, err = run("whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "host@example.com\tuser")
}

func TestConsole_SignInFailureKeepsNoSession(t *testing.T) {
	run, store := newConsole(t, &fakeAPI{role: "user"})

	_, err := run("signin", "--email", "host@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestConsole_MissingRoleFallsBackToUser(t *testing.T) {
	run, _ := newConsole(t, &fakeAPI{})

	out, err := run("signin", "--email", "host@example.com", "--password", "secret123")
	require.NoError(t, err)
	assert.Contains(t, out, "(user)")
}

func TestConsole_Accept(t *testing.T) {
	tests := []struct {
		name      string
		actStatus int
		wantOut   string
	}{
		{name: "opens the chat", wantOut: "Chat c-1 is open"},
		{name: "conflict is a message", actStatus: http.StatusConflict, wantOut: "invite already accepted"},
		{name: "role mismatch is a message", actStatus: http.StatusForbidden, wantOut: "cannot do this"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAPI{role: "user", actStatus: tt.actStatus}
			run, _ := newConsole(t, fake)

			_, err := run("signin", "--email", "host@example.com", "--password", "secret123")
			require.NoError(t, err)

			out, err := run("accept", "i-1")
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
			assert.Equal(t, "accepted", fake.lastAction)
		})
	}
}

func TestConsole_SignOutClearsSession(t *testing.T) {
	fake := &fakeAPI{role: "organizer"}
	run, store := newConsole(t, fake)

	_, err := run("signin", "--email", "venue@example.com", "--password", "secret123")
	require.NoError(t, err)

	out, err := run("signout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")
	assert.True(t, fake.loggedOut)

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)

	_, err = run("invites")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}
