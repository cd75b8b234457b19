package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuely/permissions"
)

func TestGet_LoadsEmbeddedEndpoints(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantRoles []string
		wantSkip  bool
	}{
		{name: "login is public", path: "/v1/auth/login", method: "POST", wantSkip: true},
		{name: "sending invites needs organizer", path: "/v1/invites", method: "POST", wantRoles: []string{"organizer"}},
		{name: "trailing slash matches", path: "/v1/invites/", method: "POST", wantRoles: []string{"organizer"}},
		{name: "acting on invites needs user", path: "/v1/invites/{id}", method: "PATCH", wantRoles: []string{"user"}},
		{name: "chats are open to any role", path: "/v1/chats", method: "GET"},
		{name: "method matters", path: "/v1/auth/login", method: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRoles, permission.Permissions)
		})
	}
}
