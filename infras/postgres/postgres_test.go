package postgres_test

import (
	"net/url"
	"testing"
	"venuely/config"
	"venuely/infras/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	node := config.PostgresNode{
		Host:     "db.internal",
		Port:     "5432",
		Username: "venuely",
		Password: "p@ss:word",
		Name:     "venues",
		SSLMode:  "disable",
	}

	tests := []struct {
		name      string
		node      func() config.PostgresNode
		prefix    string
		extra     url.Values
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name:      "plain",
			node:      func() config.PostgresNode { return node },
			wantPath:  "/venues",
			wantQuery: map[string]string{"sslmode": "disable"},
		},
		{
			name:      "prefixed with timezone",
			node:      func() config.PostgresNode { n := node; n.Timezone = "Asia/Karachi"; return n },
			prefix:    "staging_",
			wantPath:  "/staging_venues",
			wantQuery: map[string]string{"sslmode": "disable", "timezone": "Asia/Karachi"},
		},
		{
			name:      "extra query",
			node:      func() config.PostgresNode { return node },
			extra:     url.Values{"x-migrations-table": {"schema_migrations"}},
			wantPath:  "/venues",
			wantQuery: map[string]string{"sslmode": "disable", "x-migrations-table": "schema_migrations"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := url.Parse(postgres.DSN(tt.node(), tt.prefix, tt.extra))
			require.NoError(t, err)

			assert.Equal(t, "postgres", parsed.Scheme)
			assert.Equal(t, "db.internal:5432", parsed.Host)
			assert.Equal(t, tt.wantPath, parsed.Path)

			password, _ := parsed.User.Password()
			assert.Equal(t, "venuely", parsed.User.Username())
			assert.Equal(t, "p@ss:word", password)

			query := parsed.Query()
			assert.Len(t, query, len(tt.wantQuery))

			for key, want := range tt.wantQuery {
				assert.Equal(t, want, query.Get(key))
			}
		})
	}
}
