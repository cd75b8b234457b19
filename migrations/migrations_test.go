package migrations_test

import (
	"io/fs"
	"strings"
	"testing"
	"venuely/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrations.Postgres, "postgres")
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}

	for _, entry := range entries {
		name := entry.Name()

		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	assert.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}
