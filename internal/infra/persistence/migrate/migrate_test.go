package migrate

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_SortedSQLOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_orders.sql":  {Data: []byte("SELECT 2")},
		"0001_init.sql":    {Data: []byte("SELECT 1")},
		"README.md":        {Data: []byte("notes")},
		"archive/0000.sql": {Data: []byte("SELECT 0")},
	}

	names, err := migrationNames(fsys)

	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql", "0002_orders.sql"}, names)
}
