package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMySQLDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USERNAME", "ci")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_DATABASE_PREFIX", "")

	t.Run("default prefix", func(t *testing.T) {
		m, err := NewMySQLDatabase("", "", "users")
		require.NoError(t, err)
		assert.Equal(t, "testing_users", m.Name)
		assert.Equal(t, "ci:secret@tcp(db.internal:3307)/testing_users", m.DSN())
		assert.Nil(t, m.DB())
	})

	t.Run("prefix from env file", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("DB_DATABASE_PREFIX=ci_run\n"), 0644))
		os.Unsetenv("DB_DATABASE_PREFIX")

		m, err := NewMySQLDatabase(envFile, "", "orders")
		require.NoError(t, err)
		assert.Equal(t, "ci_run_orders", m.Name)
	})

	t.Run("invalid names are rejected", func(t *testing.T) {
		for _, suffix := range []string{"x; DROP TABLE users", "a-b", "`x`"} {
			_, err := NewMySQLDatabase("", "testing", suffix)
			assert.Error(t, err, suffix)
		}
	})
}

func TestMySQLDatabase_Hooks(t *testing.T) {
	m, err := NewMySQLDatabase("", "testing", "hooks")
	require.NoError(t, err)

	hooks := m.Hooks()
	assert.NotNil(t, hooks.BeforeClass)
	assert.NotNil(t, hooks.AfterClass)
	assert.Nil(t, hooks.Before)

	// Without a connection there is nothing to drop
	assert.NoError(t, m.AfterClass())
}
