package promptvar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPostgresConfig(t *testing.T) {
	config := DefaultPostgresConfig()

	assert.Equal(t, PostgresDefaultMaxOpenConns, config.MaxOpenConns)
	assert.Equal(t, PostgresDefaultMaxIdleConns, config.MaxIdleConns)
	assert.Equal(t, PostgresDefaultConnMaxLifetime, config.ConnMaxLifetime)
	assert.Equal(t, PostgresDefaultConnMaxIdleTime, config.ConnMaxIdleTime)
	assert.Equal(t, PostgresTablePrefix, config.TablePrefix)
	assert.Equal(t, PostgresDefaultQueryTimeout, config.QueryTimeout)
	assert.False(t, config.AutoMigrate)
	assert.Empty(t, config.ConnectionString)
}

func TestNewPostgresStorage_EmptyConnectionString(t *testing.T) {
	_, err := NewPostgresStorage(PostgresConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPostgresEmptyConnString)

	var storageErr *StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestPostgresStorage_TableNames(t *testing.T) {
	t.Run("default prefix", func(t *testing.T) {
		s := &PostgresStorage{config: DefaultPostgresConfig()}
		assert.Equal(t, "promptvar_templates", s.tableName())
		assert.Equal(t, "promptvar_schema_migrations", s.migrationsTableName())
	})

	t.Run("custom prefix", func(t *testing.T) {
		config := DefaultPostgresConfig()
		config.TablePrefix = "myapp_"
		s := &PostgresStorage{config: config}
		assert.Equal(t, "myapp_templates", s.tableName())
	})
}

func TestPostgresStorage_Migrations(t *testing.T) {
	s := &PostgresStorage{config: DefaultPostgresConfig()}
	migrations := s.migrations()

	require.NotEmpty(t, migrations)
	for i, m := range migrations {
		assert.Equal(t, i+1, m.version)
		assert.NotEmpty(t, m.description)
		assert.NotEmpty(t, m.statement)
	}
}

func TestEncodeJSONColumn(t *testing.T) {
	t.Run("nil maps to NULL", func(t *testing.T) {
		got, err := encodeJSONColumn(nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty defaults map to NULL", func(t *testing.T) {
		got, err := encodeJSONColumn(map[string]any{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty metadata maps to NULL", func(t *testing.T) {
		got, err := encodeJSONColumn(map[string]string{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("non-empty map encodes", func(t *testing.T) {
		got, err := encodeJSONColumn(map[string]any{"k": "v"})
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"k":"v"}`), got)
	})

	t.Run("unencodable value", func(t *testing.T) {
		_, err := encodeJSONColumn(map[string]any{"ch": make(chan int)})
		require.Error(t, err)
	})
}

func TestJoinConditions(t *testing.T) {
	assert.Equal(t, "a = $1", joinConditions([]string{"a = $1"}))
	assert.Equal(t, "a = $1 AND b = $2", joinConditions([]string{"a = $1", "b = $2"}))
}

func TestPostgresConfig_QueryTimeoutApplied(t *testing.T) {
	// Zero-value fields fall back to defaults during construction; the
	// connection string check fires first so no database is needed here.
	config := PostgresConfig{QueryTimeout: 5 * time.Second}
	_, err := NewPostgresStorage(config)
	require.Error(t, err)
}
