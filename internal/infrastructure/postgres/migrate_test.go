package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/documentos?sslmode=disable", migrateURL("postgres://u:p@db:5432/documentos?sslmode=disable"))
	assert.Equal(t, "pgx5://db/documentos", migrateURL("postgresql://db/documentos"))
	assert.Equal(t, "pgx5://ya-convertida", migrateURL("pgx5://ya-convertida"))
}

func TestMigracionesEmbebidas(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	assert.Contains(t, names, "migrations/000001_create_documents.up.sql")
	assert.Contains(t, names, "migrations/000001_create_documents.down.sql")
	assert.Len(t, names, 2)
}
