package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMigrator_InvalidURL(t *testing.T) {
	m, err := NewMigrator("not-a-database-url")
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.NotEmpty(t, entries)

	// up/down files must come in pairs
	assert.Equal(t, 0, len(entries)%2)
}
