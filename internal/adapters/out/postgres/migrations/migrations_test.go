package migrations_test

import (
	"testing"

	"littlelemon/internal/adapters/out/postgres/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersions(t *testing.T) {
	versions, err := migrations.Versions()

	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, versions)
}
