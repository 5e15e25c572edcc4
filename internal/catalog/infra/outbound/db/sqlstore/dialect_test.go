package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect_Rebind(t *testing.T) {
	q := `UPDATE coins SET type = ?, year = ? WHERE id = ?`

	assert.Equal(t, `UPDATE coins SET type = $1, year = $2 WHERE id = $3`, Postgres.Rebind(q))
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, q, MySQL.Rebind(q))
}

func TestDialectFor(t *testing.T) {
	d, err := DialectFor("Postgres")
	require.NoError(t, err)
	assert.Equal(t, "pgx", d.Driver)

	_, err = DialectFor("oracle")
	assert.Error(t, err)
}

func TestDialect_Expand(t *testing.T) {
	assert.Equal(t, "id UUID, payload JSONB", Postgres.expand("id {{id}}, payload {{json}}"))
	assert.Equal(t, "id CHAR(36), payload JSON", MySQL.expand("id {{id}}, payload {{json}}"))
}
