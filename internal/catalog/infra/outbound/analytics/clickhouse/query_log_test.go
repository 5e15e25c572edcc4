package clickhouse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

func TestQueryLogRepo_LogBatch(t *testing.T) {
	// Arrange
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQueryLogRepo(db)
	at := time.Now().UTC()
	entries := []catalogDomain.QueryLogEntry{
		{Resource: "coins", OrderBy: "year desc", Page: 1, PageSize: 10, TotalCount: 3, At: at},
		{Resource: "countries", OrderBy: "name", Fields: "name", Page: 2, PageSize: 50, TotalCount: 60, At: at},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT INTO query_log`)
	prep.ExpectExec().WithArgs("coins", "year desc", "", uint32(1), uint32(10), uint32(3), at).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs("countries", "name", "name", uint32(2), uint32(50), uint32(60), at).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err = repo.LogBatch(context.Background(), entries)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryLogRepo_LogBatchRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQueryLogRepo(db)

	mock.ExpectBegin()
	mock.ExpectPrepare(`INSERT INTO query_log`).ExpectExec().WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err = repo.LogBatch(context.Background(), []catalogDomain.QueryLogEntry{{Resource: "coins"}})

	assert.ErrorContains(t, err, "boom")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryLogRepo_TopOrderBy(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewQueryLogRepo(db)
	since := time.Now().Add(-24 * time.Hour)

	mock.ExpectQuery(`FROM query_log`).
		WithArgs("coins", since, 2).
		WillReturnRows(sqlmock.NewRows([]string{"clause", "requests"}).
			AddRow("year desc", uint64(7)).
			AddRow("name", uint64(3)))

	stats, err := repo.TopOrderBy(context.Background(), "coins", since, 2)

	require.NoError(t, err)
	assert.Equal(t, []catalogDomain.OrderByStat{
		{OrderBy: "year desc", Requests: 7},
		{OrderBy: "name", Requests: 3},
	}, stats)
}
