package parambuilder

import (
	"context"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParamsFromRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectQuery("").WithArgs(1).WillReturnRows(sqlmock.NewRows([]string{"q", "page"}).AddRow(" hello ", 2))

	params, err := ParamsFromRow(context.Background(), db, "SELECT q, page FROM searches WHERE id = ?", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, params.Len())
	q, err := Query(params)
	require.NoError(t, err)
	assert.Equal(t, "?page=2&q=hello", q)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParamsFromRow_NullColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectQuery("").WillReturnRows(sqlmock.NewRows([]string{"a", "b"}).AddRow("x", nil))

	params, err := ParamsFromRow(context.Background(), db, "SELECT a, b FROM t")
	require.NoError(t, err)
	v, ok := params.Get("b")
	require.True(t, ok)
	assert.Equal(t, Null{}, v)
}

func TestParamsFromRow_Errors(t *testing.T) {
	t.Run("nil db", func(t *testing.T) {
		_, err := ParamsFromRow(context.Background(), nil, "SELECT * FROM t")
		require.Error(t, err)
		assert.True(t, IsType(err, ErrorArgumentRequired))
	})
	t.Run("not select", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		_, err = ParamsFromRow(context.Background(), db, "DELETE FROM t")
		require.Error(t, err)
		assert.True(t, IsType(err, ErrorArgumentInvalid))
		assert.Equal(t, "query must start with \"SELECT\"", err.Error())
	})
	t.Run("query fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery("").WillReturnError(errors.New("boom"))
		_, err = ParamsFromRow(context.Background(), db, "SELECT * FROM t")
		require.Error(t, err)
	})
	t.Run("no rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery("").WillReturnRows(sqlmock.NewRows([]string{"a"}))
		_, err = ParamsFromRow(context.Background(), db, "SELECT a FROM t")
		require.Error(t, err)
	})
}
