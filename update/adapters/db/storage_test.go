package db

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "github.com/zhashkevych/go-sqlxmock"

	"stemdex.dev/search/update/core"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.Newx()
	require.NoError(t, err)

	return &DB{
		log:  newTestLogger(),
		conn: conn,
	}, mock
}

func expectAddTx(mock sqlmock.Sqlmock, doc core.Doc) {
	mock.ExpectBegin()
	mock.ExpectExec(`insert into docs`).
		WithArgs(doc.ID, doc.URL, doc.Title, doc.Text).
		WillReturnResult(sqlmock.NewResult(0, 1))

	for i, w := range doc.Words {
		mock.ExpectQuery(`insert into words`).
			WithArgs(w).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i + 1)))
		mock.ExpectExec(`insert into doc_words`).
			WithArgs(doc.ID, int64(i+1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()
}

func TestDBAdd_Success(t *testing.T) {
	storage, mock := newMockDB(t)

	doc := core.Doc{
		ID:    1,
		URL:   "http://d/1",
		Title: "t",
		Text:  "x",
		Words: []string{"bar", "foo"},
	}

	// слова внутри документа сортируются перед вставкой
	expectAddTx(mock, doc)

	err := storage.Add(context.Background(), doc)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBAdd_DedupWords(t *testing.T) {
	storage, mock := newMockDB(t)

	doc := core.Doc{
		ID:    2,
		URL:   "u",
		Title: "t",
		Text:  "x",
		Words: []string{"foo", "foo", "bar"},
	}

	// после дедупликации и сортировки остаются bar, foo
	expected := doc
	expected.Words = []string{"bar", "foo"}
	expectAddTx(mock, expected)

	err := storage.Add(context.Background(), doc)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBAdd_DeadlockRetry(t *testing.T) {
	storage, mock := newMockDB(t)

	doc := core.Doc{
		ID:    3,
		URL:   "u",
		Title: "t",
		Text:  "x",
	}

	// первая попытка упирается в дедлок, вторая проходит
	mock.ExpectBegin()
	mock.ExpectExec(`insert into docs`).
		WithArgs(doc.ID, doc.URL, doc.Title, doc.Text).
		WillReturnError(&pgconn.PgError{Code: "40P01"})
	mock.ExpectRollback()

	expectAddTx(mock, doc)

	err := storage.Add(context.Background(), doc)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBAdd_NonRetryableError(t *testing.T) {
	storage, mock := newMockDB(t)

	doc := core.Doc{ID: 4, URL: "u", Title: "t", Text: "x"}

	mock.ExpectBegin()
	mock.ExpectExec(`insert into docs`).
		WithArgs(doc.ID, doc.URL, doc.Title, doc.Text).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := storage.Add(context.Background(), doc)
	require.ErrorIs(t, err, assert.AnError)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStats_Success(t *testing.T) {
	storage, mock := newMockDB(t)

	mock.ExpectQuery(`select count\(\*\) from docs`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`select count\(\*\) from words`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`select count\(\*\) from doc_words`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(100))

	st, err := storage.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.DBStats{
		WordsTotal:  100,
		WordsUnique: 42,
		DocsFetched: 5,
	}, st)
}

func TestDBIDs_Success(t *testing.T) {
	storage, mock := newMockDB(t)

	mock.ExpectQuery(`select id from docs order by id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(3))

	ids, err := storage.IDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)
}

func TestDBDrop_Success(t *testing.T) {
	storage, mock := newMockDB(t)

	mock.ExpectExec(`TRUNCATE TABLE doc_words, words, docs`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := storage.Drop(context.Background())
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
