package db

import (
	"context"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"stemdex.dev/search/search/core"
)

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*DB, error) {
	db, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &DB{
		log:  log,
		conn: db,
	}, nil
}

// Search отдаёт все документы со словами одним запросом:
// слова собираем в массив прямо на стороне базы.
func (db *DB) Search(ctx context.Context) ([]core.Doc, error) {
	type row struct {
		ID    int            `db:"id"`
		URL   string         `db:"url"`
		Words pq.StringArray `db:"words"`
	}

	const query = `
		SELECT d.id, d.url,
		       coalesce(array_agg(w.word) filter (where w.word is not null), '{}') as words
		FROM docs d
		LEFT JOIN doc_words dw ON dw.doc_id = d.id
		LEFT JOIN words w ON w.id = dw.word_id
		GROUP BY d.id, d.url
		ORDER BY d.id`

	var rows []row
	if err := db.conn.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	res := make([]core.Doc, 0, len(rows))
	for _, r := range rows {
		res = append(res, core.Doc{
			ID:    r.ID,
			URL:   r.URL,
			Words: r.Words,
		})
	}
	return res, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}
