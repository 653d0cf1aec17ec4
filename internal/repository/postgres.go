package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/brewery/internal/storage/db"
)

// Documents live in a single JSONB table keyed by (collection, id); see
// storage/db/migrations.
const (
	pgCountQuery     = `SELECT count(*) FROM documents WHERE collection = $1`
	pgFindAllQuery   = `SELECT body FROM documents WHERE collection = $1 ORDER BY seq`
	pgFindByIDQuery  = `SELECT body FROM documents WHERE collection = $1 AND id = $2`
	pgDeleteQuery    = `DELETE FROM documents WHERE collection = $1 AND id = $2`
	pgDeleteAllQuery = `DELETE FROM documents WHERE collection = $1`
	pgUpsertQuery    = `
INSERT INTO documents (collection, id, body)
VALUES ($1, $2, $3)
ON CONFLICT (collection, id) DO UPDATE SET body = EXCLUDED.body`
)

type postgresRepository[E Entity[E]] struct {
	db         db.DB
	collection string
}

// NewPostgresRepository returns a Repository storing each document as JSONB.
func NewPostgresRepository[E Entity[E]](db db.DB, collection string) Repository[E] {
	return &postgresRepository[E]{
		db:         db,
		collection: collection,
	}
}

func (r *postgresRepository[E]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, pgCountQuery, r.collection).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.collection, err)
	}
	return n, nil
}

func (r *postgresRepository[E]) FindAll(ctx context.Context) ([]E, error) {
	rows, err := r.db.Query(ctx, pgFindAllQuery, r.collection)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.collection, err)
	}

	bodies, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", r.collection, err)
	}

	out := make([]E, 0, len(bodies))
	for _, body := range bodies {
		var doc E
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.collection, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

func (r *postgresRepository[E]) FindByID(ctx context.Context, id string) (E, error) {
	var (
		doc  E
		body []byte
	)
	err := r.db.QueryRow(ctx, pgFindByIDQuery, r.collection, id).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, fmt.Errorf("find %s %s: %w", r.collection, id, err)
	}

	if err := json.Unmarshal(body, &doc); err != nil {
		return doc, fmt.Errorf("decode %s %s: %w", r.collection, id, err)
	}
	return doc, nil
}

func (r *postgresRepository[E]) Save(ctx context.Context, e E) (E, error) {
	if e.DocumentID() == "" {
		e = e.WithDocumentID(newUUIDv7())
	}

	body, err := json.Marshal(e)
	if err != nil {
		return e, fmt.Errorf("encode %s: %w", r.collection, err)
	}

	if _, err := r.db.Exec(ctx, pgUpsertQuery, r.collection, e.DocumentID(), string(body)); err != nil {
		return e, fmt.Errorf("upsert %s %s: %w", r.collection, e.DocumentID(), err)
	}
	return e, nil
}

func (r *postgresRepository[E]) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, pgDeleteQuery, r.collection, id); err != nil {
		return fmt.Errorf("delete %s %s: %w", r.collection, id, err)
	}
	return nil
}

func (r *postgresRepository[E]) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, pgDeleteAllQuery, r.collection); err != nil {
		return fmt.Errorf("delete all %s: %w", r.collection, err)
	}
	return nil
}
