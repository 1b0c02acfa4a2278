// Package postgres implements docstore.Store on a single JSONB documents
// table, so the engine keeps its document-collection semantics while the
// data lives in Postgres.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"encoresocial/internal/docstore"
)

const uniqueViolation = "23505"

type store struct {
	DB *sql.DB
}

// NewStore returns a docstore.Store backed by the documents table.
func NewStore(db *sql.DB) docstore.Store {
	return &store{DB: db}
}

// EnsureSchema creates the documents table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       JSONB NOT NULL,
			PRIMARY KEY (collection, id)
		)
	`)
	if err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func marshal(data docstore.Doc) ([]byte, error) {
	if data == nil {
		data = docstore.Doc{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return raw, nil
}

func (s *store) Get(ctx context.Context, collection, id string) (docstore.Doc, error) {
	var raw []byte
	err := s.DB.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, docstore.ErrNotFound
		}
		return nil, err
	}
	var doc docstore.Doc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

func (s *store) Create(ctx context.Context, collection, id string, data docstore.Doc) error {
	raw, err := marshal(data)
	if err != nil {
		return err
	}
	result, err := s.DB.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO NOTHING`,
		collection, id, raw,
	)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return docstore.ErrExists
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return docstore.ErrExists
	}
	return nil
}

func (s *store) Add(ctx context.Context, collection string, data docstore.Doc) (string, error) {
	id := uuid.NewString()
	if err := s.Create(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (s *store) Set(ctx context.Context, collection, id string, data docstore.Doc) error {
	raw, err := marshal(data)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`,
		collection, id, raw,
	)
	return err
}

func (s *store) Merge(ctx context.Context, collection, id string, data docstore.Doc) error {
	raw, err := marshal(data)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO UPDATE SET data = documents.data || EXCLUDED.data`,
		collection, id, raw,
	)
	return err
}

func (s *store) Delete(ctx context.Context, collection, id string) error {
	_, err := s.DB.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id,
	)
	return err
}

func (s *store) Query(ctx context.Context, collection string, q docstore.Query) ([]docstore.Document, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, data FROM documents WHERE collection = $1`)
	args := []any{collection}

	for _, f := range q.Filters {
		op, err := sqlOp(f.Op)
		if err != nil {
			return nil, err
		}
		args = append(args, pq.Array(strings.Split(f.Path, ".")))
		pathArg := len(args)
		args = append(args, fmt.Sprint(f.Value))
		valArg := len(args)
		fmt.Fprintf(&sb, ` AND data #>> ($%d::text[]) %s $%d`, pathArg, op, valArg)
	}

	if q.OrderBy != "" {
		args = append(args, pq.Array(strings.Split(q.OrderBy, ".")))
		dir := "ASC"
		if q.Descending {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, ` ORDER BY data #>> ($%d::text[]) %s`, len(args), dir)
	} else {
		sb.WriteString(` ORDER BY id`)
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))
	}

	rows, err := s.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []docstore.Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		var doc docstore.Doc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", id, err)
		}
		docs = append(docs, docstore.Document{ID: id, Data: doc})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func sqlOp(op docstore.Op) (string, error) {
	switch op {
	case docstore.OpEq:
		return "=", nil
	case docstore.OpGte:
		return ">=", nil
	case docstore.OpLte:
		return "<=", nil
	}
	return "", fmt.Errorf("unsupported filter op %q", op)
}
