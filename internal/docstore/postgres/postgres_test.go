package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"encoresocial/internal/docstore"
)

func TestStore_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    docstore.Doc
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			id:   "alice_bob",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data FROM documents WHERE collection = \$1 AND id = \$2`).
					WithArgs("friendships", "alice_bob").
					WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"user1Id":"alice","user2Id":"bob"}`)))
			},
			want: docstore.Doc{"user1Id": "alice", "user2Id": "bob"},
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data FROM documents`).
					WithArgs("friendships", "missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
			errIs:   docstore.ErrNotFound,
		},
		{
			name: "db error",
			id:   "alice_bob",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data FROM documents`).
					WithArgs("friendships", "alice_bob").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			store := NewStore(db)
			got, err := store.Get(ctx, "friendships", tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO documents \(collection, id, data\) VALUES \(\$1, \$2, \$3\) ON CONFLICT \(collection, id\) DO NOTHING`).
					WithArgs("friendships", "alice_bob", []byte(`{"user1Id":"alice"}`)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "conflict maps to ErrExists",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`ON CONFLICT \(collection, id\) DO NOTHING`).
					WithArgs("friendships", "alice_bob", []byte(`{"user1Id":"alice"}`)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
			errIs:   docstore.ErrExists,
		},
		{
			name: "unique violation maps to ErrExists",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`ON CONFLICT \(collection, id\) DO NOTHING`).
					WithArgs("friendships", "alice_bob", []byte(`{"user1Id":"alice"}`)).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   docstore.ErrExists,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`ON CONFLICT \(collection, id\) DO NOTHING`).
					WithArgs("friendships", "alice_bob", []byte(`{"user1Id":"alice"}`)).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)
			store := NewStore(db)
			err = store.Create(ctx, "friendships", "alice_bob", docstore.Doc{"user1Id": "alice"})
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_Add(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`ON CONFLICT \(collection, id\) DO NOTHING`).
		WithArgs("users", sqlmock.AnyArg(), []byte(`{"handle":"alice"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewStore(db)
	id, err := store.Add(ctx, "users", docstore.Doc{"handle": "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SetAndMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("set replaces the document", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`ON CONFLICT \(collection, id\) DO UPDATE SET data = EXCLUDED.data`).
			WithArgs("friend_requests", "alice_bob", []byte(`{"status":"pending"}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		store := NewStore(db)
		require.NoError(t, store.Set(ctx, "friend_requests", "alice_bob", docstore.Doc{"status": "pending"}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("merge overlays the stored document", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`ON CONFLICT \(collection, id\) DO UPDATE SET data = documents.data \|\| EXCLUDED.data`).
			WithArgs("friend_requests", "alice_bob", []byte(`{"status":"accepted"}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		store := NewStore(db)
		require.NoError(t, store.Merge(ctx, "friend_requests", "alice_bob", docstore.Doc{"status": "accepted"}))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM documents WHERE collection = \$1 AND id = \$2`).
		WithArgs("user_attendance", "alice_c1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := NewStore(db)
	require.NoError(t, store.Delete(ctx, "user_attendance", "alice_c1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Query(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters orders by id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, data FROM documents WHERE collection = \$1 ORDER BY id`).
			WithArgs("users").
			WillReturnRows(sqlmock.NewRows([]string{"id", "data"}).
				AddRow("u1", []byte(`{"handle":"alice"}`)).
				AddRow("u2", []byte(`{"handle":"bob"}`)))

		store := NewStore(db)
		docs, err := store.Query(ctx, "users", docstore.Query{})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		require.Equal(t, "u1", docs[0].ID)
		require.Equal(t, "alice", docs[0].Data["handle"])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters order and limit", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`AND data #>> \(\$2::text\[\]\) = \$3 AND data #>> \(\$4::text\[\]\) >= \$5 ORDER BY data #>> \(\$6::text\[\]\) ASC LIMIT \$7`).
			WithArgs("concerts", sqlmock.AnyArg(), "rock", sqlmock.AnyArg(), "2026-09-01", sqlmock.AnyArg(), 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "data"}).
				AddRow("c1", []byte(`{"name":"show"}`)))

		store := NewStore(db)
		docs, err := store.Query(ctx, "concerts", docstore.Query{
			Filters: []docstore.Filter{
				{Path: "classification.genre.name", Op: docstore.OpEq, Value: "rock"},
				{Path: "dates.start.localDate", Op: docstore.OpGte, Value: "2026-09-01"},
			},
			OrderBy: "dates.start.localDate",
			Limit:   10,
		})
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, "c1", docs[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unsupported op", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		store := NewStore(db)
		_, err = store.Query(ctx, "concerts", docstore.Query{
			Filters: []docstore.Filter{{Path: "name", Op: docstore.Op("!="), Value: "x"}},
		})
		require.Error(t, err)
	})
}
