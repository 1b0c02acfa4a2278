package docs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"encoresocial/internal/docstore"
	"encoresocial/internal/domain"
)

type userRepository struct {
	store docstore.Store
}

// NewUserRepository returns a domain.UserRepository backed by the users collection.
func NewUserRepository(store docstore.Store) domain.UserRepository {
	return &userRepository{store: store}
}

func userToDoc(u *domain.User) docstore.Doc {
	return docstore.Doc{
		"name":         u.Name,
		"handle":       u.Handle,
		"email":        u.Email,
		"passwordHash": u.PasswordHash,
		"salt":         u.Salt,
		"createdAt":    encodeTime(u.CreatedAt),
		"updatedAt":    encodeTime(u.UpdatedAt),
	}
}

func docToUser(id string, d docstore.Doc) *domain.User {
	return &domain.User{
		ID:           id,
		Name:         str(d, "name"),
		Handle:       str(d, "handle"),
		Email:        str(d, "email"),
		PasswordHash: str(d, "passwordHash"),
		Salt:         str(d, "salt"),
		CreatedAt:    timeVal(d, "createdAt"),
		UpdatedAt:    timeVal(d, "updatedAt"),
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	id, err := r.store.Add(ctx, ColUsers, userToDoc(user))
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	d, err := r.store.Get(ctx, ColUsers, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return docToUser(id, d), nil
}

func (r *userRepository) getByField(ctx context.Context, field, value string) (*domain.User, error) {
	docs, err := r.store.Query(ctx, ColUsers, docstore.Query{
		Filters: []docstore.Filter{docstore.Where(field, value)},
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}
	return docToUser(docs[0].ID, docs[0].Data), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getByField(ctx, "email", email)
}

func (r *userRepository) GetByHandle(ctx context.Context, handle string) (*domain.User, error) {
	return r.getByField(ctx, "handle", handle)
}

func (r *userRepository) Search(ctx context.Context, term, excludeID string, limit int) ([]*domain.User, error) {
	// Substring search has no store-side predicate; scan and filter.
	docs, err := r.store.Query(ctx, ColUsers, docstore.Query{})
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	var out []*domain.User
	for _, d := range docs {
		if d.ID == excludeID {
			continue
		}
		u := docToUser(d.ID, d.Data)
		if strings.Contains(strings.ToLower(u.Handle), term) ||
			strings.Contains(strings.ToLower(u.Name), term) {
			out = append(out, u)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	if out == nil {
		out = []*domain.User{}
	}
	return out, nil
}
