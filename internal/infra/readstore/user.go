package readstore

import (
	"context"

	"ambassador-ledger/internal/infra"
	"ambassador-ledger/internal/pkg/pgconv"
	"ambassador-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var rm queries.AuthorizedUserView
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, is_active FROM users WHERE id = $1`, id).
		Scan(&rm.ID, &rm.Email, &rm.Role, &rm.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &rm, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		rm           queries.AuthorizedUserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1`, email).
		Scan(&rm.ID, &rm.Email, &rm.Role, &rm.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, passwordHash, nil
}
