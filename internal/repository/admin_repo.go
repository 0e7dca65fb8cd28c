package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

// ResetDatabase restores every table to the seed state via the stored
// procedure shipped with the schema.
func (r *AdminRepository) ResetDatabase(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `CALL ResetBookstore()`)
	return err
}
