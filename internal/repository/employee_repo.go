package repository

import (
	"context"

	"github.com/emurillo541/collegebookstore/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeRepository struct {
	DB *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	query := `SELECT employeeID, firstName, lastName, email, hireDate FROM Employees ORDER BY lastName, firstName`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &e.HireDate); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepository) Create(ctx context.Context, e *model.Employee) (int64, error) {
	var id int64
	query := `INSERT INTO Employees (firstName, lastName, email, hireDate) VALUES ($1, $2, $3, $4) RETURNING employeeID`
	if err := r.DB.QueryRow(ctx, query, e.FirstName, e.LastName, e.Email, e.HireDate).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *model.Employee) (int64, error) {
	query := `UPDATE Employees SET firstName=$1, lastName=$2, email=$3, hireDate=$4 WHERE employeeID=$5`
	tag, err := r.DB.Exec(ctx, query, e.FirstName, e.LastName, e.Email, e.HireDate, e.EmployeeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, employeeID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM Employees WHERE employeeID=$1`, employeeID)
	return err
}
