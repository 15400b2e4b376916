package repository

import (
	"context"

	"pet-resort-api/internal/domain/employee"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	createEmployeeSQL = `
INSERT INTO employees (user_id, title, hire_date, status)
VALUES ($1, $2, $3, $4)`

	updateEmployeeSQL = `
UPDATE employees
SET title = $2, hire_date = $3, status = $4, updated_at = now()
WHERE user_id = $1`

	deleteEmployeeSQL = `DELETE FROM employees WHERE user_id = $1`
)

type EmployeeRepository struct {
	db db.DBTX
}

func NewEmployeeRepository(db db.DBTX) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, p *employee.Profile) error {
	_, err := r.db.Exec(ctx, createEmployeeSQL,
		p.UserID(),
		p.Title(),
		pgconv.TimePtrToPgDate(p.HireDate()),
		p.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create employee", err)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, p *employee.Profile) (bool, error) {
	tag, err := r.db.Exec(ctx, updateEmployeeSQL,
		p.UserID(),
		p.Title(),
		pgconv.TimePtrToPgDate(p.HireDate()),
		p.Status().String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update employee", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteEmployeeSQL, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete employee", err)
	}
	return tag.RowsAffected() > 0, nil
}
