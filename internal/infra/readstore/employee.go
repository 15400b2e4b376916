package readstore

import (
	"context"
	"time"

	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/pgconv"
	"pet-resort-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	employeeSelect = `
SELECT e.user_id, u.username, u.email, u.first_name, u.last_name, u.role,
       e.title, e.hire_date, e.status, e.created_at, e.updated_at
FROM employees e
JOIN users u ON u.id = e.user_id`

	findEmployeeByIDSQL = employeeSelect + `
WHERE e.user_id = $1`

	listEmployeesSQL = employeeSelect + `
ORDER BY u.last_name, u.first_name, u.username`
)

type EmployeeReadStore struct {
	db db.DBTX
}

func NewEmployeeReadStore(db db.DBTX) *EmployeeReadStore {
	return &EmployeeReadStore{db: db}
}

func (r *EmployeeReadStore) FindByID(ctx context.Context, userID uuid.UUID) (*queries.EmployeeView, error) {
	rows, err := r.db.Query(ctx, findEmployeeByIDSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find employee", err)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanEmployeeView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee", err)
	}
	return view, nil
}

func (r *EmployeeReadStore) List(ctx context.Context) ([]*queries.EmployeeView, error) {
	rows, err := r.db.Query(ctx, listEmployeesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employees", err)
	}
	views, err := pgx.CollectRows(rows, scanEmployeeView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employees", err)
	}
	return views, nil
}

func scanEmployeeView(row pgx.CollectableRow) (*queries.EmployeeView, error) {
	var (
		view     queries.EmployeeView
		hireDate pgtype.Date
	)
	err := row.Scan(
		&view.UserID, &view.Username, &view.Email, &view.FirstName, &view.LastName, &view.Role,
		&view.Title, &hireDate, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if hireDate.Valid {
		s := hireDate.Time.Format(time.DateOnly)
		view.HireDate = &s
	}
	return &view, nil
}
