package queries

//go:generate mockgen -source=employee.go -destination=../../../tests/mock/queries/employee.go -package=queriesmock

import (
	"context"

	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmployeeNotFound = errs.New("employee not found")

type EmployeeQueries interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*EmployeeView, error)
	List(ctx context.Context) ([]*EmployeeView, error)
}

type EmployeeReadStore interface {
	FindByID(ctx context.Context, userID uuid.UUID) (*EmployeeView, error)
	List(ctx context.Context) ([]*EmployeeView, error)
}

type employeeQueriesImpl struct {
	readStore EmployeeReadStore
}

func NewEmployeeQueries(readStore EmployeeReadStore) EmployeeQueries {
	return &employeeQueriesImpl{readStore: readStore}
}

func (q *employeeQueriesImpl) GetByID(ctx context.Context, userID uuid.UUID) (*EmployeeView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *employeeQueriesImpl) List(ctx context.Context) ([]*EmployeeView, error) {
	return q.readStore.List(ctx)
}
