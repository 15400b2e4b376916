package commands

//go:generate mockgen -source=employee.go -destination=../../../tests/mock/commands/employee.go -package=commandsmock

import (
	"context"

	"pet-resort-api/internal/domain/employee"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmployee = errs.New("invalid employee")
	ErrAlreadyEmployee = errs.New("user already has an employee profile")
)

type EmployeeCommands interface {
	Create(ctx context.Context, userID uuid.UUID, attrs employee.Attributes) (*queries.EmployeeView, error)
	Update(ctx context.Context, userID uuid.UUID, attrs employee.Attributes) (*queries.EmployeeView, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type employeeCommandsImpl struct {
	uow             shared.UnitOfWork
	employeeQueries queries.EmployeeQueries
	clock           clock.Clock
}

func NewEmployeeCommands(uow shared.UnitOfWork, employeeQueries queries.EmployeeQueries, clock clock.Clock) EmployeeCommands {
	return &employeeCommandsImpl{uow: uow, employeeQueries: employeeQueries, clock: clock}
}

// Create attaches an employee profile to an existing account and promotes a plain user to
// the employee role in the same transaction. Admins keep their role. The new role reaches
// the user's tokens on their next authentication.
func (c *employeeCommandsImpl) Create(ctx context.Context, userID uuid.UUID, attrs employee.Attributes) (*queries.EmployeeView, error) {
	profile, err := employee.NewProfile(userID, attrs, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEmployee)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Employees().Create(ctx, profile); err != nil {
			return err
		}
		_, err := tx.Users().ChangeRole(ctx, userID, user.RoleUser, user.RoleEmployee)
		return err
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrAlreadyEmployee
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, queries.ErrUserNotFound
		default:
			return nil, err
		}
	}

	return c.employeeQueries.GetByID(ctx, userID)
}

func (c *employeeCommandsImpl) Update(ctx context.Context, userID uuid.UUID, attrs employee.Attributes) (*queries.EmployeeView, error) {
	profile, err := employee.NewProfile(userID, attrs, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEmployee)
	}

	var updated bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		updated, err = tx.Employees().Update(ctx, profile)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, queries.ErrEmployeeNotFound
	}

	return c.employeeQueries.GetByID(ctx, userID)
}

// Delete removes the profile and demotes an employee back to a plain user. The account
// itself stays.
func (c *employeeCommandsImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	var deleted bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Employees().Delete(ctx, userID)
		if err != nil || !deleted {
			return err
		}
		_, err = tx.Users().ChangeRole(ctx, userID, user.RoleEmployee, user.RoleUser)
		return err
	})
	if err != nil {
		return err
	}
	if !deleted {
		return queries.ErrEmployeeNotFound
	}
	return nil
}
