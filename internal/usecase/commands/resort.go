package commands

//go:generate mockgen -source=resort.go -destination=../../../tests/mock/commands/resort.go -package=commandsmock

import (
	"context"

	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/queries"
	"pet-resort-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidResort = errs.New("invalid resort")

type ResortAttributes struct {
	Name      string
	Street    string
	City      string
	State     string
	ZipCode   string
	Latitude  *float64
	Longitude *float64
}

type HoursInput struct {
	Opens    string
	Closes   string
	Capacity int
}

type ResortCommands interface {
	Create(ctx context.Context, attrs ResortAttributes) (*queries.ResortView, error)
	Update(ctx context.Context, id uuid.UUID, attrs ResortAttributes) (*queries.ResortView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetHours(ctx context.Context, resortID uuid.UUID, weekday string, input HoursInput) (*queries.HoursView, error)
}

type resortCommandsImpl struct {
	uow           shared.UnitOfWork
	resortQueries queries.ResortQueries
}

func NewResortCommands(uow shared.UnitOfWork, resortQueries queries.ResortQueries) ResortCommands {
	return &resortCommandsImpl{uow: uow, resortQueries: resortQueries}
}

func (c *resortCommandsImpl) Create(ctx context.Context, attrs ResortAttributes) (*queries.ResortView, error) {
	rs, err := newResort(uuid.Nil, attrs)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Resorts().Create(ctx, rs)
	})
	if err != nil {
		return nil, err
	}

	return c.resortQueries.GetByID(ctx, rs.ID())
}

func (c *resortCommandsImpl) Update(ctx context.Context, id uuid.UUID, attrs ResortAttributes) (*queries.ResortView, error) {
	rs, err := newResort(id, attrs)
	if err != nil {
		return nil, err
	}

	var updated bool
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		updated, err = tx.Resorts().Update(ctx, rs)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, queries.ErrResortNotFound
	}

	return c.resortQueries.GetByID(ctx, rs.ID())
}

// Delete cascades to the resort's hours and reservations.
func (c *resortCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		deleted, err = tx.Resorts().Delete(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	if !deleted {
		return queries.ErrResortNotFound
	}
	return nil
}

// SetHours creates or replaces the opening times and booking ceiling for one weekday.
func (c *resortCommandsImpl) SetHours(ctx context.Context, resortID uuid.UUID, weekday string, input HoursInput) (*queries.HoursView, error) {
	day, err := resort.ParseWeekday(weekday)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidResort)
	}
	opens, err := resort.ParseClock(input.Opens)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidResort)
	}
	closes, err := resort.ParseClock(input.Closes)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidResort)
	}
	hours, err := resort.NewHours(resortID, day, opens, closes, input.Capacity)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidResort)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Resorts().UpsertHours(ctx, hours)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, queries.ErrResortNotFound
		}
		return nil, err
	}

	return &queries.HoursView{
		Weekday:  hours.Weekday.String(),
		Opens:    resort.FormatClock(hours.Opens),
		Closes:   resort.FormatClock(hours.Closes),
		Capacity: hours.Capacity,
	}, nil
}

func newResort(id uuid.UUID, attrs ResortAttributes) (*resort.Resort, error) {
	rs, err := resort.NewResort(id, attrs.Name, resort.Address{
		Street:  attrs.Street,
		City:    attrs.City,
		State:   attrs.State,
		ZipCode: attrs.ZipCode,
	}, attrs.Latitude, attrs.Longitude)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidResort)
	}
	return rs, nil
}
