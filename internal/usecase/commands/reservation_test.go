//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-resort-api/internal/domain/auth"
	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/usecase/commands"
	"pet-resort-api/internal/usecase/shared"
	"pet-resort-api/tests/common/builder"
	"pet-resort-api/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var wednesday = time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.ReservationCreated
	err    error
}

func (p *recordingPublisher) PublishReservationCreated(_ context.Context, evt shared.ReservationCreated) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	store     *uowtest.Memory
	publisher *recordingPublisher
	cmds      commands.ReservationCommands

	ownerID  uuid.UUID
	petID    uuid.UUID
	resortID uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.store = uowtest.NewMemory()
	s.publisher = &recordingPublisher{}
	s.cmds = commands.NewReservationCommands(s.store, s.publisher, clock.NewMockClock(wednesday))

	s.ownerID = uuid.New()
	s.petID = uuid.New()
	s.resortID = uuid.New()
	s.store.AddPet(s.petID, s.ownerID)
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) request(day time.Weekday) *builder.ReservationBuilder {
	return builder.NewReservationBuilder().
		WithOwnerID(s.ownerID).
		WithPetID(s.petID).
		WithResortID(s.resortID).
		WithDate(builder.NextWeekday(wednesday, day))
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("full day is rejected without insert", func() {
		s.SetupTest()
		owner := auth.NewPrincipal(s.ownerID, user.RoleUser)
		monday := builder.NextWeekday(wednesday, time.Monday)
		s.store.SetCapacity(s.resortID, resort.Monday, 2)
		s.store.Book(s.resortID, monday, 2)

		view, err := s.cmds.Create(context.Background(), &owner, s.request(time.Monday).BuildRequest())

		s.Nil(view)
		s.True(errs.Is(err, commands.ErrNoCapacity))
		s.Len(s.store.Reservations(), 2)
		s.Empty(s.publisher.events)
	})

	s.Run("last free slot is booked", func() {
		s.SetupTest()
		owner := auth.NewPrincipal(s.ownerID, user.RoleUser)
		monday := builder.NextWeekday(wednesday, time.Monday)
		s.store.SetCapacity(s.resortID, resort.Monday, 2)
		s.store.Book(s.resortID, monday, 1)

		view, err := s.cmds.Create(context.Background(), &owner, s.request(time.Monday).BuildRequest())

		s.Require().NoError(err)
		s.Equal(s.ownerID, view.OwnerID)
		s.Equal(s.petID, view.PetID)
		s.Equal(monday.String(), view.Date)
		s.Len(s.store.Reservations(), 2)
		s.Require().Len(s.publisher.events, 1)
		s.Equal(view.ID, s.publisher.events[0].ReservationID)
		s.Equal(wednesday, s.publisher.events[0].OccurredAt)
	})

	s.Run("capacity is per weekday", func() {
		s.SetupTest()
		owner := auth.NewPrincipal(s.ownerID, user.RoleUser)
		s.store.SetCapacity(s.resortID, resort.Monday, 5)
		s.store.SetCapacity(s.resortID, resort.Tuesday, 0)

		_, err := s.cmds.Create(context.Background(), &owner, s.request(time.Tuesday).BuildRequest())
		s.True(errs.Is(err, commands.ErrNoCapacity))

		_, err = s.cmds.Create(context.Background(), &owner, s.request(time.Monday).BuildRequest())
		s.NoError(err)
	})

	s.Run("weekday without a limit has no capacity", func() {
		s.SetupTest()
		owner := auth.NewPrincipal(s.ownerID, user.RoleUser)

		_, err := s.cmds.Create(context.Background(), &owner, s.request(time.Friday).BuildRequest())

		s.True(errs.Is(err, commands.ErrNoCapacity))
		s.Empty(s.store.Reservations())
	})

	s.Run("nil principal is unauthenticated", func() {
		s.SetupTest()

		_, err := s.cmds.Create(context.Background(), nil, s.request(time.Monday).BuildRequest())

		s.True(errs.Is(err, commands.ErrUnauthenticated))
		s.Zero(s.store.Units)
	})

	s.Run("user booking for another owner is forbidden before any store call", func() {
		s.SetupTest()
		other := auth.NewPrincipal(uuid.New(), user.RoleUser)
		s.store.SetCapacity(s.resortID, resort.Monday, 5)

		_, err := s.cmds.Create(context.Background(), &other, s.request(time.Monday).BuildRequest())

		s.True(errs.Is(err, commands.ErrForbidden))
		s.Zero(s.store.Units)
		s.Zero(s.store.Calls)
	})

	for _, role := range []user.Role{user.RoleEmployee, user.RoleAdmin} {
		s.Run("superuser books on behalf of owner: "+role.String(), func() {
			s.SetupTest()
			staff := auth.NewPrincipal(uuid.New(), role)
			s.store.SetCapacity(s.resortID, resort.Monday, 1)

			view, err := s.cmds.Create(context.Background(), &staff, s.request(time.Monday).BuildRequest())

			s.Require().NoError(err)
			s.Equal(s.ownerID, view.OwnerID)
		})
	}

	s.Run("pet must belong to owner", func() {
		s.SetupTest()
		owner := auth.NewPrincipal(s.ownerID, user.RoleUser)
		s.store.SetCapacity(s.resortID, resort.Monday, 5)
		req := s.request(time.Monday).WithPetID(uuid.New()).BuildRequest()

		_, err := s.cmds.Create(context.Background(), &owner, req)

		s.True(errs.Is(err, commands.ErrPetNotOwned))
		s.Empty(s.store.Reservations())
	})

	s.Run("invalid request is rejected before the store", func() {
		s.SetupTest()
		owner := auth.NewPrincipal(s.ownerID, user.RoleUser)
		req := s.request(time.Monday).With(func(b *builder.ReservationBuilder) { b.ResortID = uuid.Nil }).BuildRequest()

		_, err := s.cmds.Create(context.Background(), &owner, req)

		s.True(errs.Is(err, commands.ErrInvalidReservation))
		s.Zero(s.store.Units)
	})

	s.Run("storage failure is reported as storage error", func() {
		s.SetupTest()
		owner := auth.NewPrincipal(s.ownerID, user.RoleUser)
		s.store.Fail = errors.New("connection reset")

		_, err := s.cmds.Create(context.Background(), &owner, s.request(time.Monday).BuildRequest())

		s.True(errs.Is(err, commands.ErrStorage))
		s.False(errs.Is(err, commands.ErrNoCapacity))
	})

	s.Run("publish failure does not fail the reservation", func() {
		s.SetupTest()
		owner := auth.NewPrincipal(s.ownerID, user.RoleUser)
		s.store.SetCapacity(s.resortID, resort.Monday, 1)
		s.publisher.err = errors.New("broker down")

		view, err := s.cmds.Create(context.Background(), &owner, s.request(time.Monday).BuildRequest())

		s.Require().NoError(err)
		s.NotNil(view)
		s.Len(s.store.Reservations(), 1)
	})
}

func (s *ReservationCommandsTestSuite) TestCreateConcurrent() {
	s.store.SetCapacity(s.resortID, resort.Monday, 3)
	owner := auth.NewPrincipal(s.ownerID, user.RoleUser)

	const attempts = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, full int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.cmds.Create(context.Background(), &owner, s.request(time.Monday).BuildRequest())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errs.Is(err, commands.ErrNoCapacity):
				full++
			}
		}()
	}
	wg.Wait()

	s.Equal(3, ok)
	s.Equal(attempts-3, full)
	s.Len(s.store.Reservations(), 3)
}

func (s *ReservationCommandsTestSuite) TestDelete() {
	s.store.SetCapacity(s.resortID, resort.Monday, 5)
	owner := auth.NewPrincipal(s.ownerID, user.RoleUser)
	view, err := s.cmds.Create(context.Background(), &owner, s.request(time.Monday).BuildRequest())
	s.Require().NoError(err)

	s.Run("other user sees not found", func() {
		other := auth.NewPrincipal(uuid.New(), user.RoleUser)
		err := s.cmds.Delete(context.Background(), &other, view.ID)
		s.True(errs.Is(err, commands.ErrReservationNotFound))
		s.Len(s.store.Reservations(), 1)
	})

	s.Run("employee is scoped like a user", func() {
		employee := auth.NewPrincipal(uuid.New(), user.RoleEmployee)
		err := s.cmds.Delete(context.Background(), &employee, view.ID)
		s.True(errs.Is(err, commands.ErrReservationNotFound))
	})

	s.Run("admin deletes any reservation", func() {
		admin := auth.NewPrincipal(uuid.New(), user.RoleAdmin)
		s.Require().NoError(s.cmds.Delete(context.Background(), &admin, view.ID))
		s.Empty(s.store.Reservations())
	})

	s.Run("nil principal", func() {
		err := s.cmds.Delete(context.Background(), nil, view.ID)
		s.True(errs.Is(err, commands.ErrUnauthenticated))
	})
}
