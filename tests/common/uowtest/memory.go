//go:build unit || e2e

package uowtest

import (
	"context"
	"errors"
	"sync"

	"pet-resort-api/internal/domain/employee"
	"pet-resort-api/internal/domain/note"
	"pet-resort-api/internal/domain/pet"
	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/domain/resort"
	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/infra"
	"pet-resort-api/internal/infra/db"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	errDuplicate  = errors.New("duplicate key")
	errForeignKey = errors.New("foreign key violation")
)

type limitKey struct {
	resortID uuid.UUID
	weekday  resort.Weekday
}

// Memory is an in-process UnitOfWork. Every unit of work runs under one mutex, so
// WithinSerializable is trivially serializable. Writes made by a failing fn are kept;
// tests that need rollback assert on the returned error instead.
type Memory struct {
	mu sync.Mutex

	users        map[uuid.UUID]*user.User
	resorts      map[uuid.UUID]*resort.Resort
	limits       map[limitKey]resort.Hours
	petOwners    map[uuid.UUID]uuid.UUID
	reservations []*reservation.Reservation
	roles        map[uuid.UUID]user.Role
	notes        map[uuid.UUID]*note.Note
	noteBodies   map[uuid.UUID]string
	employees    map[uuid.UUID]*employee.Profile

	// Fail, when set, is returned by every repository call.
	Fail error
	// Calls counts repository calls across all transactions.
	Calls int
	// Units counts started units of work.
	Units int
}

func NewMemory() *Memory {
	return &Memory{
		users:      map[uuid.UUID]*user.User{},
		resorts:    map[uuid.UUID]*resort.Resort{},
		limits:     map[limitKey]resort.Hours{},
		petOwners:  map[uuid.UUID]uuid.UUID{},
		roles:      map[uuid.UUID]user.Role{},
		notes:      map[uuid.UUID]*note.Note{},
		noteBodies: map[uuid.UUID]string{},
		employees:  map[uuid.UUID]*employee.Profile{},
	}
}

// AddUser registers an account by id and role only.
func (m *Memory) AddUser(id uuid.UUID, role user.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[id] = role
}

func (m *Memory) Role(id uuid.UUID) user.Role {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roleOf(id)
}

// NoteBody returns the current text of a stored note.
func (m *Memory) NoteBody(id uuid.UUID) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.noteBodies[id]
	return body, ok
}

func (m *Memory) Note(id uuid.UUID) (*note.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	return n, ok
}

func (m *Memory) Employee(userID uuid.UUID) (*employee.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.employees[userID]
	return p, ok
}

// roleOf must be called with mu held.
func (m *Memory) roleOf(id uuid.UUID) user.Role {
	if r, ok := m.roles[id]; ok {
		return r
	}
	if u, ok := m.users[id]; ok {
		return u.Role()
	}
	return ""
}

func (m *Memory) SetCapacity(resortID uuid.UUID, weekday resort.Weekday, capacity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.limits[limitKey{resortID, weekday}] = resort.Hours{ResortID: resortID, Weekday: weekday, Capacity: capacity}
}

func (m *Memory) AddPet(petID, ownerID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.petOwners[petID] = ownerID
}

// Book inserts count reservations directly, bypassing the workflow.
func (m *Memory) Book(resortID uuid.UUID, date reservation.Date, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for range count {
		res, err := reservation.NewReservation(clock.NewMockClock(date.Time()), reservation.Request{
			PetID:    uuid.New(),
			OwnerID:  uuid.New(),
			ResortID: resortID,
			Date:     date,
		})
		if err != nil {
			panic(err)
		}
		m.reservations = append(m.reservations, res)
	}
}

func (m *Memory) Reservations() []*reservation.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*reservation.Reservation, len(m.reservations))
	copy(out, m.reservations)
	return out
}

func (m *Memory) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return m.run(ctx, fn)
}

func (m *Memory) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return m.run(ctx, fn)
}

func (m *Memory) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return m.run(ctx, fn)
}

func (m *Memory) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Units++
	return fn(ctx, memTx{m})
}

// call must be invoked with mu held, i.e. from inside a unit of work.
func (m *Memory) call() error {
	m.Calls++
	return m.Fail
}

type memTx struct{ m *Memory }

func (t memTx) Users() shared.UserRepository               { return memUsers(t) }
func (t memTx) Resorts() shared.ResortRepository           { return memResorts(t) }
func (t memTx) Reservations() shared.ReservationRepository { return memReservations(t) }
func (t memTx) Pets() shared.PetRepository                 { return memPets(t) }
func (t memTx) Notes() shared.NoteRepository               { return memNotes(t) }
func (t memTx) Employees() shared.EmployeeRepository       { return memEmployees(t) }
func (t memTx) DB() db.DBTX                                { return nil }

type memUsers memTx

func (r memUsers) Create(_ context.Context, u *user.User) error {
	if err := r.m.call(); err != nil {
		return err
	}
	for _, existing := range r.m.users {
		if existing.Username().Value() == u.Username().Value() || existing.Email().Value() == u.Email().Value() {
			return infra.WrapRepoErr("user exists", errDuplicate, infra.KindDuplicateKey)
		}
	}
	r.m.users[u.ID()] = u
	return nil
}

func (r memUsers) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	_, ok := r.m.users[id]
	delete(r.m.users, id)
	return ok, nil
}

func (r memUsers) ChangeRole(_ context.Context, id uuid.UUID, from, to user.Role) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	if r.m.roleOf(id) != from {
		return false, nil
	}
	r.m.roles[id] = to
	return true, nil
}

type memResorts memTx

func (r memResorts) Create(_ context.Context, res *resort.Resort) error {
	if err := r.m.call(); err != nil {
		return err
	}
	r.m.resorts[res.ID()] = res
	return nil
}

func (r memResorts) Update(_ context.Context, res *resort.Resort) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	if _, ok := r.m.resorts[res.ID()]; !ok {
		return false, nil
	}
	r.m.resorts[res.ID()] = res
	return true, nil
}

func (r memResorts) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	_, ok := r.m.resorts[id]
	delete(r.m.resorts, id)
	return ok, nil
}

func (r memResorts) UpsertHours(_ context.Context, h resort.Hours) error {
	if err := r.m.call(); err != nil {
		return err
	}
	r.m.limits[limitKey{h.ResortID, h.Weekday}] = h
	return nil
}

func (r memResorts) GetCapacityLimit(_ context.Context, resortID uuid.UUID, weekday resort.Weekday) (*resort.CapacityLimit, error) {
	if err := r.m.call(); err != nil {
		return nil, err
	}
	h, ok := r.m.limits[limitKey{resortID, weekday}]
	if !ok {
		return nil, infra.WrapRepoErr("capacity limit not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	limit := h.Limit()
	return &limit, nil
}

type memReservations memTx

func (r memReservations) CountByResortAndDate(_ context.Context, resortID uuid.UUID, date reservation.Date) (int, error) {
	if err := r.m.call(); err != nil {
		return 0, err
	}
	n := 0
	for _, res := range r.m.reservations {
		if res.ResortID() == resortID && res.Date().String() == date.String() {
			n++
		}
	}
	return n, nil
}

func (r memReservations) Create(_ context.Context, res *reservation.Reservation) error {
	if err := r.m.call(); err != nil {
		return err
	}
	r.m.reservations = append(r.m.reservations, res)
	return nil
}

func (r memReservations) Delete(_ context.Context, id uuid.UUID, ownerID *uuid.UUID) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	for i, res := range r.m.reservations {
		if res.ID() != id {
			continue
		}
		if ownerID != nil && res.OwnerID() != *ownerID {
			return false, nil
		}
		r.m.reservations = append(r.m.reservations[:i], r.m.reservations[i+1:]...)
		return true, nil
	}
	return false, nil
}

type memPets memTx

func (r memPets) Create(_ context.Context, p *pet.Pet, ownerID uuid.UUID) error {
	if err := r.m.call(); err != nil {
		return err
	}
	r.m.petOwners[p.ID()] = ownerID
	return nil
}

func (r memPets) IsOwnedBy(_ context.Context, petID, ownerID uuid.UUID) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	owner, ok := r.m.petOwners[petID]
	return ok && owner == ownerID, nil
}

func (r memPets) Delete(_ context.Context, id uuid.UUID, ownerID *uuid.UUID) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	owner, ok := r.m.petOwners[id]
	if !ok || (ownerID != nil && owner != *ownerID) {
		return false, nil
	}
	delete(r.m.petOwners, id)
	return true, nil
}

type memNotes memTx

func (r memNotes) Create(_ context.Context, n *note.Note) error {
	if err := r.m.call(); err != nil {
		return err
	}
	if _, ok := r.m.petOwners[n.PetID()]; !ok {
		return infra.WrapRepoErr("pet missing", errForeignKey, infra.KindForeignKeyViolated)
	}
	r.m.notes[n.ID()] = n
	r.m.noteBodies[n.ID()] = n.Body()
	return nil
}

func (r memNotes) UpdateBody(_ context.Context, id uuid.UUID, body string) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	if _, ok := r.m.notes[id]; !ok {
		return false, nil
	}
	r.m.noteBodies[id] = body
	return true, nil
}

func (r memNotes) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	_, ok := r.m.notes[id]
	delete(r.m.notes, id)
	delete(r.m.noteBodies, id)
	return ok, nil
}

type memEmployees memTx

func (r memEmployees) Create(_ context.Context, p *employee.Profile) error {
	if err := r.m.call(); err != nil {
		return err
	}
	if r.m.roleOf(p.UserID()) == "" {
		return infra.WrapRepoErr("user missing", errForeignKey, infra.KindForeignKeyViolated)
	}
	if _, ok := r.m.employees[p.UserID()]; ok {
		return infra.WrapRepoErr("employee exists", errDuplicate, infra.KindDuplicateKey)
	}
	r.m.employees[p.UserID()] = p
	return nil
}

func (r memEmployees) Update(_ context.Context, p *employee.Profile) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	if _, ok := r.m.employees[p.UserID()]; !ok {
		return false, nil
	}
	r.m.employees[p.UserID()] = p
	return true, nil
}

func (r memEmployees) Delete(_ context.Context, userID uuid.UUID) (bool, error) {
	if err := r.m.call(); err != nil {
		return false, err
	}
	_, ok := r.m.employees[userID]
	delete(r.m.employees, userID)
	return ok, nil
}
