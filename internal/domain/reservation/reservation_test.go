//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"pet-resort-api/internal/domain/reservation"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC) // Wednesday

func TestParseDate(t *testing.T) {
	d, err := reservation.ParseDate("2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", d.String())
	assert.Equal(t, time.UTC, d.Time().Location())
	assert.Equal(t, time.Monday, d.Time().Weekday())

	for _, in := range []string{"", "2025-6-9", "09/06/2025", "2025-02-30"} {
		_, err := reservation.ParseDate(in)
		require.ErrorIs(t, err, reservation.ErrInvalidDate, in)
	}
}

func TestNewReservation(t *testing.T) {
	c := clock.NewMockClock(now)
	monday := builder.NextWeekday(now, time.Monday)

	t.Run("valid request", func(t *testing.T) {
		req := builder.NewReservationBuilder().WithDate(monday).BuildRequest()
		res, err := reservation.NewReservation(c, req)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, req.PetID, res.PetID())
		assert.Equal(t, req.OwnerID, res.OwnerID())
		assert.Equal(t, "2025-06-09", res.Date().String())
		assert.Equal(t, now, res.CreatedAt())
	})

	t.Run("today is bookable", func(t *testing.T) {
		req := builder.NewReservationBuilder().WithDate(reservation.NewDate(now)).BuildRequest()
		_, err := reservation.NewReservation(c, req)
		require.NoError(t, err)
	})

	cases := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		errIs  error
	}{
		{name: "missing pet", mutate: func(b *builder.ReservationBuilder) { b.PetID = uuid.Nil }, errIs: reservation.ErrMissingPet},
		{name: "missing owner", mutate: func(b *builder.ReservationBuilder) { b.OwnerID = uuid.Nil }, errIs: reservation.ErrMissingOwner},
		{name: "missing resort", mutate: func(b *builder.ReservationBuilder) { b.ResortID = uuid.Nil }, errIs: reservation.ErrMissingResort},
		{name: "zero date", mutate: func(b *builder.ReservationBuilder) { b.Date = reservation.Date{} }, errIs: reservation.ErrInvalidDate},
		{name: "past date", mutate: func(b *builder.ReservationBuilder) { b.Date = reservation.NewDate(now.AddDate(0, 0, -1)) }, errIs: reservation.ErrPastDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := builder.NewReservationBuilder().WithDate(monday).With(tc.mutate).BuildRequest()
			res, err := reservation.NewReservation(c, req)
			require.Nil(t, res)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestDateRange(t *testing.T) {
	start, _ := reservation.ParseDate("2025-06-01")
	end, _ := reservation.ParseDate("2025-06-30")

	r, err := reservation.NewDateRange(start, end)
	require.NoError(t, err)
	assert.Equal(t, start, r.Start())
	assert.Equal(t, end, r.End())

	_, err = reservation.NewDateRange(end, start)
	require.Error(t, err)

	_, err = reservation.NewDateRange(start, start)
	require.NoError(t, err, "single-day range is valid")
}

func TestNote(t *testing.T) {
	assert.True(t, reservation.NewNote("   ").IsEmpty())
	assert.Equal(t, "bring toy", reservation.NewNote(" bring toy ").String())
}
