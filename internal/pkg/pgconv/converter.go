package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

func DurationToPgTime(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func DurationFromPgTime(pt pgtype.Time) time.Duration {
	if !pt.Valid {
		return 0
	}
	return time.Duration(pt.Microseconds) * time.Microsecond
}

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func TimePtrFromPgDate(pd pgtype.Date) *time.Time {
	if !pd.Valid {
		return nil
	}
	t := pd.Time
	return &t
}

func TimePtrToPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{Valid: false}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func Float64PtrFromPgtype(pf pgtype.Float8) *float64 {
	if !pf.Valid {
		return nil
	}
	v := pf.Float64
	return &v
}

func Float64PtrToPgtype(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func IsUniqueViolation(err error) bool {
	return hasCode(err, pgErrCodeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, pgErrCodeForeignKeyViolation)
}

func IsCheckViolation(err error) bool {
	return hasCode(err, pgErrCodeCheckViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
