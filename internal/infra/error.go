package infra

import (
	"errors"
	"log/slog"

	"pet-resort-api/internal/pkg/errs"
	"pet-resort-api/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr tags err with a kind. Without an explicit kind the kind is derived from the
// postgres error code, falling back to KindDBFailure.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg, slog.String("kind", string(k)), slog.Any("error", err))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	switch {
	case err == nil:
		return KindDBFailure
	case pgconv.IsNoRows(err):
		return KindNotFound
	case pgconv.IsUniqueViolation(err):
		return KindDuplicateKey
	case pgconv.IsForeignKeyViolation(err):
		return KindForeignKeyViolated
	case pgconv.IsCheckViolation(err):
		return KindCheckViolated
	default:
		return KindDBFailure
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)
