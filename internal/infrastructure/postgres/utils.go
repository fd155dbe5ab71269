package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/fulfillment-api/internal/domain"
)

// SQLSTATE propios que lanza la función fulfill_order (ver migrations/000002).
const (
	sqlStateNotFound   = "UF404"
	sqlStateValidation = "UF400"
	sqlStateConflict   = "UF409"
	sqlStateInternal   = "UF500"

	sqlStateUniqueViolation      = "23505"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateQueryCanceled        = "57014"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateUniqueViolation
	}
	return strings.Contains(err.Error(), sqlStateUniqueViolation)
}

// classifyPgError traduce errores de PostgreSQL a errores de dominio.
// Los códigos UF4xx llevan la entidad o el campo en DETAIL.
func classifyPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return domain.Internal(op, err)
	}
	switch pgErr.Code {
	case sqlStateNotFound:
		return domain.NotFound(pgErr.Detail)
	case sqlStateValidation:
		return domain.Validation(pgErr.Detail)
	case sqlStateConflict, sqlStateUniqueViolation:
		return domain.Conflict(domain.ReasonAlreadyFulfilled)
	case sqlStateInternal:
		return domain.Internal(pgErr.Detail, err)
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateQueryCanceled:
		return domain.Internal(op+" (reintentable)", err)
	}
	return domain.Internal(op, err)
}
