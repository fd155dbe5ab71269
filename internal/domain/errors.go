package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Sirven como objetivo de errors.Is: un *Error coincide con el centinela de su Kind.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrInternal     = errors.New("error interno")
)

// Kind clasifica un fallo del cumplimiento de órdenes.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Sujetos usados en los errores clasificados.
const (
	SubjectProduct           = "product"
	SubjectWarehouse         = "warehouse"
	SubjectOrder             = "order"
	SubjectAllocation        = "allocation"
	FieldAmount              = "amount"
	FieldTimestampOrdering   = "timestamp-ordering"
	ReasonAlreadyFulfilled   = "already-fulfilled"
	ReasonDuplicateOrderRows = "duplicate-order-match"
)

// Error es el resultado clasificado de una operación fallida.
// Subject nombra la entidad (NotFound), el campo (Validation) o el motivo (Conflict/Internal).
type Error struct {
	Kind    Kind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindNotFound:
		msg = "no encontrado: " + e.Subject
	case KindValidation:
		msg = "validación fallida: " + e.Subject
	case KindConflict:
		msg = "conflicto: " + e.Subject
	default:
		msg = "error interno"
		if e.Subject != "" {
			msg += ": " + e.Subject
		}
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrNotFound) y equivalentes por Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidInput:
		return e.Kind == KindValidation
	case ErrConflict:
		return e.Kind == KindConflict
	case ErrInternal:
		return e.Kind == KindInternal
	}
	return false
}

// NotFound construye un error para una entidad referenciada inexistente.
func NotFound(entity string) error {
	return &Error{Kind: KindNotFound, Subject: entity}
}

// Validation construye un error de regla de negocio sobre un campo.
func Validation(field string) error {
	return &Error{Kind: KindValidation, Subject: field}
}

// Conflict construye un error de estado incompatible con la operación.
func Conflict(reason string) error {
	return &Error{Kind: KindConflict, Subject: reason}
}

// Internal envuelve un fallo no clasificado (BD, integridad de datos, timeouts).
func Internal(op string, err error) error {
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Kind: KindInternal, Subject: op, Err: err}
}

// KindOf devuelve la clasificación de err. Cualquier error no clasificado es KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
