package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de unique_violation; la capa lo traduce a domain.ErrDuplicate.
const codeUniqueViolation = "23505"

// pgErrCode extrae el código SQLSTATE de un error de pgx, o "" si no es un
// error del servidor.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}
