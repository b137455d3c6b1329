package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок Postgres: https://www.postgresql.org/docs/current/errcodes-appendix.html
const PgErrUniqueViolation = "23505"

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
