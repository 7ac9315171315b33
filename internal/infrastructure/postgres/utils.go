package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE tratados pela aplicação.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
)

func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// isUniqueViolation verifica se o erro é violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeUniqueViolation
}

// uniqueViolationOn verifica violação única numa constraint específica.
func uniqueViolationOn(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	return code == codeUniqueViolation && name == constraint
}

// isForeignKeyViolation verifica se o erro é violação de chave estrangeira (23503).
func isForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeForeignKeyViolation
}

// isCheckViolation verifica se o erro é violação de CHECK (23514).
func isCheckViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeCheckViolation
}

// IsSerializationFailure indica conflito entre transações serializáveis (40001); o chamador pode repetir.
func IsSerializationFailure(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeSerializationFailure
}
