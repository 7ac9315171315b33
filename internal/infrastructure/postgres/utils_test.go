package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("create caixa: %w", &pgconn.PgError{Code: "23505", ConstraintName: "caixas_um_aberto"})
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, uniqueViolationOn(unique, "caixas_um_aberto"))
	assert.False(t, uniqueViolationOn(unique, "caixas_data_key"))

	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isCheckViolation(&pgconn.PgError{Code: "23514"}))
	assert.True(t, IsSerializationFailure(fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"})))

	plain := errors.New("conexão recusada")
	assert.False(t, isUniqueViolation(plain))
	assert.False(t, IsSerializationFailure(plain))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%cafe%", likePattern("  cafe "))
	assert.Equal(t, `%50\%%`, likePattern("50%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("6f1c2f0e-8a43-4b7e-9d7c-1f2a3b4c5d6e"))
	assert.False(t, validID("abc"))
	assert.False(t, validID(""))
}
