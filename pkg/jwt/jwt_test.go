package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Estoque-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, exp, err := pkgjwt.Generate(testSecret, "caixa", "estoque-api-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	operator, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "caixa", operator)
}

func TestParse_Expired(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "caixa", "estoque-api-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado deve ser rejeitado")
}

func TestParse_WrongSecret(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "caixa", "estoque-api-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("outro-secret-completamente-diferente", tok)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, _, err := pkgjwt.Generate("", "caixa", "x", 60)
	assert.Error(t, err)
	_, err = pkgjwt.Parse("", "abc")
	assert.Error(t, err)
}
