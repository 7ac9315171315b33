package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// OperatorConfig credenciais do operador único. PasswordHash é um hash bcrypt.
type OperatorConfig struct {
	Username     string
	PasswordHash string
}

// AuthUseCase login do operador da loja.
type AuthUseCase struct {
	operator OperatorConfig
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(operator OperatorConfig, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{operator: operator, jwtCfg: jwtCfg}
}

// Enabled indica se há senha de operador configurada; sem ela a API roda sem autenticação.
func (uc *AuthUseCase) Enabled() bool {
	return uc.operator.PasswordHash != ""
}

// Login verifica usuário/senha e gera o JWT. Credenciais erradas devolvem ErrUnauthorized.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.Enabled() {
		return nil, domain.ErrUnauthorized
	}
	if !strings.EqualFold(strings.TrimSpace(in.Username), uc.operator.Username) {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.operator.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, uc.operator.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: exp,
		Operator:  uc.operator.Username,
	}, nil
}
