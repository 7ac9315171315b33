package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// MsgInternal mensagem genérica de 500; o erro real só vai para o log.
const MsgInternal = "erro interno"

type errorMapping struct {
	target error
	status int
	code   string
}

// errorMappings ordem importa: o primeiro errors.Is verdadeiro vence.
var errorMappings = []errorMapping{
	{domain.ErrInvalidQuantity, fiber.StatusBadRequest, "INVALID_QUANTITY"},
	{domain.ErrInvalidAmount, fiber.StatusBadRequest, "INVALID_AMOUNT"},
	{domain.ErrInvalidCustomer, fiber.StatusBadRequest, "INVALID_CUSTOMER"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrCaixaAlreadyOpenToday, fiber.StatusConflict, "CAIXA_ALREADY_OPEN_TODAY"},
	{domain.ErrCaixaAlreadyOpenElsewhere, fiber.StatusConflict, "CAIXA_ALREADY_OPEN_ELSEWHERE"},
	{domain.ErrCaixaAlreadyClosed, fiber.StatusConflict, "CAIXA_ALREADY_CLOSED"},
	{domain.ErrDuplicateName, fiber.StatusConflict, "DUPLICATE_NAME"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
}

func lookupError(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m, true
		}
	}
	return errorMapping{}, false
}

// StatusFor devolve status HTTP e código para err; desconhecidos viram 500 INTERNAL.
func StatusFor(err error) (int, string) {
	if m, ok := lookupError(err); ok {
		return m.status, m.code
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// respondError escreve {success:false, code, error}.
// Erros não mapeados são logados com método e rota; o cliente recebe apenas MsgInternal.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	m, ok := lookupError(err)
	if !ok {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("erro não tratado")
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Success: false, Code: "INTERNAL", Error: MsgInternal})
	}
	return c.Status(m.status).JSON(dto.ErrorResponse{Success: false, Code: m.code, Error: err.Error()})
}

// badRequest resposta 400 para corpo ou parâmetros malformados.
func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Success: false, Code: code, Error: msg})
}

// notFound resposta 404 para leituras sem registro.
func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Code: "NOT_FOUND", Error: msg})
}
