package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/caixa"
	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// CaixaHandler abertura e fechamento do caixa diário.
type CaixaHandler struct {
	uc  *caixa.UseCase
	log *logger.Logger
}

// NewCaixaHandler constrói o handler de caixa.
func NewCaixaHandler(uc *caixa.UseCase, log *logger.Logger) *CaixaHandler {
	return &CaixaHandler{uc: uc, log: log}
}

// Open godoc
// @Summary      Abrir o caixa de hoje
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenCaixaRequest  true  "opening_amount"
// @Success      201   {object}  dto.CaixaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caixa/open [post]
func (h *CaixaHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenCaixaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	cx, err := h.uc.Open(c.UserContext(), in.OpeningAmount)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("caixa_id", cx.ID).Str("opening_amount", cx.OpeningAmount.StringFixed(2)).Msg("caixa aberto")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "caixa": toCaixaResponse(cx)})
}

// Close godoc
// @Summary      Fechar um caixa aberto
// @Tags         caixa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID do caixa"
// @Param        body  body  dto.CloseCaixaRequest   true  "closing_amount"
// @Success      200   {object}  dto.CloseCaixaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caixa/{id}/close [post]
func (h *CaixaHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseCaixaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	res, err := h.uc.Close(c.UserContext(), c.Params("id"), in.ClosingAmount)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("caixa_id", res.Caixa.ID).Str("variance", res.Variance.StringFixed(2)).Msg("caixa fechado")
	return c.JSON(dto.CloseCaixaResponse{
		Success:       true,
		Caixa:         toCaixaResponse(res.Caixa),
		OpeningAmount: res.Caixa.OpeningAmount,
		ClosingAmount: *res.Caixa.ClosingAmount,
		Variance:      res.Variance,
	})
}

// Today caixa da data de hoje; caixa null quando ainda não foi aberto.
func (h *CaixaHandler) Today(c *fiber.Ctx) error {
	cx, err := h.uc.Today(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"caixa": optionalCaixa(cx)})
}

// CurrentOpen caixa ABERTO, de qualquer data.
func (h *CaixaHandler) CurrentOpen(c *fiber.Ctx) error {
	cx, err := h.uc.CurrentOpen(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"caixa": optionalCaixa(cx)})
}

// GetByID GET /caixa/:id.
func (h *CaixaHandler) GetByID(c *fiber.Ctx) error {
	cx, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if cx == nil {
		return notFound(c, "caixa não encontrado")
	}
	return c.JSON(toCaixaResponse(cx))
}

// List GET /caixa: histórico de caixas.
func (h *CaixaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(mapSlice(list, toCaixaResponse))
}
