package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// StockHandler operações de estoque: entradas, saídas, fiados, prejuízos e reposição.
type StockHandler struct {
	uc            *inventory.StockUseCase
	replenishment *inventory.ReplenishmentUseCase
	log           *logger.Logger
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *inventory.StockUseCase, replenishment *inventory.ReplenishmentUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{uc: uc, replenishment: replenishment, log: log}
}

// Entry godoc
// @Summary      Registrar entrada de mercadoria
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockEntryRequest  true  "product_id, quantity, note, unit_price"
// @Success      201   {object}  dto.StockOperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *StockHandler) Entry(c *fiber.Ctx) error {
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	res, err := h.uc.Entry(c.UserContext(), inventory.EntryInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Note:      in.Note,
		UnitPrice: in.UnitPrice,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockOperationResponse(res))
}

// Exit godoc
// @Summary      Registrar saída (venda à vista ou fiado)
// @Description  Fiado: is_credit=true e customer obrigatório; nenhuma movimentação até o pagamento.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockExitRequest  true  "product_id, quantity, note, is_credit, customer"
// @Success      201   {object}  dto.StockOperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/exits [post]
func (h *StockHandler) Exit(c *fiber.Ctx) error {
	var in dto.StockExitRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	res, err := h.uc.Exit(c.UserContext(), inventory.ExitInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Note:      in.Note,
		IsCredit:  in.IsCredit,
		Customer:  in.Customer,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockOperationResponse(res))
}

// RegisterMovement godoc
// @Summary      Registrar movimentação tipada
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "type ENTRADA ou SAIDA"
// @Success      201   {object}  dto.StockOperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	res, err := h.uc.RegisterMovementFromRequest(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockOperationResponse(res))
}

// ListMovements godoc
// @Summary      Livro de movimentações
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por produto"
// @Param        type        query  string  false  "ENTRADA ou SAIDA"
// @Param        from        query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        to          query  string  false  "Data final (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Limite (padrão 100, máx. 500)"
// @Param        offset      query  int     false  "Offset"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	from, to, ok := dateRange(c)
	if !ok {
		return badRequest(c, "INVALID_PARAMS", "datas devem estar no formato YYYY-MM-DD")
	}
	limit := c.QueryInt("limit", 100)
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	list, err := h.uc.ListMovements(c.UserContext(), repository.MovementFilter{
		ProductID: c.Query("product_id"),
		Type:      c.Query("type"),
		From:      from,
		To:        to,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(mapSlice(list, toMovementResponse))
}

// RegisterLoss godoc
// @Summary      Registrar prejuízo
// @Description  Motivo vazio vira "Outro". Não gera movimentação.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterLossRequest  true  "product_id, quantity, reason, note"
// @Success      201   {object}  dto.StockOperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/losses [post]
func (h *StockHandler) RegisterLoss(c *fiber.Ctx) error {
	var in dto.RegisterLossRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	res, err := h.uc.RegisterLoss(c.UserContext(), inventory.LossInput{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Note:      in.Note,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockOperationResponse(res))
}

// ListLosses perdas no período (from/to opcionais).
func (h *StockHandler) ListLosses(c *fiber.Ctx) error {
	from, to, ok := dateRange(c)
	if !ok {
		return badRequest(c, "INVALID_PARAMS", "datas devem estar no formato YYYY-MM-DD")
	}
	list, err := h.uc.ListPrejuizos(c.UserContext(), from, to)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(mapSlice(list, toPrejuizoResponse))
}

// LossReasons motivos sugeridos ao operador.
func (h *StockHandler) LossReasons(c *fiber.Ctx) error {
	return c.JSON(entity.LossReasons)
}

// ListFiados todos os fiados, ou só os em aberto com open=true.
func (h *StockHandler) ListFiados(c *fiber.Ctx) error {
	var (
		list []*entity.Fiado
		err  error
	)
	if c.QueryBool("open", false) {
		list, err = h.uc.ListOpenFiados(c.UserContext())
	} else {
		list, err = h.uc.ListFiados(c.UserContext())
	}
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(mapSlice(list, toFiadoResponse))
}

// GetFiado GET /stock/fiados/:id.
func (h *StockHandler) GetFiado(c *fiber.Ctx) error {
	f, err := h.uc.GetFiado(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if f == nil {
		return notFound(c, "fiado não encontrado")
	}
	return c.JSON(toFiadoResponse(f))
}

// PayFiado godoc
// @Summary      Quitar fiado
// @Description  Cria a movimentação SAIDA da venda e marca o fiado como pago. Fiado já pago devolve 404.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do fiado"
// @Success      200  {object}  dto.StockOperationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/fiados/{id}/pay [post]
func (h *StockHandler) PayFiado(c *fiber.Ctx) error {
	res, err := h.uc.PayFiado(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(toStockOperationResponse(res))
}

// GetReplenishmentList godoc
// @Summary      Lista de reposição
// @Description  Produtos abaixo do estoque mínimo com quantidade sugerida (alvo = 2 × mínimo),
//
//	ordenados pelas vendas dos últimos 30 dias.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/replenishment [get]
func (h *StockHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"total":   len(list),
		"items":   list,
	})
}

// dateRange lê from/to (YYYY-MM-DD) da query; ok=false se algum for inválido.
func dateRange(c *fiber.Ctx) (from, to *time.Time, ok bool) {
	var err error
	if from, err = dto.ParseDate(c.Query("from")); err != nil {
		return nil, nil, false
	}
	if to, err = dto.ParseDate(c.Query("to")); err != nil {
		return nil, nil, false
	}
	return from, to, true
}
