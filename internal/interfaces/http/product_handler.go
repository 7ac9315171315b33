package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// ProductHandler cadastro de produtos e suas tags.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Cadastrar produto
// @Description  Quantidade inicial > 0 gera uma ENTRADA "Estoque inicial" ao preço de compra.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "product": out})
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "produto não encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar produtos
// @Description  Sem q: produtos ativos (inativos com inactive=true). Com q: busca por nome ou tag.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q         query  string  false  "Termo de busca (nome ou tag)"
// @Param        inactive  query  bool    false  "Incluir inativos"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var (
		out []dto.ProductResponse
		err error
	)
	if q := c.Query("q"); q != "" {
		out, err = h.uc.Search(c.UserContext(), q)
	} else {
		out, err = h.uc.List(c.UserContext(), c.QueryBool("inactive", false))
	}
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar produto
// @Description  Não altera a quantidade. tag_ids presente substitui o conjunto de tags.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": out})
}

// Deactivate marca o produto como inativo (some das listagens, histórico preservado).
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete exclusão física; produtos com histórico devolvem 409.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Alerts godoc
// @Summary      Alertas de estoque baixo e validade
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Janela de validade em dias (padrão da configuração)"
// @Success      200  {array}  dto.ProductAlertResponse
// @Router       /api/products/alerts [get]
func (h *ProductHandler) Alerts(c *fiber.Ctx) error {
	var window *int
	if c.Query("days") != "" {
		d := c.QueryInt("days", -1)
		if d < 0 {
			return badRequest(c, "INVALID_PARAMS", "days deve ser um inteiro não negativo")
		}
		window = &d
	}
	out, err := h.uc.Alerts(c.UserContext(), window)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListTags tags do produto.
func (h *ProductHandler) ListTags(c *fiber.Ctx) error {
	out, err := h.uc.ListTags(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// SetTags substitui o conjunto de tags do produto.
func (h *ProductHandler) SetTags(c *fiber.Ctx) error {
	var in dto.SetProductTagsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corpo inválido")
	}
	out, err := h.uc.SetTags(c.UserContext(), c.Params("id"), in.TagIDs)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true, "tags": out})
}

// AddTag associa uma tag (idempotente).
func (h *ProductHandler) AddTag(c *fiber.Ctx) error {
	if err := h.uc.AddTag(c.UserContext(), c.Params("id"), c.Params("tagId")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// RemoveTag desfaz a associação.
func (h *ProductHandler) RemoveTag(c *fiber.Ctx) error {
	if err := h.uc.RemoveTag(c.UserContext(), c.Params("id"), c.Params("tagId")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
