package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/application/usecase"
	"github.com/jhoicas/stationery-api/pkg/logger"
)

// RetailerHandler CRUD de retailers (protegido).
type RetailerHandler struct {
	uc  *usecase.RetailerUseCase
	log *logger.Logger
}

// NewRetailerHandler construye el handler.
func NewRetailerHandler(uc *usecase.RetailerUseCase, log *logger.Logger) *RetailerHandler {
	return &RetailerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar retailers
// @Tags         retailers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.RetailerResponse
// @Router       /api/retailers [get]
func (h *RetailerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear retailer
// @Tags         retailers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateRetailerRequest  true  "shop_name, owner_name, phone_number, address"
// @Success      201   {object}  dto.RetailerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/retailers [post]
func (h *RetailerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRetailerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/retailers/:id
func (h *RetailerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar retailer
// @Description  Solo se modifican los campos presentes. total_due no es editable.
// @Tags         retailers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del retailer"
// @Param        body  body  dto.UpdateRetailerRequest  true  "campos a modificar"
// @Success      200   {object}  dto.RetailerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/retailers/{id} [put]
func (h *RetailerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRetailerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/retailers/:id
func (h *RetailerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Retailer deleted successfully"})
}
