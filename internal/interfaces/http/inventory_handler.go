package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/textil-erp/internal/application/dto"
	appinventory "github.com/jhoicas/textil-erp/internal/application/inventory"
	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

// InventoryHandler maneja las posiciones de inventario por sede.
type InventoryHandler struct {
	uc *appinventory.UseCase
}

// NewInventoryHandler construye el handler inyectando el caso de uso.
func NewInventoryHandler(uc *appinventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar posición de inventario
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "producto, sede y stock inicial"
// @Success      201   {object}  dto.InventoryPositionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
// @Security     BearerAuth
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateInventory(GetCompanyID(c), in)
	if err != nil {
		return respondInventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar posiciones con disponible y estado de stock
// @Tags         inventory
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por sede"
// @Param        product_id   query  string  false  "Filtrar por referencia"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200          {array}  dto.InventoryPositionResponse
// @Router       /api/inventory [get]
// @Security     BearerAuth
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	f := repository.InventoryFilters{
		LocationID: c.Query("location_id"),
		ProductID:  c.Query("product_id"),
		Limit:      c.QueryInt("limit", 20),
		Offset:     c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(GetCompanyID(c), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Ajustar stock (delta con signo; entrada con costo recalcula promedio)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la posición"
// @Param        body  body  dto.AdjustStockRequest true  "delta y costo unitario opcional"
// @Success      200   {object}  dto.InventoryPositionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjust [post]
// @Security     BearerAuth
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStock(c.Context(), GetCompanyID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondInventoryError(c, err)
	}
	return c.JSON(out)
}

// ChangeReservation godoc
// @Summary      Reservar o liberar stock (delta con signo)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la posición"
// @Param        body  body  dto.ChangeReservationRequest true  "delta de reserva"
// @Success      200   {object}  dto.InventoryPositionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/reserve [post]
// @Security     BearerAuth
func (h *InventoryHandler) ChangeReservation(c *fiber.Ctx) error {
	var in dto.ChangeReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeReservation(c.Context(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return respondInventoryError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos de una posición (auditoría)
// @Tags         inventory
// @Produce      json
// @Param        id      path   string  true   "ID de la posición"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.StockMovementResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/movements [get]
// @Security     BearerAuth
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListMovements(GetCompanyID(c), c.Params("id"), page)
	if err != nil {
		return respondInventoryError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar posición (solo con stock y reserva en cero)
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID de la posición"
// @Success      204  "sin contenido"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
// @Security     BearerAuth
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteInventory(GetCompanyID(c), c.Params("id")); err != nil {
		return respondInventoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// respondInventoryError mapea los errores de dominio del inventario a HTTP.
func respondInventoryError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "posición de inventario no encontrada"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la posición pertenece a otra empresa"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una posición para ese producto en esa sede"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrReservaExcedeStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RESERVATION_EXCEEDS_STOCK", Message: err.Error()})
	case domain.ErrReservaNegativa:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NEGATIVE_RESERVATION", Message: err.Error()})
	case domain.ErrStockInsuficiente:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la posición aún tiene stock o reserva"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
