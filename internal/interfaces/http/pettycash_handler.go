package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/textil-erp/internal/application/dto"
	apppettycash "github.com/jhoicas/textil-erp/internal/application/pettycash"
	"github.com/jhoicas/textil-erp/internal/application/reporting"
	"github.com/jhoicas/textil-erp/internal/domain"
	"github.com/jhoicas/textil-erp/internal/domain/repository"
)

// PettyCashHandler maneja cajas menores, su libro de asientos y los reportes.
type PettyCashHandler struct {
	uc       *apppettycash.UseCase
	reportUC *reporting.LedgerReportUseCase
	exportUC *reporting.XMLExportUseCase
}

// NewPettyCashHandler construye el handler inyectando los casos de uso.
func NewPettyCashHandler(
	uc *apppettycash.UseCase,
	reportUC *reporting.LedgerReportUseCase,
	exportUC *reporting.XMLExportUseCase,
) *PettyCashHandler {
	return &PettyCashHandler{uc: uc, reportUC: reportUC, exportUC: exportUC}
}

// CreateAccount godoc
// @Summary      Abrir caja menor
// @Tags         petty-cash
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePettyCashAccountRequest  true  "Datos de la caja"
// @Success      201   {object}  dto.PettyCashAccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/petty-cash/accounts [post]
// @Security     BearerAuth
func (h *PettyCashHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreatePettyCashAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateAccount(GetCompanyID(c), in)
	if err != nil {
		return respondPettyCashError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetAccount godoc
// @Summary      Obtener caja menor con su clasificación de saldo
// @Tags         petty-cash
// @Produce      json
// @Param        id   path  string  true  "ID de la caja"
// @Success      200  {object}  dto.PettyCashAccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/petty-cash/accounts/{id} [get]
// @Security     BearerAuth
func (h *PettyCashHandler) GetAccount(c *fiber.Ctx) error {
	out, err := h.uc.GetAccount(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return respondPettyCashError(c, err)
	}
	return c.JSON(out)
}

// ListAccounts godoc
// @Summary      Listar cajas menores de la empresa
// @Tags         petty-cash
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por sede"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200          {array}  dto.PettyCashAccountResponse
// @Router       /api/petty-cash/accounts [get]
// @Security     BearerAuth
func (h *PettyCashHandler) ListAccounts(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListAccounts(GetCompanyID(c), c.Query("location_id"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeactivateAccount godoc
// @Summary      Desactivar caja menor (el historial se conserva)
// @Tags         petty-cash
// @Produce      json
// @Param        id   path  string  true  "ID de la caja"
// @Success      204  "sin contenido"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/petty-cash/accounts/{id} [delete]
// @Security     BearerAuth
func (h *PettyCashHandler) DeactivateAccount(c *fiber.Ctx) error {
	if err := h.uc.DeactivateAccount(GetCompanyID(c), c.Params("id")); err != nil {
		return respondPettyCashError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateTransaction godoc
// @Summary      Registrar asiento en el libro de la caja
// @Description  REPLENISHMENT y DISBURSEMENT exigen monto positivo; ADJUSTMENT
// @Description  acepta monto con signo. Un egreso que dejaría el saldo negativo
// @Description  se rechaza con 409. Una reposición que supera el tope requiere
// @Description  acknowledge_over_limit=true.
// @Tags         petty-cash
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la caja"
// @Param        body  body  dto.CreateTransactionRequest  true  "Datos del asiento"
// @Success      201   {object}  dto.PettyCashTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/petty-cash/accounts/{id}/transactions [post]
// @Security     BearerAuth
func (h *PettyCashHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateTransaction(c.Context(), GetCompanyID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondPettyCashError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Consultar el libro de asientos
// @Tags         petty-cash
// @Produce      json
// @Param        id      path   string  true   "ID de la caja"
// @Param        type    query  string  false  "REPLENISHMENT | DISBURSEMENT | ADJUSTMENT"
// @Param        from    query  string  false  "Fecha inclusive (YYYY-MM-DD)"
// @Param        to      query  string  false  "Fecha exclusiva (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.PettyCashTransactionResponse
// @Router       /api/petty-cash/accounts/{id}/transactions [get]
// @Security     BearerAuth
func (h *PettyCashHandler) ListTransactions(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c, false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	f := repository.TransactionFilters{
		AccountID: c.Params("id"),
		Type:      c.Query("type"),
		From:      from,
		To:        to,
		Limit:     c.QueryInt("limit", 20),
		Offset:    c.QueryInt("offset", 0),
	}
	out, err := h.uc.ListTransactions(GetCompanyID(c), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PeriodSummary godoc
// @Summary      Agregado del período [from, to): reposiciones, egresos y variación neta
// @Tags         petty-cash
// @Produce      json
// @Param        id    path   string  true  "ID de la caja"
// @Param        from  query  string  true  "Fecha inclusive (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fecha exclusiva (YYYY-MM-DD)"
// @Success      200   {object}  dto.PeriodSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/petty-cash/accounts/{id}/summary [get]
// @Security     BearerAuth
func (h *PettyCashHandler) PeriodSummary(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.PeriodSummary(GetCompanyID(c), c.Params("id"), from, to)
	if err != nil {
		return respondPettyCashError(c, err)
	}
	return c.JSON(out)
}

// LedgerReport godoc
// @Summary      Reporte PDF del libro de caja en el período
// @Tags         petty-cash
// @Produce      application/pdf
// @Param        id    path   string  true  "ID de la caja"
// @Param        from  query  string  true  "Fecha inclusive (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fecha exclusiva (YYYY-MM-DD)"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/petty-cash/accounts/{id}/report.pdf [get]
// @Security     BearerAuth
func (h *PettyCashHandler) LedgerReport(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdfBytes, err := h.reportUC.Generate(c.Context(), GetCompanyID(c), c.Params("id"), from, to)
	if err != nil {
		return respondPettyCashError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="libro-caja-menor.pdf"`)
	return c.Send(pdfBytes)
}

// ExportXML godoc
// @Summary      Exportación contable XML de todas las cajas en el período
// @Tags         petty-cash
// @Produce      application/xml
// @Param        from  query  string  true  "Fecha inclusive (YYYY-MM-DD)"
// @Param        to    query  string  true  "Fecha exclusiva (YYYY-MM-DD)"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/petty-cash/export.xml [get]
// @Security     BearerAuth
func (h *PettyCashHandler) ExportXML(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	xmlBytes, err := h.exportUC.Export(c.Context(), GetCompanyID(c), from, to)
	if err != nil {
		return respondPettyCashError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="exportacion-caja-menor.xml"`)
	return c.Send(xmlBytes)
}

// parsePeriod lee from/to (YYYY-MM-DD) de la query. El intervalo es
// semiabierto: from inclusive, to exclusivo.
func parsePeriod(c *fiber.Ctx, required bool) (from, to time.Time, err error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" && toStr == "" && !required {
		return time.Time{}, time.Time{}, nil
	}
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("from y to son requeridos (YYYY-MM-DD)")
	}
	from, err = time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("from inválido: se espera YYYY-MM-DD")
	}
	to, err = time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("to inválido: se espera YYYY-MM-DD")
	}
	return from, to, nil
}

// respondPettyCashError mapea los errores de dominio de caja menor a HTTP.
func respondPettyCashError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caja menor no encontrada"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la caja pertenece a otra empresa"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una caja con ese código"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrMontoInvalido:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: err.Error()})
	case domain.ErrSaldoInsuficiente:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: err.Error()})
	case domain.ErrCuentaInactiva:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: err.Error()})
	case domain.ErrSuperaTope:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OVER_MAX_LIMIT", Message: err.Error()})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la caja ya está desactivada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
