package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/pkg/logger"
)

// InvoiceHandler facturas, pagos de una factura y PDF.
type InvoiceHandler struct {
	ledger *billing.LedgerUseCase
	pdf    *billing.PDFUseCase
	log    *logger.Logger
}

// NewInvoiceHandler construye el handler. pdf puede ser nil (ruta deshabilitada).
func NewInvoiceHandler(ledger *billing.LedgerUseCase, pdf *billing.PDFUseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{ledger: ledger, pdf: pdf, log: log}
}

// List godoc
// @Summary      Listar facturas
// @Description  Ordenadas por fecha de factura, la más reciente primero.
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.InvoiceResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.ledger.ListInvoices(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear factura
// @Description  Calcula totales, asigna el número INV-, descuenta stock y suma el saldo al retailer.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInvoiceRequest  true  "retailer_id, products, paid_amount, notes"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.ledger.CreateInvoice(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("invoice", out.InvoiceNumber).Str("retailer_id", out.RetailerID).
		Str("admin", GetAdminEmail(c)).Msg("factura creada")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.ledger.GetInvoice(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Payments godoc
// @Summary      Pagos de una factura
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {array}   dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/payments [get]
func (h *InvoiceHandler) Payments(c *fiber.Ctx) error {
	list, err := h.ledger.ListInvoicePayments(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// PDF godoc
// @Summary      Descargar factura en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.GenerateInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// PaymentHandler registro y listado global de pagos.
type PaymentHandler struct {
	ledger *billing.LedgerUseCase
	log    *logger.Logger
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(ledger *billing.LedgerUseCase, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{ledger: ledger, log: log}
}

// List godoc
// @Summary      Listar pagos
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.PaymentResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	list, err := h.ledger.ListPayments(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Registrar pago
// @Description  El monto debe ser positivo y no superar el saldo de la factura.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePaymentRequest  true  "invoice_id, amount, notes"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.ledger.RecordPayment(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
