package billing

import (
	"github.com/jhoicas/stationery-api/internal/application/dto"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
)

// ToInvoiceResponse convierte la entidad a DTO. Usado también por el dashboard.
func ToInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	lines := make([]dto.InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, dto.InvoiceLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Total:       l.Total,
		})
	}
	return dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.Number,
		RetailerID:    inv.RetailerID,
		RetailerName:  inv.RetailerName,
		Products:      lines,
		TotalAmount:   inv.TotalAmount,
		PaidAmount:    inv.PaidAmount,
		DueAmount:     inv.DueAmount,
		Status:        string(inv.Status),
		InvoiceDate:   inv.InvoiceDate,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
}

func toInvoiceList(list []*entity.Invoice) []dto.InvoiceResponse {
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, ToInvoiceResponse(inv))
	}
	return out
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            p.ID,
		InvoiceID:     p.InvoiceID,
		InvoiceNumber: p.InvoiceNumber,
		RetailerName:  p.RetailerName,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		Notes:         p.Notes,
	}
}

func toPaymentList(list []*entity.Payment) []dto.PaymentResponse {
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPaymentResponse(p))
	}
	return out
}
