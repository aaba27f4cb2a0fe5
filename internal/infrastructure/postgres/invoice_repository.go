package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stationery-api/internal/domain"
	"github.com/jhoicas/stationery-api/internal/domain/entity"
	"github.com/jhoicas/stationery-api/internal/domain/ledger"
	"github.com/jhoicas/stationery-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// invoiceNumberLockKey clave del advisory lock que serializa la numeración.
const invoiceNumberLockKey int64 = 0x494e5631 // "INV1"

const invoiceColumns = `id, invoice_number, retailer_id, retailer_name, total_amount, paid_amount,
	due_amount, status, invoice_date, COALESCE(notes, ''), created_at`

// InvoiceRepo implementación del puerto InvoiceRepository (cabecera + invoice_items).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var status string
	if err := row.Scan(&inv.ID, &inv.Number, &inv.RetailerID, &inv.RetailerName, &inv.TotalAmount,
		&inv.PaidAmount, &inv.DueAmount, &status, &inv.InvoiceDate, &inv.Notes, &inv.CreatedAt); err != nil {
		return nil, err
	}
	inv.Status = entity.InvoiceStatus(status)
	return &inv, nil
}

// Create persiste cabecera y líneas. Debe llamarse dentro de una transacción.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	seq, ok := ledger.ParseNumber(inv.Number)
	if !ok {
		return fmt.Errorf("número de factura %q: %w", inv.Number, domain.ErrInvalidInput)
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO invoices (id, invoice_number, invoice_seq, retailer_id, retailer_name, total_amount,
			paid_amount, due_amount, status, invoice_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		inv.ID, inv.Number, seq, inv.RetailerID, inv.RetailerName, inv.TotalAmount,
		inv.PaidAmount, inv.DueAmount, string(inv.Status), inv.InvoiceDate, nullIfEmpty(inv.Notes), inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	batch := &pgx.Batch{}
	for i, l := range inv.Lines {
		batch.Queue(`
			INSERT INTO invoice_items (invoice_id, line_no, product_id, product_name, quantity, price, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			inv.ID, i+1, l.ProductID, l.ProductName, l.Quantity, l.Price, l.Total,
		)
	}
	if err := r.sendBatch(ctx, batch); err != nil {
		return fmt.Errorf("insert invoice items: %w", err)
	}
	return nil
}

// sendBatch usa SendBatch si el Querier lo soporta (pool y tx lo hacen); si no, ejecuta en serie.
func (r *InvoiceRepo) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	type batcher interface {
		SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	}
	if b, ok := r.q.(batcher); ok {
		return b.SendBatch(ctx, batch).Close()
	}
	for _, qq := range batch.QueuedQueries {
		if _, err := r.q.Exec(ctx, qq.SQL, qq.Arguments...); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una factura con sus líneas.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.get(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByIDForUpdate obtiene la factura y bloquea la fila (SELECT FOR UPDATE).
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.get(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
}

func (r *InvoiceRepo) get(ctx context.Context, query, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := r.attachLines(ctx, []*entity.Invoice{inv}); err != nil {
		return nil, err
	}
	return inv, nil
}

// List facturas por invoice_date descendente.
func (r *InvoiceRepo) List(ctx context.Context, limit int) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices ORDER BY invoice_date DESC, invoice_seq DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	if err := r.attachLines(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// attachLines carga las líneas de todas las facturas en una consulta.
func (r *InvoiceRepo) attachLines(ctx context.Context, invoices []*entity.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Invoice, len(invoices))
	ids := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		inv.Lines = []entity.InvoiceLine{}
		byID[inv.ID] = inv
		ids = append(ids, inv.ID)
	}
	rows, err := r.q.Query(ctx, `
		SELECT invoice_id, product_id, product_name, quantity, price, total
		FROM invoice_items WHERE invoice_id = ANY($1) ORDER BY invoice_id, line_no`, ids)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var invoiceID string
		var l entity.InvoiceLine
		if err := rows.Scan(&invoiceID, &l.ProductID, &l.ProductName, &l.Quantity, &l.Price, &l.Total); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		if inv, ok := byID[invoiceID]; ok {
			inv.Lines = append(inv.Lines, l)
		}
	}
	return rows.Err()
}

// UpdateBalance persiste paid_amount, due_amount y status.
func (r *InvoiceRepo) UpdateBalance(ctx context.Context, inv *entity.Invoice) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE invoices SET paid_amount = $2, due_amount = $3, status = $4 WHERE id = $1`,
		inv.ID, inv.PaidAmount, inv.DueAmount, string(inv.Status),
	)
	if err != nil {
		return fmt.Errorf("update invoice balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// LastSequence toma el advisory lock de numeración (liberado al commit) y
// devuelve el mayor invoice_seq. Fuera de una transacción el lock se libera al instante.
func (r *InvoiceRepo) LastSequence(ctx context.Context) (int64, error) {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, invoiceNumberLockKey); err != nil {
		return 0, fmt.Errorf("lock invoice numbering: %w", err)
	}
	var last int64
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(invoice_seq), 0) FROM invoices`).Scan(&last); err != nil {
		return 0, fmt.Errorf("last invoice sequence: %w", err)
	}
	return last, nil
}

// SumTotalSince suma total_amount con invoice_date >= since.
func (r *InvoiceRepo) SumTotalSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM invoices WHERE invoice_date >= $1`, since,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum invoices: %w", err)
	}
	return sum, nil
}
