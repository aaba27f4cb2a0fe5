package memory

import (
	"context"

	"github.com/jhoicas/stationery-api/internal/application/billing"
)

var _ billing.LedgerTxRunner = (*TxRunner)(nil)

// TxRunner serializa las operaciones del ledger sobre el store. Si fn falla
// se restaura la copia tomada al inicio.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunLedger ejecuta fn con el store bloqueado y repos atados a la "transacción".
func (r *TxRunner) RunLedger(ctx context.Context, fn func(repos billing.LedgerRepositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snapshot := r.s.data.clone()
	tx := access{s: r.s, inTx: true}
	repos := billing.LedgerRepositories{
		Retailers: &RetailerRepo{tx},
		Products:  &ProductRepo{tx},
		Invoices:  &InvoiceRepo{tx},
		Payments:  &PaymentRepo{tx},
	}
	if err := fn(repos); err != nil {
		r.s.data = snapshot
		return err
	}
	return nil
}
