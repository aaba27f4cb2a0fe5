package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stationery-api/internal/domain"
)

func TestInvoiceCreated_ConPagoInicial(t *testing.T) {
	m := New()
	m.InvoiceCreated(decimal.NewFromInt(200), decimal.NewFromInt(50))
	m.InvoiceCreated(decimal.NewFromInt(100), decimal.Zero)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.invoicesCreated))
	assert.Equal(t, 300.0, testutil.ToFloat64(m.invoicedAmount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.paymentsRecorded))
	assert.Equal(t, 50.0, testutil.ToFloat64(m.collectedAmount))
}

func TestLedgerRejected_Razones(t *testing.T) {
	m := New()
	m.LedgerRejected("record_payment", fmt.Errorf("pago: %w", domain.ErrAmountExceedsDue))
	m.LedgerRejected("create_invoice", domain.ErrRetailerNotFound)
	m.LedgerRejected("create_invoice", fmt.Errorf("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerRejected.WithLabelValues("record_payment", "amount_exceeds_due")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerRejected.WithLabelValues("create_invoice", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerRejected.WithLabelValues("create_invoice", "internal")))
}

func TestHandler_Expone(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/api/invoices", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `stationery_http_requests_total{method="GET",route="/api/invoices",status="200"} 1`))
	assert.True(t, strings.Contains(body, "stationery_invoices_created_total 0"))
}
