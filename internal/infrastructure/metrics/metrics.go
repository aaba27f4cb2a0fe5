// Package metrics expone contadores Prometheus del ledger y de la capa HTTP.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stationery-api/internal/application/billing"
	"github.com/jhoicas/stationery-api/internal/domain"
)

const namespace = "stationery"

var _ billing.Recorder = (*Metrics)(nil)

// Metrics agrupa los collectors de la aplicación.
type Metrics struct {
	registry *prometheus.Registry

	requestCounter   *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	invoicesCreated  prometheus.Counter
	invoicedAmount   prometheus.Counter
	paymentsRecorded prometheus.Counter
	collectedAmount  prometheus.Counter
	ledgerRejected   *prometheus.CounterVec
}

// New registra los collectors en un registry propio (más los collectors de Go y proceso).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		invoicesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_created_total",
			Help:      "Total number of invoices created",
		}),
		invoicedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoiced_amount_total",
			Help:      "Sum of invoice totals",
		}),
		paymentsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Total number of payments recorded, initial payments included",
		}),
		collectedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collected_amount_total",
			Help:      "Sum of payment amounts",
		}),
		ledgerRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_rejected_total",
				Help:      "Ledger operations rejected, by operation and reason",
			},
			[]string{"operation", "reason"},
		),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestCounter,
		m.requestLatency,
		m.invoicesCreated,
		m.invoicedAmount,
		m.paymentsRecorded,
		m.collectedAmount,
		m.ledgerRejected,
	)
	return m
}

// Handler sirve el formato de exposición de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP registra una petición ya respondida.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.requestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// InvoiceCreated cuenta la factura y, si hubo pago inicial, también el pago.
func (m *Metrics) InvoiceCreated(total, paid decimal.Decimal) {
	m.invoicesCreated.Inc()
	m.invoicedAmount.Add(total.InexactFloat64())
	if paid.IsPositive() {
		m.PaymentRecorded(paid)
	}
}

// PaymentRecorded cuenta un pago.
func (m *Metrics) PaymentRecorded(amount decimal.Decimal) {
	m.paymentsRecorded.Inc()
	m.collectedAmount.Add(amount.InexactFloat64())
}

// LedgerRejected cuenta una operación rechazada por su causa.
func (m *Metrics) LedgerRejected(operation string, err error) {
	m.ledgerRejected.WithLabelValues(operation, reason(err)).Inc()
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAmountExceedsDue):
		return "amount_exceeds_due"
	case errors.Is(err, domain.ErrLineTotalMismatch):
		return "line_total_mismatch"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
