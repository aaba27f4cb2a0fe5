package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stationery-api/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestNew_CamposFijos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Service: "stationery-api", Output: &buf})

	log.WithComponent("ledger").WithRequestID("req-1").Info().Str("invoice_number", "INV-1001").Msg("factura creada")

	line := decode(t, &buf)
	assert.Equal(t, "stationery-api", line["service"])
	assert.Equal(t, "ledger", line["component"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "INV-1001", line["invoice_number"])
	assert.Equal(t, "info", line["level"])
	assert.Contains(t, line, "time")
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "WARN", Output: &buf})

	log.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("visible")
	assert.Equal(t, "visible", decode(t, &buf)["message"])
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "verbose", Output: &buf})

	log.Debug().Msg("descartado")
	assert.Zero(t, buf.Len())
	log.Info().Msg("visible")
	assert.NotZero(t, buf.Len())
}

func TestWithRequestID_VacioNoAgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Output: &buf})

	log.WithRequestID("").Info().Msg("sin id")
	assert.NotContains(t, decode(t, &buf), "request_id")
}
