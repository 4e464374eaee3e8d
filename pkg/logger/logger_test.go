package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/pkg/logger"
)

func jsonLogger(buf *bytes.Buffer, level string) *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: level, Output: buf})
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestAuditFailure_EmiteContextoCompleto(t *testing.T) {
	var buf bytes.Buffer
	log := jsonLogger(&buf, "warn")

	log.AuditFailure(errors.New("conexión caída"), "actor-1", "append_transaction", "transaction", "txn-9")

	m := lastLine(t, &buf)
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, "actor-1", m["actor"])
	assert.Equal(t, "append_transaction", m["action"])
	assert.Equal(t, "transaction", m["entity_type"])
	assert.Equal(t, "txn-9", m["entity_id"])
	assert.Equal(t, "conexión caída", m["error"])
	assert.Equal(t, "auditoría no persistida; la operación primaria continúa", m["message"])
}

func TestWithComponent_EtiquetaCadaLinea(t *testing.T) {
	var buf bytes.Buffer
	log := jsonLogger(&buf, "info").WithComponent("ledger")

	log.Info().Msg("transacción registrada")

	m := lastLine(t, &buf)
	assert.Equal(t, "ledger", m["component"])
	assert.Equal(t, "transacción registrada", m["message"])
}

func TestNivelDesconocidoCaeAWarn(t *testing.T) {
	var buf bytes.Buffer
	log := jsonLogger(&buf, "verboso")

	log.Info().Msg("no debería verse")
	assert.Empty(t, buf.Bytes(), "info queda por debajo del nivel por defecto")

	log.Warn().Msg("sí debería verse")
	m := lastLine(t, &buf)
	assert.Equal(t, "sí debería verse", m["message"])
}
