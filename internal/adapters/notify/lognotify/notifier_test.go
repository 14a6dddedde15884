package lognotify

import (
	"bytes"
	"context"
	"testing"

	"horse-medical-records/internal/platform/logger"
	"horse-medical-records/internal/ports/notify"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_LevelBySeverity(t *testing.T) {
	var buf bytes.Buffer
	n := New(logger.New(logger.Options{Level: logger.Debug, Out: &buf}))

	n.Notify(context.Background(), "Peso registrado", notify.SeveritySuccess)
	n.Notify(context.Background(), "Valores fuera de rango", notify.SeverityWarning)
	n.Notify(context.Background(), "No se pudo guardar", notify.SeverityError)

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "notify=success")
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, "level=error")
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Notify(context.Background(), "ok", notify.SeverityInfo)
	assert.Equal(t, []Notification{{Message: "ok", Severity: notify.SeverityInfo}}, r.Items)
}
