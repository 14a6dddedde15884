package lognotify

import (
	"context"

	"horse-medical-records/internal/middleware"
	"horse-medical-records/internal/platform/logger"
	"horse-medical-records/internal/ports/notify"
)

// Notifier deja cada notificación como una línea de log. Si el request trae
// logger propio (request_id) se usa ese.
type Notifier struct {
	log logger.Logger
}

var _ notify.Notifier = (*Notifier)(nil)

func New(log logger.Logger) *Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{log: log}
}

func (n *Notifier) Notify(ctx context.Context, message string, severity notify.Severity) {
	l := middleware.LoggerFrom(ctx, n.log)
	fields := map[string]any{"notify": string(severity)}

	switch severity {
	case notify.SeverityError:
		l.Error(message, fields)
	case notify.SeverityWarning:
		l.Warn(message, fields)
	default:
		l.Info(message, fields)
	}
}

// Recorder guarda las notificaciones en memoria (tests).
type Recorder struct {
	Items []Notification
}

type Notification struct {
	Message  string
	Severity notify.Severity
}

var _ notify.Notifier = (*Recorder)(nil)

func (r *Recorder) Notify(_ context.Context, message string, severity notify.Severity) {
	r.Items = append(r.Items, Notification{Message: message, Severity: severity})
}
