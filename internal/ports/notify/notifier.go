package notify

import "context"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier entrega mensajes breves al usuario (toast en la UI).
// Fire-and-forget: no devuelve error.
type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity)
}

// Rank ordena severidades para filtrar: info y success pesan lo mismo.
func (s Severity) Rank() int {
	switch s {
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	default:
		return 0
	}
}

// Multi reparte cada notificación a todos los notifiers (nil se ignora).
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, message string, severity Severity) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, message, severity)
		}
	}
}
