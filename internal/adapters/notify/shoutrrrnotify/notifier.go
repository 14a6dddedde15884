package shoutrrrnotify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"horse-medical-records/internal/platform/logger"
	"horse-medical-records/internal/ports/notify"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	router "github.com/nicholas-fedor/shoutrrr/pkg/router"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
)

const DefaultTimeout = 5 * time.Second

type Options struct {
	URLs        []string
	MinSeverity notify.Severity // por defecto warning
	Title       string
	Timeout     time.Duration
	Log         logger.Logger
}

// Notifier empuja notificaciones a servicios externos (Slack, Telegram, ntfy...)
// vía shoutrrr. El envío es asíncrono: Notify nunca bloquea al handler.
type Notifier struct {
	sender *router.ServiceRouter
	min    notify.Severity
	title  string
	log    logger.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var _ notify.Notifier = (*Notifier)(nil)

func New(opts Options) (*Notifier, error) {
	if len(opts.URLs) == 0 {
		return nil, errors.New("shoutrrr: at least one URL is required")
	}
	sender, err := shoutrrr.CreateSender(opts.URLs...)
	if err != nil {
		// el error de shoutrrr puede traer tokens de la URL
		return nil, errors.New("shoutrrr: invalid notification URL")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	sender.Timeout = opts.Timeout
	sender.SetLogger(log.New(io.Discard, "", 0))

	if opts.MinSeverity == "" {
		opts.MinSeverity = notify.SeverityWarning
	}
	if opts.Title == "" {
		opts.Title = "Horse medical records"
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	return &Notifier{
		sender: sender,
		min:    opts.MinSeverity,
		title:  opts.Title,
		log:    opts.Log,
	}, nil
}

func (n *Notifier) Notify(_ context.Context, message string, severity notify.Severity) {
	if severity.Rank() < n.min.Rank() {
		return
	}

	params := stypes.Params{}
	params.SetTitle(fmt.Sprintf("%s [%s]", n.title, severity))

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.wg.Add(1)
	n.mu.Unlock()

	go func() {
		defer n.wg.Done()
		for _, err := range n.sender.Send(message, &params) {
			if err != nil {
				n.log.Warn("push notification failed", map[string]any{"err": err})
			}
		}
	}()
}

// Close espera los envíos en curso; lo que llegue después se descarta.
func (n *Notifier) Close() {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()
	n.wg.Wait()
}
