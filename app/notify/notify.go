// Package notify provides toast notifications. Toasts are kept in a short in-memory list for
// clients and optionally delivered to external destinations (webhooks, email) in background.
package notify

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/go-pkgz/syncs"
)

// Level of a toast
type Level string

// toast levels
const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is a short user-facing message
type Toast struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Params configure Service
type Params struct {
	Destinations []string      // like https://example.com/hook or mailto:to@example.com?from=me@example.com
	Timeout      time.Duration // per-send timeout, default 10s
	Keep         int           // number of recent toasts kept, default 20
	QueueSize    int           // delivery queue size, default 100
	Retries      int           // send attempts per destination, default 1
	Concurrency  int           // parallel sends, default 4
}

// SendersParams configure notifiers for destination schemas
type SendersParams struct {
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPTLS        bool
	SMTPTimeout    time.Duration
	WebhookTimeout time.Duration
	WebhookHeaders []string // in "Name:value" form
}

// Service collects toasts and delivers them. Success and Error never block.
type Service struct {
	Params
	senders []notify.Notifier
	queue   chan Toast

	mu     sync.Mutex
	recent []Toast // newest last
}

// MakeSenders creates notifiers for webhook and, if smtp host set, email destinations
func MakeSenders(p SendersParams) []notify.Notifier {
	res := []notify.Notifier{notify.NewWebhook(notify.WebhookParams{Timeout: p.WebhookTimeout, Headers: p.WebhookHeaders})}
	if p.SMTPHost != "" {
		res = append(res, notify.NewEmail(notify.SMTPParams{
			Host:        p.SMTPHost,
			Port:        p.SMTPPort,
			TLS:         p.SMTPTLS,
			ContentType: "text/plain",
			Charset:     "UTF-8",
			Username:    p.SMTPUsername,
			Password:    p.SMTPPassword,
			TimeOut:     p.SMTPTimeout,
		}))
	}
	return res
}

// NewService makes notification service. Toasts are delivered by Run, only if destinations set.
func NewService(p Params, senders ...notify.Notifier) *Service {
	if p.Timeout <= 0 {
		p.Timeout = 10 * time.Second
	}
	if p.Keep <= 0 {
		p.Keep = 20
	}
	if p.QueueSize <= 0 {
		p.QueueSize = 100
	}
	if p.Retries <= 0 {
		p.Retries = 1
	}
	if p.Concurrency <= 0 {
		p.Concurrency = 4
	}
	return &Service{Params: p, senders: senders, queue: make(chan Toast, p.QueueSize)}
}

// Success records success toast
func (s *Service) Success(msg string) { s.add(LevelSuccess, msg) }

// Error records error toast
func (s *Service) Error(msg string) { s.add(LevelError, msg) }

// Recent returns kept toasts, newest first
func (s *Service) Recent() []Toast {
	s.mu.Lock()
	res := slices.Clone(s.recent)
	s.mu.Unlock()
	slices.Reverse(res)
	if res == nil {
		res = []Toast{}
	}
	return res
}

// Run delivers queued toasts to destinations until ctx canceled. Blocking.
func (s *Service) Run(ctx context.Context) {
	log.Printf("[INFO] notifications started, destinations: %d", len(s.Destinations))
	for {
		select {
		case <-ctx.Done():
			log.Printf("[DEBUG] notifications terminated, %v", ctx.Err())
			return
		case t := <-s.queue:
			if err := s.deliver(ctx, t); err != nil {
				log.Printf("[WARN] failed to deliver notification %q: %v", t.Message, err)
			}
		}
	}
}

func (s *Service) add(level Level, msg string) {
	t := Toast{Level: level, Message: msg, Time: time.Now()}

	s.mu.Lock()
	s.recent = append(s.recent, t)
	if len(s.recent) > s.Keep {
		s.recent = slices.Delete(s.recent, 0, len(s.recent)-s.Keep)
	}
	s.mu.Unlock()

	if len(s.Destinations) == 0 {
		return
	}
	select {
	case s.queue <- t:
	default:
		log.Printf("[WARN] notification queue full, dropping %q", msg)
	}
}

// deliver sends toast text to all destinations concurrently, each with its own timeout and retries
func (s *Service) deliver(ctx context.Context, t Toast) error {
	text := fmt.Sprintf("[%s] %s", t.Level, t.Message)
	rptr := repeater.New(&strategy.Backoff{Repeats: s.Retries, Duration: 500 * time.Millisecond, Factor: 2, Jitter: true})

	gr := syncs.NewErrSizedGroup(s.Concurrency)
	for _, dest := range s.Destinations {
		gr.Go(func() error {
			return rptr.Do(ctx, func() error {
				sendCtx, cancel := context.WithTimeout(ctx, s.Timeout)
				defer cancel()
				if err := notify.Send(sendCtx, s.senders, dest, text); err != nil {
					return fmt.Errorf("send to %s: %w", redact(dest), err)
				}
				return nil
			})
		})
	}
	return gr.Wait()
}

// redact drops query part of destination, it may carry credentials
func redact(dest string) string {
	res, _, _ := strings.Cut(dest, "?")
	return res
}
