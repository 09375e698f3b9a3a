package mail

import (
	"context"
	"errors"
	"sync"
	"time"

	"rxquote/internal/config"
	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"
	"rxquote/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

var (
	ErrOutboxFull   = errors.New("mail outbox is full")
	ErrOutboxClosed = errors.New("mail outbox is closed")
)

// Outbox accepts messages immediately and delivers them from a background worker, retrying
// with exponential backoff behind a circuit breaker. A message that exhausts its attempts
// is logged and dropped.
type Outbox struct {
	transport   interfaces.IMailer
	queue       chan entities.MailMessage
	breaker     *gobreaker.CircuitBreaker[struct{}]
	maxAttempts int
	initial     time.Duration
	max         time.Duration
	log         *zap.Logger
	metrics     *metrics.Collector

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

var _ interfaces.IMailer = (*Outbox)(nil)

func NewOutbox(transport interfaces.IMailer, cfg config.MailConfig, log *zap.Logger, m *metrics.Collector) *Outbox {
	if log == nil {
		log = zap.NewNop()
	}
	size := cfg.OutboxSize
	if size <= 0 {
		size = 256
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	o := &Outbox{
		transport:   transport,
		queue:       make(chan entities.MailMessage, size),
		maxAttempts: attempts,
		initial:     cfg.InitialBackoff,
		max:         cfg.MaxBackoff,
		log:         log,
		metrics:     m,
		ctx:         ctx,
		cancel:      cancel,
	}
	o.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("mail circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return o
}

// Start launches the delivery worker.
func (o *Outbox) Start() {
	o.wg.Add(1)
	go o.run()
}

// Send enqueues msg without blocking. The returned error only reports that the message was
// not accepted; delivery failures happen later and are logged.
func (o *Outbox) Send(_ context.Context, msg entities.MailMessage) error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.closed {
		return ErrOutboxClosed
	}
	select {
	case o.queue <- msg:
		o.gauge(1)
		return nil
	default:
		if o.metrics != nil {
			o.metrics.OutboxDropped.Inc()
		}
		return ErrOutboxFull
	}
}

// Shutdown stops accepting messages and waits for the queue to drain. When ctx expires
// first, in-flight retries are abandoned.
func (o *Outbox) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	if !o.closed {
		o.closed = true
		close(o.queue)
	}
	o.mu.Unlock()

	done := make(chan struct{})
	go func() {
		o.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		o.cancel()
		return nil
	case <-ctx.Done():
		o.cancel()
		o.log.Warn("mail outbox shutdown timed out", zap.Int("pending", len(o.queue)))
		return ctx.Err()
	}
}

func (o *Outbox) run() {
	defer o.wg.Done()
	for msg := range o.queue {
		o.gauge(-1)
		o.deliver(msg)
	}
}

func (o *Outbox) deliver(msg entities.MailMessage) {
	attempt := 0
	op := func() error {
		attempt++
		_, err := o.breaker.Execute(func() (struct{}, error) {
			return struct{}{}, o.transport.Send(o.ctx, msg)
		})
		return err
	}
	notify := func(err error, wait time.Duration) {
		o.log.Warn("mail delivery failed, retrying",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(op, o.policy(), notify); err != nil {
		o.count("failed")
		o.log.Error("mail delivery abandoned",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Int("attempts", attempt),
			zap.Error(err),
		)
		return
	}
	o.count("delivered")
}

func (o *Outbox) policy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if o.initial > 0 {
		b.InitialInterval = o.initial
	}
	if o.max > 0 {
		b.MaxInterval = o.max
	}
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(o.maxAttempts-1)), o.ctx)
}

func (o *Outbox) gauge(delta float64) {
	if o.metrics != nil {
		o.metrics.OutboxDepth.Add(delta)
	}
}

func (o *Outbox) count(outcome string) {
	if o.metrics != nil {
		o.metrics.NotificationsTotal.WithLabelValues("outbox", outcome).Inc()
	}
}
