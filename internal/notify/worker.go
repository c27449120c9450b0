package notify

import (
	"context"

	"github.com/itsDrac/bidhub/pkg/logger"
)

// Mailer delivers a notification to its recipient.
type Mailer interface {
	Send(ctx context.Context, n Notification) error
}

// LogMailer writes mails to the log instead of an SMTP relay.
type LogMailer struct {
	log *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log.Named("mailer")}
}

func (m *LogMailer) Send(_ context.Context, n Notification) error {
	m.log.Infow("mail sent",
		"to", n.Email,
		"recipient_id", n.RecipientID,
		"subject", n.Subject(),
		"kind", n.Kind,
	)
	return nil
}

// Notifier is what the services use to hand off side effects.
type Notifier interface {
	Notify(ctx context.Context, ns ...Notification)
}

// Dispatcher publishes notifications and only logs publish failures.
type Dispatcher struct {
	pub Publisher
	log *logger.Logger
}

func NewDispatcher(pub Publisher, log *logger.Logger) *Dispatcher {
	return &Dispatcher{pub: pub, log: log.Named("notify")}
}

func (d *Dispatcher) Notify(ctx context.Context, ns ...Notification) {
	for _, n := range ns {
		if err := d.pub.Publish(ctx, n); err != nil {
			d.log.Errorw("enqueue failed", "id", n.ID, "kind", n.Kind, "recipient_id", n.RecipientID, "error", err)
		}
	}
}

// DirectNotifier skips the queue and sends through the mailer on the
// caller's goroutine. Delivery failures are only logged.
type DirectNotifier struct {
	mailer Mailer
	log    *logger.Logger
}

func NewDirectNotifier(m Mailer, log *logger.Logger) *DirectNotifier {
	return &DirectNotifier{mailer: m, log: log.Named("notify")}
}

func (d *DirectNotifier) Notify(ctx context.Context, ns ...Notification) {
	for _, n := range ns {
		if err := d.mailer.Send(ctx, n); err != nil {
			d.log.Errorw("delivery failed", "id", n.ID, "kind", n.Kind, "recipient_id", n.RecipientID, "error", err)
		}
	}
}

// Worker drains a queue into a mailer.
type Worker struct {
	queue  Consumer
	mailer Mailer
	log    *logger.Logger
}

func NewWorker(q Consumer, m Mailer, log *logger.Logger) *Worker {
	return &Worker{queue: q, mailer: m, log: log.Named("notify-worker")}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.log.Info("notification worker started")
	defer w.log.Info("notification worker stopped")
	return w.queue.Consume(ctx, w.handle)
}

func (w *Worker) handle(ctx context.Context, n Notification) error {
	if err := w.mailer.Send(ctx, n); err != nil {
		w.log.Errorw("delivery failed", "id", n.ID, "kind", n.Kind, "error", err)
		return err
	}
	w.log.Debugw("delivered", "id", n.ID, "kind", n.Kind)
	return nil
}
