package usecase

import (
	"context"
	"strings"

	"rxquote/internal/domain/entities"
	"rxquote/internal/usecase/interfaces"
	"rxquote/pkg/metrics"

	"go.uber.org/zap"
)

const (
	kindQuoteCreated = "quote_created"
	kindQuoteDecided = "quote_decided"
)

// NotificationDispatcher renders and sends the emails that follow quote transitions.
// Every failure is returned as a *NotificationDeliveryError.
type NotificationDispatcher struct {
	mailer   interfaces.IMailer
	document interfaces.IQuoteDocumentRenderer
	emails   interfaces.IEmailRenderer
	log      *zap.Logger
	metrics  *metrics.Collector
}

var _ interfaces.INotifier = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(
	mailer interfaces.IMailer,
	document interfaces.IQuoteDocumentRenderer,
	emails interfaces.IEmailRenderer,
	log *zap.Logger,
	m *metrics.Collector,
) *NotificationDispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationDispatcher{mailer: mailer, document: document, emails: emails, log: log, metrics: m}
}

// NotifyQuoteCreated emails the patient a summary of the new quote with the PDF attached.
func (d *NotificationDispatcher) NotifyQuoteCreated(ctx context.Context, notice entities.QuoteCreatedNotice) error {
	to := strings.TrimSpace(notice.Patient.Email)
	if to == "" {
		return d.fail(kindQuoteCreated, StageRecipient, ErrMissingRecipientEmail)
	}

	pdf, err := d.document.RenderQuote(notice)
	if err != nil {
		return d.fail(kindQuoteCreated, StageRender, err)
	}
	msg, err := d.emails.QuoteCreated(notice)
	if err != nil {
		return d.fail(kindQuoteCreated, StageRender, err)
	}
	msg.To = to
	msg.Attachments = []entities.MailAttachment{{
		Filename:    quoteFileName(notice.Quote.ID),
		ContentType: "application/pdf",
		Data:        pdf,
	}}

	if err := d.mailer.Send(ctx, msg); err != nil {
		return d.fail(kindQuoteCreated, StageTransport, err)
	}
	d.count(kindQuoteCreated, "sent")
	d.log.Info("quote notification dispatched",
		zap.String("quote_id", notice.Quote.ID),
		zap.String("prescription_id", notice.Prescription.ID),
	)
	return nil
}

// NotifyQuoteDecided emails the pharmacy the patient's decision.
func (d *NotificationDispatcher) NotifyQuoteDecided(ctx context.Context, notice entities.QuoteDecidedNotice) error {
	to := strings.TrimSpace(notice.Pharmacy.Email)
	if to == "" {
		return d.fail(kindQuoteDecided, StageRecipient, ErrMissingRecipientEmail)
	}

	msg, err := d.emails.QuoteDecided(notice)
	if err != nil {
		return d.fail(kindQuoteDecided, StageRender, err)
	}
	msg.To = to
	msg.Attachments = nil

	if err := d.mailer.Send(ctx, msg); err != nil {
		return d.fail(kindQuoteDecided, StageTransport, err)
	}
	d.count(kindQuoteDecided, "sent")
	d.log.Info("decision notification dispatched",
		zap.String("quote_id", notice.Quote.ID),
		zap.String("status", string(notice.Status)),
	)
	return nil
}

func (d *NotificationDispatcher) fail(kind, stage string, err error) error {
	d.count(kind, "failed_"+stage)
	return &NotificationDeliveryError{Stage: stage, Err: err}
}

func (d *NotificationDispatcher) count(kind, outcome string) {
	if d.metrics != nil {
		d.metrics.NotificationsTotal.WithLabelValues(kind, outcome).Inc()
	}
}

func quoteFileName(quoteID string) string {
	if quoteID == "" {
		return "quote.pdf"
	}
	return "quote-" + quoteID + ".pdf"
}
