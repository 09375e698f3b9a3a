package interfaces

import (
	"context"

	"rxquote/internal/domain/entities"
)

// IMailer hands a fully rendered message to a mail transport.
type IMailer interface {
	Send(ctx context.Context, msg entities.MailMessage) error
}

// IQuoteDocumentRenderer produces the PDF attached to the quote-created email.
type IQuoteDocumentRenderer interface {
	RenderQuote(notice entities.QuoteCreatedNotice) ([]byte, error)
}

// IEmailRenderer fills Subject, Text and HTML for each notification kind.
type IEmailRenderer interface {
	QuoteCreated(notice entities.QuoteCreatedNotice) (entities.MailMessage, error)
	QuoteDecided(notice entities.QuoteDecidedNotice) (entities.MailMessage, error)
}

// INotifier is the side-effect boundary of the quote lifecycle.
type INotifier interface {
	NotifyQuoteCreated(ctx context.Context, notice entities.QuoteCreatedNotice) error
	NotifyQuoteDecided(ctx context.Context, notice entities.QuoteDecidedNotice) error
}
