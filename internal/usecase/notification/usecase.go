package notification

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	domainUser "lendhub-backend/internal/domain/user"
	"lendhub-backend/internal/logger"
	"lendhub-backend/pkg/apperr"
)

type Type string

const (
	TypeLoanStatusUpdate Type = "loan_status_update"
	TypeDocumentRequest  Type = "document_request"
	TypeLoanApproval     Type = "loan_approval"
	TypeOfferLetterSent  Type = "offer_letter_sent"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

var supportedTypes = map[Type]bool{
	TypeLoanStatusUpdate: true,
	TypeDocumentRequest:  true,
	TypeLoanApproval:     true,
	TypeOfferLetterSent:  true,
}

var supportedChannels = map[Channel]bool{
	ChannelEmail: true,
	ChannelSMS:   true,
	ChannelPush:  true,
}

// Mailer is the outbound email transport.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) (messageID string, err error)
}

type Usecase struct {
	users  domainUser.Repository
	mailer Mailer
}

func NewUsecase(users domainUser.Repository, mailer Mailer) *Usecase {
	return &Usecase{users: users, mailer: mailer}
}

type SendInput struct {
	Type              Type
	Channel           Channel
	RecipientID       string
	LoanApplicationID string
	Data              map[string]any
}

// Result reports the outcome of one channel attempt. Transport failures
// land in Error, not in the returned error: only invalid input (unsupported
// type/channel, missing recipient) is an error.
type Result struct {
	Success   bool    `json:"success"`
	MessageID string  `json:"message_id,omitempty"`
	Error     string  `json:"error,omitempty"`
	Channel   Channel `json:"channel"`
}

func (u *Usecase) SendNotification(ctx context.Context, in SendInput) (*Result, error) {
	if !supportedTypes[in.Type] {
		return nil, apperr.BadRequest("UNSUPPORTED_NOTIFICATION_TYPE", "unsupported notification type: "+string(in.Type))
	}
	if !supportedChannels[in.Channel] {
		return nil, apperr.BadRequest("UNSUPPORTED_CHANNEL", "unsupported channel: "+string(in.Channel))
	}

	recipient, err := u.users.GetByUserID(ctx, in.RecipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrNotFound
		}
		return nil, apperr.Wrap(err, "SEND_NOTIFICATION_ERROR")
	}

	switch in.Channel {
	case ChannelEmail:
		return u.sendEmail(ctx, in, recipient)
	default:
		// sms/push are acknowledged placeholders
		logger.CtxInfo(ctx, "notification channel not implemented, acknowledged",
			slog.String("channel", string(in.Channel)),
			slog.String("recipient_id", in.RecipientID))
		return &Result{Success: true, Channel: in.Channel}, nil
	}
}

func (u *Usecase) sendEmail(ctx context.Context, in SendInput, recipient *domainUser.User) (*Result, error) {
	data := map[string]any{"RecipientName": recipient.DisplayName()}
	for k, v := range in.Data {
		data[k] = v
	}
	subject, html, err := render(in.Type, data)
	if err != nil {
		return nil, apperr.Wrap(err, "RENDER_TEMPLATE_ERROR")
	}

	msgID, err := u.mailer.Send(ctx, recipient.Email, subject, html)
	if err != nil {
		logger.CtxError(ctx, "email send failed", err,
			slog.String("recipient_id", in.RecipientID),
			slog.String("type", string(in.Type)))
		return &Result{Success: false, Error: err.Error(), Channel: ChannelEmail}, nil
	}
	return &Result{Success: true, MessageID: msgID, Channel: ChannelEmail}, nil
}

// fanOut attempts every channel independently; a failure on one channel
// never aborts the others.
func (u *Usecase) fanOut(ctx context.Context, in SendInput, channels []Channel) []Result {
	if len(channels) == 0 {
		channels = []Channel{ChannelEmail}
	}
	out := make([]Result, 0, len(channels))
	for _, ch := range channels {
		in.Channel = ch
		res, err := u.SendNotification(ctx, in)
		if err != nil {
			out = append(out, Result{Success: false, Error: err.Error(), Channel: ch})
			continue
		}
		out = append(out, *res)
	}
	return out
}

func (u *Usecase) SendStatusUpdateNotification(ctx context.Context, recipientID, applicationID, previousStatus, newStatus, reason string, channels ...Channel) []Result {
	return u.fanOut(ctx, SendInput{
		Type:              TypeLoanStatusUpdate,
		RecipientID:       recipientID,
		LoanApplicationID: applicationID,
		Data: map[string]any{
			"ApplicationID":  applicationID,
			"PreviousStatus": previousStatus,
			"NewStatus":      newStatus,
			"Reason":         reason,
		},
	}, channels)
}

func (u *Usecase) SendDocumentRequestNotification(ctx context.Context, recipientID, applicationID, documentType, message string, channels ...Channel) []Result {
	return u.fanOut(ctx, SendInput{
		Type:              TypeDocumentRequest,
		RecipientID:       recipientID,
		LoanApplicationID: applicationID,
		Data: map[string]any{
			"DocumentType": documentType,
			"Message":      message,
		},
	}, channels)
}

func (u *Usecase) SendLoanApprovalNotification(ctx context.Context, recipientID, applicationID string, channels ...Channel) []Result {
	return u.fanOut(ctx, SendInput{
		Type:              TypeLoanApproval,
		RecipientID:       recipientID,
		LoanApplicationID: applicationID,
		Data:              map[string]any{"ApplicationID": applicationID},
	}, channels)
}

func (u *Usecase) SendOfferLetterSentNotification(ctx context.Context, recipientID, applicationID, offerNumber string, channels ...Channel) []Result {
	return u.fanOut(ctx, SendInput{
		Type:              TypeOfferLetterSent,
		RecipientID:       recipientID,
		LoanApplicationID: applicationID,
		Data:              map[string]any{"OfferNumber": offerNumber},
	}, channels)
}

// SendStatusUpdate satisfies the status engine's Notifier port: a failed
// email is reported as an error for the engine to log and swallow.
func (u *Usecase) SendStatusUpdate(ctx context.Context, recipientID, applicationID, previousStatus, newStatus, reason string) error {
	results := u.SendStatusUpdateNotification(ctx, recipientID, applicationID, previousStatus, newStatus, reason, ChannelEmail)
	return firstFailure(results)
}

// SendDocumentRequest satisfies the document usecase's Notifier port.
func (u *Usecase) SendDocumentRequest(ctx context.Context, recipientID, applicationID, documentType, message string) error {
	results := u.SendDocumentRequestNotification(ctx, recipientID, applicationID, documentType, message, ChannelEmail)
	return firstFailure(results)
}

// SendOfferSent satisfies the offer lifecycle's Notifier port.
func (u *Usecase) SendOfferSent(ctx context.Context, recipientID, applicationID, offerNumber string) error {
	results := u.SendOfferLetterSentNotification(ctx, recipientID, applicationID, offerNumber, ChannelEmail)
	return firstFailure(results)
}

func firstFailure(results []Result) error {
	for _, r := range results {
		if !r.Success {
			return errors.New(r.Error)
		}
	}
	return nil
}
