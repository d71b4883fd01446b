package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	domainUser "lendhub-backend/internal/domain/user"
	"lendhub-backend/internal/testutil/usermock"
	"lendhub-backend/pkg/apperr"
)

var recipientID = strings.Repeat("c", 32)

type fakeMailer struct {
	sent []struct{ to, subject, html string }
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, struct{ to, subject, html string }{to, subject, html})
	return "msg-1", nil
}

func recipientRepo() *usermock.Repo {
	return &usermock.Repo{
		GetByUserIDFn: func(ctx context.Context, userID string) (*domainUser.User, error) {
			if userID != recipientID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domainUser.User{UserID: recipientID, Email: "budi@lendhub.local", FirstName: "Budi"}, nil
		},
	}
}

func TestSendNotification_EmailHappyPath(t *testing.T) {
	mailer := &fakeMailer{}
	uc := NewUsecase(recipientRepo(), mailer)

	res, err := uc.SendNotification(context.Background(), SendInput{
		Type:        TypeLoanStatusUpdate,
		Channel:     ChannelEmail,
		RecipientID: recipientID,
		Data:        map[string]any{"PreviousStatus": "draft", "NewStatus": "submitted"},
	})
	if err != nil {
		t.Fatalf("SendNotification: %v", err)
	}
	if !res.Success || res.MessageID != "msg-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].to != "budi@lendhub.local" {
		t.Fatalf("mail not delivered: %+v", mailer.sent)
	}
	if !strings.Contains(mailer.sent[0].html, "submitted") {
		t.Fatalf("status missing from body")
	}
	if !strings.Contains(mailer.sent[0].html, "Budi") {
		t.Fatalf("recipient name missing from body")
	}
}

func TestSendNotification_UnsupportedType(t *testing.T) {
	uc := NewUsecase(recipientRepo(), &fakeMailer{})

	_, err := uc.SendNotification(context.Background(), SendInput{
		Type:        "carrier_pigeon",
		Channel:     ChannelEmail,
		RecipientID: recipientID,
	})
	if e, ok := apperr.From(err); !ok || e.Code != "UNSUPPORTED_NOTIFICATION_TYPE" {
		t.Fatalf("want UNSUPPORTED_NOTIFICATION_TYPE, got %v", err)
	}
}

func TestSendNotification_UnsupportedChannel(t *testing.T) {
	uc := NewUsecase(recipientRepo(), &fakeMailer{})

	_, err := uc.SendNotification(context.Background(), SendInput{
		Type:        TypeLoanStatusUpdate,
		Channel:     "fax",
		RecipientID: recipientID,
	})
	if e, ok := apperr.From(err); !ok || e.Code != "UNSUPPORTED_CHANNEL" {
		t.Fatalf("want UNSUPPORTED_CHANNEL, got %v", err)
	}
}

func TestSendNotification_UnknownRecipient(t *testing.T) {
	uc := NewUsecase(recipientRepo(), &fakeMailer{})

	_, err := uc.SendNotification(context.Background(), SendInput{
		Type:        TypeLoanStatusUpdate,
		Channel:     ChannelEmail,
		RecipientID: strings.Repeat("9", 32),
	})
	if !errors.Is(err, domainUser.ErrNotFound) {
		t.Fatalf("want recipient not found, got %v", err)
	}
}

func TestSendNotification_TransportFailureIsResultNotError(t *testing.T) {
	uc := NewUsecase(recipientRepo(), &fakeMailer{err: errors.New("smtp 421")})

	res, err := uc.SendNotification(context.Background(), SendInput{
		Type:        TypeLoanStatusUpdate,
		Channel:     ChannelEmail,
		RecipientID: recipientID,
	})
	if err != nil {
		t.Fatalf("transport failure must not be an error: %v", err)
	}
	if res.Success || res.Error == "" {
		t.Fatalf("failure must land in the result: %+v", res)
	}
}

func TestSendNotification_SMSAcknowledgedPlaceholder(t *testing.T) {
	uc := NewUsecase(recipientRepo(), &fakeMailer{})

	res, err := uc.SendNotification(context.Background(), SendInput{
		Type:        TypeLoanStatusUpdate,
		Channel:     ChannelSMS,
		RecipientID: recipientID,
	})
	if err != nil {
		t.Fatalf("SendNotification: %v", err)
	}
	if !res.Success || res.Channel != ChannelSMS {
		t.Fatalf("sms must acknowledge: %+v", res)
	}
}

func TestFanOut_OneChannelFailureDoesNotAbortOthers(t *testing.T) {
	uc := NewUsecase(recipientRepo(), &fakeMailer{err: errors.New("smtp down")})

	results := uc.SendStatusUpdateNotification(context.Background(), recipientID, strings.Repeat("a", 32),
		"draft", "submitted", "", ChannelEmail, ChannelSMS)
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	if results[0].Success {
		t.Fatalf("email should have failed")
	}
	if !results[1].Success {
		t.Fatalf("sms should still succeed")
	}
}

func TestSendStatusUpdate_PortReportsFirstFailure(t *testing.T) {
	uc := NewUsecase(recipientRepo(), &fakeMailer{err: errors.New("smtp down")})

	err := uc.SendStatusUpdate(context.Background(), recipientID, strings.Repeat("a", 32), "draft", "submitted", "")
	if err == nil {
		t.Fatalf("port must surface delivery failure")
	}
}

func TestSendOfferSent_RendersOfferNumber(t *testing.T) {
	mailer := &fakeMailer{}
	uc := NewUsecase(recipientRepo(), mailer)

	if err := uc.SendOfferSent(context.Background(), recipientID, strings.Repeat("a", 32), "OFR-20260824-000042"); err != nil {
		t.Fatalf("SendOfferSent: %v", err)
	}
	if len(mailer.sent) != 1 || !strings.Contains(mailer.sent[0].html, "OFR-20260824-000042") {
		t.Fatalf("offer number missing from mail body")
	}
}
