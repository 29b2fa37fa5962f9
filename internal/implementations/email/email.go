package email

import (
	"context"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const CHARSET = "UTF-8"

type sesClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESSender struct {
	ses sesClient
}

func NewSESSender(awsConfig aws.Config) *SESSender {
	return &SESSender{ses: ses.NewFromConfig(awsConfig)}
}

func newSESSenderWithClient(client sesClient) *SESSender {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &SESSender{ses: client}
}

// Send delivers an HTML email. The sender address must be verified with Amazon SES.
func (s *SESSender) Send(ctx context.Context, envelope mail.Envelope) error {
	if envelope.To == "" {
		return mail.ErrEmptyRecipient
	}
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: aws.String(envelope.From),
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{envelope.To},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Charset: aws.String(CHARSET),
					Data:    aws.String(envelope.Subject),
				},
				Body: &types.Body{
					Html: &types.Content{
						Charset: aws.String(CHARSET),
						Data:    aws.String(envelope.HTMLBody),
					},
				},
			},
		},
	)
	return err
}
