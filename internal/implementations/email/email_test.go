package email

import (
	"context"
	"errors"
	"testing"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	Inputs []*ses.SendEmailInput
	Err    error
}

func (c *stubClient) SendEmail(
	ctx context.Context,
	params *ses.SendEmailInput,
	optFns ...func(*ses.Options),
) (*ses.SendEmailOutput, error) {
	c.Inputs = append(c.Inputs, params)
	if c.Err != nil {
		return nil, c.Err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("message-id")}, nil
}

func TestSend(t *testing.T) {
	client := &stubClient{}
	sender := newSESSenderWithClient(client)

	err := sender.Send(context.Background(), mail.Envelope{
		Subject:  "Reset your password",
		From:     "no-reply@ewallet.test",
		To:       "ana@example.com",
		HTMLBody: "<p>hi</p>",
	})

	require.Nil(t, err)
	require.Len(t, client.Inputs, 1)
	input := client.Inputs[0]
	require.Equal(t, "no-reply@ewallet.test", aws.ToString(input.Source))
	require.Equal(t, []string{"ana@example.com"}, input.Destination.ToAddresses)
	require.Equal(t, "Reset your password", aws.ToString(input.Message.Subject.Data))
	require.Equal(t, "<p>hi</p>", aws.ToString(input.Message.Body.Html.Data))
}

func TestSendErrorIsReturnedUnmodified(t *testing.T) {
	sesErr := errors.New("MessageRejected")
	sender := newSESSenderWithClient(&stubClient{Err: sesErr})

	err := sender.Send(context.Background(), mail.Envelope{To: "ana@example.com"})

	require.Equal(t, sesErr, err)
}

func TestSendWithoutRecipient(t *testing.T) {
	client := &stubClient{}
	sender := newSESSenderWithClient(client)

	err := sender.Send(context.Background(), mail.Envelope{})

	require.ErrorIs(t, err, mail.ErrEmptyRecipient)
	require.Empty(t, client.Inputs)
}
