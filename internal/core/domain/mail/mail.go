package mail

import (
	"context"
	"errors"
)

var ErrEmptyRecipient = errors.New("email recipient is not defined")

type Envelope struct {
	Subject  string
	From     string
	To       string
	HTMLBody string
}

type Sender interface {
	Send(ctx context.Context, envelope Envelope) error
}
