package mail

import (
	"context"
	"fmt"
	"sync"
)

type FakeSender struct {
	Sent        []Envelope
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

func (s *FakeSender) Send(ctx context.Context, envelope Envelope) error {
	if s.ReturnError {
		return fmt.Errorf("could not send email to %s", envelope.To)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, envelope)
	return nil
}

func (s *FakeSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeSender) LastSent() Envelope {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
