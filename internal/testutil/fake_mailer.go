package testutil

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// SentMail records one delivery attempt made through the fake.
type SentMail struct {
	To     string
	CodeID uuid.UUID
	Code   string
}

// FakeMailer implements mailer.Mailer for tests. Set Fail to exercise
// the registration rollback path.
type FakeMailer struct {
	mu   sync.Mutex
	Fail bool
	Sent []SentMail
}

func NewFakeMailer() *FakeMailer {
	return &FakeMailer{}
}

func (f *FakeMailer) SendVerification(to string, codeID uuid.UUID, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Fail {
		return errors.New("smtp connection refused")
	}

	f.Sent = append(f.Sent, SentMail{To: to, CodeID: codeID, Code: code})
	return nil
}

// LastSent returns the most recent delivery, or nil when none happened.
func (f *FakeMailer) LastSent() *SentMail {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Sent) == 0 {
		return nil
	}
	return &f.Sent[len(f.Sent)-1]
}
