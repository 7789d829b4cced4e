package email

import "strings"

const confirmationPrefix = "Message sent: "

type Sender interface {
	SendMessage(subject, message, recipient string) string
}

// Service is the stand-in transport. It accepts every message and answers
// with a confirmation built from the subject alone.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) SendMessage(subject, message, recipient string) string {
	return confirmationPrefix + subject
}

// Confirmed reports whether a transport reply acknowledges delivery.
func Confirmed(confirmation string) bool {
	return strings.HasPrefix(confirmation, strings.TrimSpace(confirmationPrefix))
}
