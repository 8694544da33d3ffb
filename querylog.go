package legalserver

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type RequestID struct {
	uuid.UUID
}

func NewRequestID() RequestID {
	return RequestID{UUID: uuid.Must(uuid.NewV4())}
}

// LogRecord is one append-only query log entry. Records are written
// best-effort after the response has been sent and are never read back.
type LogRecord struct {
	RequestID      RequestID
	Time           time.Time
	IP             string
	Status         int
	QuestionLength int
	Mode           Mode
	Error          string
}
