// Package event defines messages exchanged between modules and external consumers.
package event

import "time"

// EmailVerifiedDestination is the topic/subject carrying verification events.
const EmailVerifiedDestination = "email_verified"

// EmailVerifiedMessage is emitted after an address passes code verification.
type EmailVerifiedMessage struct {
	EventID    int64     `json:"event_id"`
	Email      string    `json:"email"`
	VerifiedAt time.Time `json:"verified_at"`
}
