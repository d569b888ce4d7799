// Package entity holds the contact domain model.
package entity

// Message is a relayed contact-form message from a verified sender.
type Message struct {
	// To is the recipient address.
	To string
	// UserName is the sanitized display name of the person writing.
	UserName string
	// SentBy is the verified sender address; replies go here.
	SentBy string
	// Body is the sanitized message body.
	Body string
}
