// Package queue defines message payloads exchanged over the message broker.
package queue

// ContactMessageEvent is published when a visitor submits the contact form.
// It carries everything downstream consumers need to log or forward the
// message without touching the primary database.
type ContactMessageEvent struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	Track      string `json:"track"` // "design" or "dev", which site the form was on
	ReceivedAt string `json:"received_at"`
}
