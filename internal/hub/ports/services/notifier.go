package services

import "context"

// Mailer dispatches the welcome email to a newly registered user.
type Mailer interface {
	SendWelcome(ctx context.Context, email, firstName string) error
}

// Messenger dispatches the welcome chat message to a newly registered user.
type Messenger interface {
	SendWelcome(ctx context.Context, phone string) error
}
