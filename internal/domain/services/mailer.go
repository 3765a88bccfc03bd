package services

import "context"

// Mailer delivers customer notification emails.
//
// SendRegistrationEmail is fire-and-forget: callers must not fail the
// surrounding operation when it errors. SendAccountDeletionEmail is
// awaited and its failure propagates to the caller.
type Mailer interface {
	SendRegistrationEmail(ctx context.Context, email, firstName, password string) error
	SendAccountDeletionEmail(ctx context.Context, email, firstName string) error
}
