package users

import "context"

type UserRepository interface {
	// UpdateEpicIdentifierByEmail sets epic_identifier on the user document
	// matching the email. Update-only: a missing document is a no-op, not an
	// error.
	UpdateEpicIdentifierByEmail(ctx context.Context, email, epicIdentifier string) error
}
