package auth

import "context"

// EpicAuthClient implements the SMART Backend Services client-credentials
// flow against Epic's OAuth2 token endpoint.
type EpicAuthClient interface {
	// GenerateClientAssertion builds and signs the RS384 JWT assertion.
	GenerateClientAssertion(ctx context.Context) (string, error)
	// GetBearerToken exchanges the assertion for a bearer token. A failed
	// exchange yields an empty token with a nil error; the subsequent
	// resource call is expected to fail authorization instead.
	GetBearerToken(ctx context.Context, assertion string) (string, error)
	// AuthorizeApplication composes both steps. No caching: every call pays
	// the full round trip.
	AuthorizeApplication(ctx context.Context) (string, error)
}
