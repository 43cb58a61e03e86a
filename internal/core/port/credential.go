package port

// CredentialProvider supplies the Graph API access token. Resolve fails
// with domain.ErrMissingCredential when no token was configured. The first
// successful result is cached for the lifetime of the provider.
type CredentialProvider interface {
	Resolve() (string, error)
}
