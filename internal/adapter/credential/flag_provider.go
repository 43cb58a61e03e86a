package credential

import (
	"fmt"
	"sync"

	"github.com/spf13/pflag"

	"meta-ads-mcp/internal/core/domain"
)

// FlagName is the startup flag that carries the Graph API access token.
const FlagName = "fb-token"

// FlagProvider resolves the access token from a parsed flag set. The
// first successful resolution is cached; the flag set is not consulted
// again afterwards.
type FlagProvider struct {
	flags *pflag.FlagSet

	mu    sync.Mutex
	token string
}

// RegisterFlag declares the token flag on flags.
func RegisterFlag(flags *pflag.FlagSet) {
	flags.String(FlagName, "", "Graph API access token")
}

// NewFlagProvider returns a provider reading the token flag of flags.
// RegisterFlag must have been called on flags.
func NewFlagProvider(flags *pflag.FlagSet) *FlagProvider {
	return &FlagProvider{flags: flags}
}

// Resolve returns the access token. It fails with
// domain.ErrMissingCredential when the flag was not given or has an empty
// value. Failures are not cached.
func (p *FlagProvider) Resolve() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" {
		return p.token, nil
	}

	f := p.flags.Lookup(FlagName)
	if f == nil || !f.Changed {
		return "", fmt.Errorf("%w: Facebook token must be provided via '--%s' command line argument", domain.ErrMissingCredential, FlagName)
	}
	token := f.Value.String()
	if token == "" {
		return "", fmt.Errorf("%w: --%s argument provided but no token value followed it", domain.ErrMissingCredential, FlagName)
	}

	p.token = token
	return token, nil
}
