package configs

import "strings"

// Graph configures access to the Graph API. BaseURL and Version are joined
// into the root of every request path.
type Graph struct {
	// BaseURL is the Graph API host. Defaults to https://graph.facebook.com.
	BaseURL string `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	// Version is the API version segment, e.g. v22.0.
	Version string `env:"VERSION" envDefault:"v22.0"`
	// VerifyToken makes main look up the token owner once on startup.
	VerifyToken bool `env:"VERIFY_TOKEN" envDefault:"false"`
}

// VersionedURL returns BaseURL and Version joined by a single slash.
func (c Graph) VersionedURL() string {
	base := strings.TrimRight(c.BaseURL, "/")
	version := strings.Trim(c.Version, "/")
	if version == "" {
		return base
	}
	return base + "/" + version
}
