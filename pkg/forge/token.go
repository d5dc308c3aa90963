package forge

import "os"

// TokenProvider supplies the API token a Client authenticates with.
type TokenProvider interface {
	// Token returns the token, or ErrNoToken when none is available.
	Token() (string, error)
}

// EnvTokenProvider resolves the token from the first set environment
// variable, falling back to a configured value.
type EnvTokenProvider struct {
	Vars     []string
	Fallback string
}

// NewEnvTokenProvider creates a provider over the standard GitHub token
// variables with the given fallback, usually the configured token.
func NewEnvTokenProvider(fallback string) EnvTokenProvider {
	return EnvTokenProvider{
		Vars:     []string{"GITHUB_TOKEN", "GH_TOKEN"},
		Fallback: fallback,
	}
}

// Token implements TokenProvider.
func (p EnvTokenProvider) Token() (string, error) {
	for _, name := range p.Vars {
		if token := os.Getenv(name); token != "" {
			return token, nil
		}
	}
	if p.Fallback != "" {
		return p.Fallback, nil
	}
	return "", ErrNoToken
}

// StaticTokenProvider returns a fixed token.
type StaticTokenProvider string

// Token implements TokenProvider.
func (p StaticTokenProvider) Token() (string, error) {
	if p == "" {
		return "", ErrNoToken
	}
	return string(p), nil
}
