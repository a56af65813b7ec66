// Package auth supplies the bearer token used to call the forge API.
package auth

import (
	"net/http"
	"os"
)

// DefaultTokenEnv is the environment variable read by default for the GitHub token.
const DefaultTokenEnv = "GITHUB_TOKEN"

// TokenProvider supplies a bearer token. An empty token means none is available.
type TokenProvider interface {
	Token() string
}

// EnvProvider reads the token from an environment variable on every call.
type EnvProvider struct {
	Variable string
}

// NewEnvProvider creates a provider reading variable, or DefaultTokenEnv when empty.
func NewEnvProvider(variable string) *EnvProvider {
	if variable == "" {
		variable = DefaultTokenEnv
	}
	return &EnvProvider{Variable: variable}
}

// Token returns the variable's value.
func (p *EnvProvider) Token() string {
	return os.Getenv(p.Variable)
}

// StaticProvider always returns the same token.
type StaticProvider string

// Token returns the static token.
func (p StaticProvider) Token() string {
	return string(p)
}

// Transport adds the provider's token to every outgoing request.
type Transport struct {
	Provider TokenProvider
	Base     http.RoundTripper
}

// RoundTrip sets the Authorization header when a token is available.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	token := ""
	if t.Provider != nil {
		token = t.Provider.Token()
	}
	if token == "" {
		return base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+token)
	return base.RoundTrip(authed)
}
