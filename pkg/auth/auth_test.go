//go:build unit

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProvider(t *testing.T) {
	t.Setenv("ISSUES_FULL_TEST_TOKEN", "secret")

	assert.Equal(t, "secret", NewEnvProvider("ISSUES_FULL_TEST_TOKEN").Token())
	assert.Equal(t, DefaultTokenEnv, NewEnvProvider("").Variable)

	t.Setenv("ISSUES_FULL_TEST_TOKEN", "")
	assert.Empty(t, NewEnvProvider("ISSUES_FULL_TEST_TOKEN").Token())
}

func TestStaticProvider(t *testing.T) {
	assert.Equal(t, "abc", StaticProvider("abc").Token())
	assert.Empty(t, StaticProvider("").Token())
}

func TestTransport(t *testing.T) {
	tests := []struct {
		name     string
		provider TokenProvider
		expected string
	}{
		{name: "with token", provider: StaticProvider("abc"), expected: "Bearer abc"},
		{name: "empty token", provider: StaticProvider(""), expected: ""},
		{name: "no provider", provider: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Authorization")
			}))
			defer server.Close()

			client := &http.Client{Transport: &Transport{Provider: tt.provider}}
			req, err := http.NewRequest(http.MethodGet, server.URL, nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.expected, got)
			assert.Empty(t, req.Header.Get("Authorization"))
		})
	}
}
