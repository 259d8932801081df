package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-molecula741/quist/internal/app/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    auth.Credential
		wantErr bool
	}{
		{
			name: "user and token",
			raw:  "user:token",
			want: auth.Credential{Username: "user", Token: "token"},
		},
		{
			name:    "no separator",
			raw:     "no-colon",
			wantErr: true,
		},
		{
			name:    "too many separators",
			raw:     "a:b:c",
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "empty username",
			raw:     ":token",
			wantErr: true,
		},
		{
			name:    "empty token",
			raw:     "user:",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Parse(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrUnsupportedAuth)
				assert.Equal(t, auth.Credential{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredential_Apply(t *testing.T) {
	cred := auth.Credential{Username: "username", Token: "token"}
	req := httptest.NewRequest(http.MethodPost, "/gists", nil)

	cred.Apply(req)

	assert.Equal(t, "Basic dXNlcm5hbWU6dG9rZW4=", req.Header.Get("Authorization"))

	user, token, ok := req.BasicAuth()
	require.True(t, ok)
	assert.True(t, cred.Matches(user, token))
	assert.False(t, cred.Matches(user, "other"))
}

func TestCredential_StringHidesToken(t *testing.T) {
	cred := auth.Credential{Username: "octocat", Token: "ghp_secret"}

	assert.Equal(t, "octocat:***", cred.String())
	assert.NotContains(t, cred.String(), "ghp_secret")
}
