package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-molecula741/quist/internal/app/auth"
	"github.com/m-molecula741/quist/internal/app/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := GetUserFromContext(r.Context())
		w.Write([]byte(user))
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		credential *auth.Credential
		wantStatus int
		wantBody   string
	}{
		{
			name:       "без заголовка",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Requires authentication"}`,
		},
		{
			name:       "любые учетные данные",
			credential: &auth.Credential{Username: "username", Token: "token"},
			wantStatus: http.StatusOK,
			wantBody:   "username",
		},
		{
			name:       "совпадающие учетные данные",
			configured: "username:token",
			credential: &auth.Credential{Username: "username", Token: "token"},
			wantStatus: http.StatusOK,
			wantBody:   "username",
		},
		{
			name:       "неверный токен",
			configured: "username:token",
			credential: &auth.Credential{Username: "username", Token: "other"},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Requires authentication"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, err := NewAuthMiddleware(tt.configured)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/gists", nil)
			if tt.credential != nil {
				tt.credential.Apply(req)
			}
			rec := httptest.NewRecorder()

			mw.Middleware(userEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestNewAuthMiddleware_InvalidCredential(t *testing.T) {
	_, err := NewAuthMiddleware("no-colon")
	assert.ErrorIs(t, err, auth.ErrUnsupportedAuth)
}

func TestGzipMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		status         int
		contentType    string
		body           string
		wantGzip       bool
	}{
		{
			name:           "json сжимается",
			acceptEncoding: "gzip",
			status:         http.StatusCreated,
			contentType:    "application/json",
			body:           `{"id":"abc"}`,
			wantGzip:       true,
		},
		{
			name:        "клиент не поддерживает gzip",
			status:      http.StatusOK,
			contentType: "application/json",
			body:        `{"id":"abc"}`,
		},
		{
			name:           "204 без тела",
			acceptEncoding: "gzip",
			status:         http.StatusNoContent,
		},
		{
			name:           "бинарный ответ",
			acceptEncoding: "gzip",
			status:         http.StatusOK,
			contentType:    "application/octet-stream",
			body:           "raw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := GzipMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			}))

			req := httptest.NewRequest(http.MethodGet, "/gists/abc", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if !tt.wantGzip {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, rec.Body.String())
				return
			}

			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			gz, err := gzip.NewReader(rec.Body)
			require.NoError(t, err)
			defer gz.Close()
			body, err := io.ReadAll(gz)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestGzipMiddleware_CompressedRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(`{"files":{}}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	var got string
	handler := GzipMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = string(raw)
	}))

	req := httptest.NewRequest(http.MethodPost, "/gists", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"files":{}}`, got)

	req = httptest.NewRequest(http.MethodPost, "/gists", bytes.NewBufferString("plain"))
	req.Header.Set("Content-Encoding", "gzip")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(&buf, "info")
	t.Cleanup(func() { logger.Init(io.Discard, "info") })

	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/gists/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	out := buf.String()
	assert.Contains(t, out, "HTTP request processed")
	assert.Contains(t, out, "/gists/abc")
	assert.Contains(t, out, "404")
	assert.Contains(t, out, "WRN")
}
