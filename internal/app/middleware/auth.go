package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/m-molecula741/quist/internal/app/auth"
)

const unauthorizedMessage = "Requires authentication"

// AuthMiddleware middleware для basic-аутентификации запросов к эмулятору
type AuthMiddleware struct {
	credential *auth.Credential
}

// NewAuthMiddleware создает middleware. Пустая строка означает, что принимаются
// любые непустые учетные данные, иначе только пара user:token из basicAuth.
func NewAuthMiddleware(basicAuth string) (*AuthMiddleware, error) {
	if basicAuth == "" {
		return &AuthMiddleware{}, nil
	}

	cred, err := auth.Parse(basicAuth)
	if err != nil {
		return nil, err
	}

	return &AuthMiddleware{credential: &cred}, nil
}

// Middleware проверяет заголовок Authorization и кладет логин в контекст запроса
func (a *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, token, ok := r.BasicAuth()
		if !ok || username == "" || token == "" {
			writeUnauthorized(w)
			return
		}
		if a.credential != nil && !a.credential.Matches(username, token) {
			writeUnauthorized(w)
			return
		}

		ctx := SetUserToContext(r.Context(), username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": unauthorizedMessage})
}
