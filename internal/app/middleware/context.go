package middleware

import "context"

type contextKey string

const userKey contextKey = "user"

// SetUserToContext добавляет логин пользователя в контекст
func SetUserToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userKey, username)
}

// GetUserFromContext извлекает логин пользователя из контекста
func GetUserFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(userKey).(string)
	return username, ok
}
