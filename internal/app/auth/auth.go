// Package auth описывает учетные данные для GitHub API.
//
// Поддерживается ровно один способ аутентификации: пара логин и токен,
// передаваемая в заголовке Authorization по схеме Basic.
package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// ErrUnsupportedAuth возвращается, когда строку учетных данных нельзя
// разобрать как "user:token", в том числе когда она пустая.
var ErrUnsupportedAuth = errors.New("unsupported authentication method: expected credentials as user:token")

const separator = ":"

// Credential пара логин/токен для basic-аутентификации.
type Credential struct {
	Username string
	Token    string
}

// Parse разбирает строку вида "user:token".
// Разделитель должен встречаться ровно один раз, обе части непустые.
func Parse(raw string) (Credential, error) {
	parts := strings.Split(raw, separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Credential{}, ErrUnsupportedAuth
	}

	return Credential{Username: parts[0], Token: parts[1]}, nil
}

// Apply добавляет заголовок Authorization к запросу.
func (c Credential) Apply(req *http.Request) {
	req.Header.Set("Authorization", c.Header())
}

// Header возвращает значение заголовка Authorization.
func (c Credential) Header() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.Username+separator+c.Token))
}

// Matches сравнивает пару с учетными данными из запроса.
func (c Credential) Matches(username, token string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(c.Username), []byte(username)) == 1
	tokenOK := subtle.ConstantTimeCompare([]byte(c.Token), []byte(token)) == 1
	return userOK && tokenOK
}

// String не раскрывает токен, чтобы учетные данные можно было писать в лог.
func (c Credential) String() string {
	return c.Username + separator + "***"
}
