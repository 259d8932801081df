package gist

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Created созданный gist. URL берется из html_url, при его отсутствии из url.
type Created struct {
	ID  string
	URL string
}

// Deleted успешный ответ на удаление, тела у него нет.
type Deleted struct{}

// APIError ответ GitHub API с описанием ошибки.
type APIError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Response результат вызова API: либо значение, либо ошибка от сервиса.
// Сетевые ошибки сюда не попадают, они возвращаются отдельно.
type Response[T any] struct {
	Value T
	Err   *APIError
}

func (r Response[T]) OK() bool {
	return r.Err == nil
}

func ok[T any](v T) Response[T] {
	return Response[T]{Value: v}
}

var errUnknownShape = errors.New("response matches neither success nor error shape")

// decode сначала пробует форму успешного ответа, затем форму ошибки.
// Код ответа при этом не учитывается.
func decode[T any](raw []byte, success func([]byte) (T, bool)) (Response[T], error) {
	if v, matched := success(raw); matched {
		return ok(v), nil
	}

	var apiErr APIError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		return Response[T]{Err: &apiErr}, nil
	}

	return Response[T]{}, errUnknownShape
}

type createdBody struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	HTMLURL string `json:"html_url"`
}

func decodeCreated(raw []byte) (Created, bool) {
	var body createdBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return Created{}, false
	}

	url := body.HTMLURL
	if url == "" {
		url = body.URL
	}
	if body.ID == "" || url == "" {
		return Created{}, false
	}

	return Created{ID: body.ID, URL: url}, true
}

func decodeDeleted(raw []byte) (Deleted, bool) {
	return Deleted{}, bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
