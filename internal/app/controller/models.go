package controller

import "time"

type fileRequest struct {
	Content string `json:"content"`
}

type createRequest struct {
	Description *string                 `json:"description"`
	Public      bool                    `json:"public"`
	Files       map[string]*fileRequest `json:"files"`
}

type fileResponse struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Size     int    `json:"size"`
	RawURL   string `json:"raw_url"`
	Content  string `json:"content"`
}

type ownerResponse struct {
	Login string `json:"login"`
}

// gistResponse подмножество полей ответа GitHub, которого достаточно клиентам
type gistResponse struct {
	URL         string                  `json:"url"`
	ForksURL    string                  `json:"forks_url"`
	ID          string                  `json:"id"`
	HTMLURL     string                  `json:"html_url"`
	Files       map[string]fileResponse `json:"files"`
	Public      bool                    `json:"public"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	Description *string                 `json:"description"`
	Owner       ownerResponse           `json:"owner"`
}

type errorResponse struct {
	Message string `json:"message"`
}
