// Package controller HTTP-эмулятор той части GitHub Gist API, которой
// пользуется quist: создание, получение и удаление gist.
package controller

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/m-molecula741/quist/internal/app/logger"
	appmiddleware "github.com/m-molecula741/quist/internal/app/middleware"
	"github.com/m-molecula741/quist/internal/app/storage"
)

const (
	msgNotFound       = "Not Found"
	msgInvalidRequest = "Invalid request."
)

type HTTPController struct {
	store   GistStore
	auth    *appmiddleware.AuthMiddleware
	baseURL string
	now     func() time.Time
	router  *chi.Mux
}

// NewHTTPController создает эмулятор. Если baseURL пуст, адреса в ответах
// строятся по заголовку Host запроса.
func NewHTTPController(store GistStore, auth *appmiddleware.AuthMiddleware, baseURL string) *HTTPController {
	c := &HTTPController{
		store:   store,
		auth:    auth,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
		router:  chi.NewRouter(),
	}
	c.setupRoutes()
	return c
}

func (c *HTTPController) setupRoutes() {
	c.router.Use(chimiddleware.Recoverer)
	c.router.Use(appmiddleware.RequestLogger)
	c.router.Use(appmiddleware.GzipMiddleware)

	c.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	})

	c.router.Get("/gists/{id}", c.handleGet)

	c.router.Group(func(r chi.Router) {
		r.Use(c.auth.Middleware)
		r.Post("/gists", c.handleCreate)
		r.Delete("/gists/{id}", c.handleDelete)
	})
}

func (c *HTTPController) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.router.ServeHTTP(w, r)
}

func (c *HTTPController) handleCreate(w http.ResponseWriter, r *http.Request) {
	owner, _ := appmiddleware.GetUserFromContext(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, msgInvalidRequest)
		return
	}
	if len(req.Files) == 0 {
		writeError(w, http.StatusUnprocessableEntity, msgInvalidRequest)
		return
	}

	files := make(map[string]string, len(req.Files))
	for name, file := range req.Files {
		if name == "" || file == nil || file.Content == "" {
			writeError(w, http.StatusUnprocessableEntity, msgInvalidRequest)
			return
		}
		files[name] = file.Content
	}

	g := storage.Gist{
		ID:          strings.ReplaceAll(uuid.NewString(), "-", ""),
		Owner:       owner,
		Description: req.Description,
		Public:      req.Public,
		Files:       files,
		CreatedAt:   c.now().UTC().Truncate(time.Second),
	}
	if err := c.store.Save(g); err != nil {
		logger.Warn().Err(err).Str("id", g.ID).Msg("Cannot save gist")
		http.Error(w, "Save failed", http.StatusInternalServerError)
		return
	}

	base := c.base(r)
	w.Header().Set("Location", base+"/gists/"+g.ID)
	writeJSON(w, http.StatusCreated, newGistResponse(base, g))
}

func (c *HTTPController) handleGet(w http.ResponseWriter, r *http.Request) {
	g, err := c.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		c.storeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGistResponse(c.base(r), g))
}

// handleDelete удаляет gist. Чужой gist неотличим от несуществующего.
func (c *HTTPController) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	owner, _ := appmiddleware.GetUserFromContext(r.Context())

	g, err := c.store.Get(id)
	if err != nil {
		c.storeError(w, err)
		return
	}
	if g.Owner != owner {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := c.store.Delete(id); err != nil {
		c.storeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *HTTPController) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	logger.Warn().Err(err).Msg("Gist storage failed")
	http.Error(w, "Storage failed", http.StatusInternalServerError)
}

func (c *HTTPController) base(r *http.Request) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func newGistResponse(base string, g storage.Gist) gistResponse {
	files := make(map[string]fileResponse, len(g.Files))
	for name, content := range g.Files {
		files[name] = fileResponse{
			Filename: name,
			Type:     fileType(name),
			Size:     len(content),
			RawURL:   base + "/" + g.Owner + "/" + g.ID + "/raw/" + name,
			Content:  content,
		}
	}

	return gistResponse{
		URL:         base + "/gists/" + g.ID,
		ForksURL:    base + "/gists/" + g.ID + "/forks",
		ID:          g.ID,
		HTMLURL:     base + "/" + g.Owner + "/" + g.ID,
		Files:       files,
		Public:      g.Public,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.CreatedAt,
		Description: g.Description,
		Owner:       ownerResponse{Login: g.Owner},
	}
}

func fileType(name string) string {
	typ := mime.TypeByExtension(filepath.Ext(name))
	if typ == "" {
		return "text/plain"
	}
	if i := strings.IndexByte(typ, ';'); i >= 0 {
		typ = typ[:i]
	}
	return typ
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn().Err(err).Msg("Cannot encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
