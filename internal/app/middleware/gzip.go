package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
)

var compressibleTypes = []string{
	"application/json",
	"text/html",
	"text/plain",
}

func shouldCompress(headers http.Header, status int) bool {
	if status == http.StatusNoContent || status == http.StatusNotModified || (status >= 300 && status < 400) {
		return false
	}

	contentType := headers.Get("Content-Type")
	for _, typ := range compressibleTypes {
		if strings.Contains(contentType, typ) {
			return true
		}
	}
	return false
}

// GzipMiddleware распаковывает gzip-тело запроса и сжимает ответ,
// если клиент прислал Accept-Encoding: gzip.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			gz, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, "Invalid gzip body", http.StatusBadRequest)
				return
			}
			defer gz.Close()
			r.Body = gz
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		// Ответ буферизуется целиком: решение о сжатии зависит от статуса
		// и Content-Type, а заголовки нужно выставить до WriteHeader.
		writer := &gzipResponseWriter{ResponseWriter: w}
		next.ServeHTTP(writer, r)

		status := writer.status
		if status == 0 {
			status = http.StatusOK
		}

		if !shouldCompress(w.Header(), status) || len(writer.data) == 0 {
			w.WriteHeader(status)
			if len(writer.data) > 0 {
				w.Write(writer.data)
			}
			return
		}

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")
		w.WriteHeader(status)

		gz := gzip.NewWriter(w)
		defer gz.Close()
		gz.Write(writer.data)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter
	data   []byte
	status int
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.data = append(w.data, b...)
	return len(b), nil
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}
