package handlers

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"lanchat/internal/models"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// MessageLister is the slice of the message store the page handlers need.
type MessageLister interface {
	ListAll(ctx context.Context) ([]models.Message, error)
}

type HomeHandler struct {
	Store MessageLister
	Log   *logrus.Logger
}

// ServeHTTP renders the chat page with the full history already in the
// scrollback, so a late joiner sees everything said before they arrived.
// If history cannot be read the page still loads, just empty.
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Store.ListAll(r.Context())
	if err != nil {
		h.Log.WithError(err).Error("history unavailable, rendering empty page")
		messages = nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, struct {
		Messages []models.Message
	}{Messages: messages}); err != nil {
		h.Log.WithError(err).Error("render index")
	}
}
