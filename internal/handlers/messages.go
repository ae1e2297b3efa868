package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"lanchat/internal/models"
	"lanchat/internal/utils"
)

type MessagesHandler struct {
	Store MessageLister
	Log   *logrus.Logger
}

// ServeHTTP handles GET /messages: the full history as JSON, oldest first,
// for clients that want the scrollback without the HTML page.
func (h *MessagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Store.ListAll(r.Context())
	if err != nil {
		h.Log.WithError(err).Error("list messages")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "could not read history"})
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	utils.JSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "messages fetched", Data: messages})
}
