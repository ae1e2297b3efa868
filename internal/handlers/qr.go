package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"

	"lanchat/internal/utils"
)

type QRHandler struct {
	Port string
	Log  *logrus.Logger
}

// ServeHTTP returns a PNG QR code encoding this server's LAN address, the
// join surface a phone scans to open the chat page.
func (h *QRHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ip, err := utils.LocalIP()
	if err != nil {
		h.Log.WithError(err).Error("local ip detection failed")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "could not determine local address"})
		return
	}

	png, err := qrcode.Encode(utils.JoinURL(ip, h.Port), qrcode.Medium, 256)
	if err != nil {
		h.Log.WithError(err).Error("qr encode failed")
		utils.JSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "could not generate qr code"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
