package ping_get

import (
	"encoding/json"
	"net/http"

	"shipledger/pkg/logger"
)

type pingResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response := pingResponse{
		Message: "pong",
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
