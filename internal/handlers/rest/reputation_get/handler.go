package reputation_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"shipledger/internal/entities"
	"shipledger/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

type reputationDTO struct {
	Carrier      string `json:"carrier"`
	DisputesLost uint64 `json:"disputes_lost"`
	Breaches     uint64 `json:"breaches"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	carrier := entities.Address(mux.Vars(r)["address"])
	if !carrier.IsValid() {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reputation, err := h.service.Reputation(r.Context(), carrier)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := reputationDTO{
		Carrier:      reputation.Carrier.String(),
		DisputesLost: reputation.DisputesLost,
		Breaches:     reputation.Breaches,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
