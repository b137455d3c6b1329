package escrow_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipledger/internal/service/escrow"
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

type escrowDTO struct {
	ShipmentID uint64 `json:"shipment_id"`
	Locked     int64  `json:"locked"`
	Deposited  int64  `json:"deposited"`
	Released   int64  `json:"released"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	escrowEntity, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, escrow.ErrEscrowNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := escrowDTO{
		ShipmentID: escrowEntity.ShipmentID,
		Locked:     escrowEntity.Locked,
		Deposited:  escrowEntity.Deposited,
		Released:   escrowEntity.Released(),
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
