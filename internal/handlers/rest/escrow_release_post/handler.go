package escrow_release_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/service/escrow"
	"shipledger/internal/service/shipment"
	"shipledger/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

type releaseResponse struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := signature.Caller(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	amount, err := h.service.Release(r.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound),
			errors.Is(err, escrow.ErrEscrowNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, escrow.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, escrow.ErrInvalidState),
			errors.Is(err, escrow.ErrNothingToRelease):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, escrow.ErrPaused):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := releaseResponse{
		Amount: amount,
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
