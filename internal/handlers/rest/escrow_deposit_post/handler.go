package escrow_deposit_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/service/escrow"
	"shipledger/internal/service/shipment"
	"shipledger/internal/service/token"
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

type depositDTO struct {
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

	var requestDTO depositDTO
	err = json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Deposit(r.Context(), caller, id, requestDTO.Amount)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, escrow.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, escrow.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, escrow.ErrInvalidState),
			errors.Is(err, escrow.ErrAlreadyDeposited),
			errors.Is(err, token.ErrInsufficientBalance),
			errors.Is(err, token.ErrTokensLocked):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, escrow.ErrPaused):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
