package escrow_refund_post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/service/shipment"
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

	err = h.service.RefundEscrow(r.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shipment.ErrAlreadyTerminal),
			errors.Is(err, shipment.ErrInvalidStatusTransition),
			errors.Is(err, shipment.ErrNothingToRefund):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, shipment.ErrPaused):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
