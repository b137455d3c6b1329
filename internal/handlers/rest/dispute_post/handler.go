package dispute_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipledger/internal/entities"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/service/dispute"
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

type disputeRaiseDTO struct {
	ReasonHash string `json:"reason_hash"`
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

	var requestDTO disputeRaiseDTO
	err = json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Raise(r.Context(), caller, id, entities.Hash(requestDTO.ReasonHash))
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispute.ErrInvalidHash):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispute.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, dispute.ErrInvalidState):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, dispute.ErrPaused):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
