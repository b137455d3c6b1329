package shipment_milestone_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipledger/internal/entities"
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

type milestoneRecordDTO struct {
	Checkpoint string `json:"checkpoint"`
	Hash       string `json:"hash"`
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

	var recordDTO milestoneRecordDTO
	err = json.NewDecoder(r.Body).Decode(&recordDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.RecordMilestone(r.Context(), caller, id, recordDTO.Checkpoint, entities.Hash(recordDTO.Hash))
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrInvalidHash):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shipment.ErrInvalidStatusTransition),
			errors.Is(err, shipment.ErrAlreadyTerminal):
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
