package proposal_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipledger/internal/entities"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/service/governance"
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

type proposalCreateDTO struct {
	Action string                  `json:"action"`
	Params entities.ProposalParams `json:"params"`
}

type proposalCreateResponse struct {
	ID uint64 `json:"id"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := signature.Caller(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var createDTO proposalCreateDTO
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := h.service.Propose(r.Context(), caller, entities.ProposalAction(createDTO.Action), createDTO.Params)
	if err != nil {
		switch {
		case errors.Is(err, governance.ErrInvalidAction),
			errors.Is(err, governance.ErrInvalidParams),
			errors.Is(err, governance.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, governance.ErrUnauthorized),
			errors.Is(err, governance.ErrInsufficientPower):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := proposalCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
