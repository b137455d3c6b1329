package delegate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipledger/internal/entities"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/service/governance"
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

type delegateDTO struct {
	Delegate string `json:"delegate"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := signature.Caller(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var requestDTO delegateDTO
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Delegate(r.Context(), caller, entities.Address(requestDTO.Delegate))
	if err != nil {
		switch {
		case errors.Is(err, governance.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, governance.ErrSelfDelegation):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
