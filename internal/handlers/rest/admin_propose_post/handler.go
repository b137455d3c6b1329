package admin_propose_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipledger/internal/entities"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/service/identity"
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

type adminProposeDTO struct {
	Successor string `json:"successor"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := signature.Caller(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var requestDTO adminProposeDTO
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.ProposeAdmin(r.Context(), caller, entities.Address(requestDTO.Successor))
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, identity.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, identity.ErrAlreadyAdmin):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
