package whitelist_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := signature.Caller(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	carrier := entities.Address(mux.Vars(r)["address"])

	err := h.service.RemoveFromWhitelist(r.Context(), caller, carrier)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, identity.ErrUnauthorized),
			errors.Is(err, identity.ErrMissingRole):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, identity.ErrNotWhitelisted):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
