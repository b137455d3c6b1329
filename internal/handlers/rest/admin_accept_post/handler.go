package admin_accept_post

import (
	"errors"
	"net/http"

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

	err := h.service.AcceptAdmin(r.Context(), caller)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrNoPendingTransfer):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, identity.ErrNotSuccessor):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, identity.ErrAlreadyAdmin),
			errors.Is(err, identity.ErrAdminBounds):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
