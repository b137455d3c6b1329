package proposal_execute_post

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	err = h.service.Execute(r.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, governance.ErrProposalNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, governance.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, governance.ErrProposalExpired),
			errors.Is(err, governance.ErrProposalExecuted),
			errors.Is(err, governance.ErrThresholdNotMet),
			errors.Is(err, governance.ErrAdminBounds):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, governance.ErrInvalidParams):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
