package role_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"shipledger/internal/entities"
	"shipledger/internal/service/identity"
	"shipledger/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

type rolesDTO struct {
	Address string   `json:"address"`
	Roles   []string `json:"roles"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	addr := entities.Address(mux.Vars(r)["address"])

	roles, err := h.service.Roles(r.Context(), addr)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := rolesDTO{
		Address: addr.String(),
		Roles:   make([]string, 0, len(roles)),
	}
	for _, role := range roles {
		response.Roles = append(response.Roles, role.String())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
