package token_mint_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipledger/internal/entities"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/service/token"
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

type mintDTO struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := signature.Caller(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var requestDTO mintDTO
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Mint(r.Context(), caller, entities.Address(requestDTO.To), requestDTO.Amount)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrInvalidAddress),
			errors.Is(err, token.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, token.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, token.ErrOverflow):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
