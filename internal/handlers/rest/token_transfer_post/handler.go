package token_transfer_post

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

type transferDTO struct {
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// Непустое поле from означает перевод по ранее выданному разрешению.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := signature.Caller(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var requestDTO transferDTO
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if requestDTO.From == "" {
		err = h.service.Transfer(r.Context(), caller, entities.Address(requestDTO.To), requestDTO.Amount)
	} else {
		err = h.service.TransferFrom(
			r.Context(),
			caller,
			entities.Address(requestDTO.From),
			entities.Address(requestDTO.To),
			requestDTO.Amount,
		)
	}
	if err != nil {
		switch {
		case errors.Is(err, token.ErrInvalidAddress),
			errors.Is(err, token.ErrInvalidAmount),
			errors.Is(err, token.ErrSameAccount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, token.ErrInsufficientBalance),
			errors.Is(err, token.ErrInsufficientAllowance),
			errors.Is(err, token.ErrTokensLocked),
			errors.Is(err, token.ErrOverflow):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
