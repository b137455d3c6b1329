package token_balance_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipledger/internal/entities"
	"shipledger/internal/service/token"
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

type balanceDTO struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

// Необязательный query-параметр at возвращает баланс на момент времени.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	addr := entities.Address(mux.Vars(r)["address"])

	var (
		balance int64
		err     error
	)
	if atStr := r.URL.Query().Get("at"); atStr != "" {
		at, parseErr := strconv.ParseUint(atStr, 10, 64)
		if parseErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		balance, err = h.service.BalanceAt(r.Context(), addr, at)
	} else {
		balance, err = h.service.Balance(r.Context(), addr)
	}
	if err != nil {
		switch {
		case errors.Is(err, token.ErrInvalidAddress):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := balanceDTO{
		Address: addr.String(),
		Balance: balance,
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
