package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipledger/internal/entities"
	"shipledger/internal/pkg/middlewares/signature"
	"shipledger/internal/service/shipment"
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

type milestoneDTO struct {
	Checkpoint string `json:"checkpoint"`
	Percent    uint32 `json:"percent"`
}

type shipmentCreateDTO struct {
	Carrier  string         `json:"carrier"`
	Receiver string         `json:"receiver"`
	DataHash string         `json:"data_hash"`
	Deadline uint64         `json:"deadline"`
	Schedule []milestoneDTO `json:"payment_schedule,omitempty"`
}

type shipmentCreateResponse struct {
	ID uint64 `json:"id"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := signature.Caller(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var createDTO shipmentCreateDTO
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	params := shipment.CreateParams{
		Carrier:  entities.Address(createDTO.Carrier),
		Receiver: entities.Address(createDTO.Receiver),
		DataHash: entities.Hash(createDTO.DataHash),
		Deadline: createDTO.Deadline,
	}
	for _, milestone := range createDTO.Schedule {
		params.Schedule = append(params.Schedule, entities.PaymentMilestone{
			Checkpoint: milestone.Checkpoint,
			Percent:    milestone.Percent,
		})
	}

	id, err := h.service.Create(r.Context(), caller, params)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidAddress),
			errors.Is(err, shipment.ErrInvalidHash),
			errors.Is(err, shipment.ErrInvalidDeadline),
			errors.Is(err, shipment.ErrInvalidSchedule):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrUnauthorized),
			errors.Is(err, shipment.ErrNotWhitelisted):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shipment.ErrActiveLimitReached):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, shipment.ErrPaused):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipmentCreateResponse{
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
