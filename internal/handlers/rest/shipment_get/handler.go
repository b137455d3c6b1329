package shipment_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipledger/internal/entities"
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
		service: service,
		log:     handlerLog,
	}
}

type milestoneDTO struct {
	Checkpoint string `json:"checkpoint"`
	Percent    uint32 `json:"percent"`
	Paid       bool   `json:"paid"`
}

type recordDTO struct {
	Checkpoint string `json:"checkpoint"`
	Hash       string `json:"hash"`
	RecordedAt uint64 `json:"recorded_at"`
}

type shipmentDTO struct {
	ID                   uint64         `json:"id"`
	Sender               string         `json:"sender"`
	Carrier              string         `json:"carrier"`
	Receiver             string         `json:"receiver"`
	DataHash             string         `json:"data_hash"`
	Status               string         `json:"status"`
	Deadline             uint64         `json:"deadline"`
	CreatedAt            uint64         `json:"created_at"`
	UpdatedAt            uint64         `json:"updated_at"`
	DeliveryConfirmation *string        `json:"delivery_confirmation,omitempty"`
	PaymentSchedule      []milestoneDTO `json:"payment_schedule,omitempty"`
	Milestones           []recordDTO    `json:"milestones,omitempty"`
}

func toDTO(shipmentEntity *entities.Shipment) shipmentDTO {
	out := shipmentDTO{
		ID:        shipmentEntity.ID,
		Sender:    shipmentEntity.Sender.String(),
		Carrier:   shipmentEntity.Carrier.String(),
		Receiver:  shipmentEntity.Receiver.String(),
		DataHash:  shipmentEntity.DataHash.String(),
		Status:    shipmentEntity.Status.String(),
		Deadline:  shipmentEntity.Deadline,
		CreatedAt: shipmentEntity.CreatedAt,
		UpdatedAt: shipmentEntity.UpdatedAt,
	}
	if shipmentEntity.DeliveryConfirmation != nil {
		confirmation := shipmentEntity.DeliveryConfirmation.String()
		out.DeliveryConfirmation = &confirmation
	}
	for _, milestone := range shipmentEntity.PaymentSchedule {
		out.PaymentSchedule = append(out.PaymentSchedule, milestoneDTO{
			Checkpoint: milestone.Checkpoint,
			Percent:    milestone.Percent,
			Paid:       milestone.Paid,
		})
	}
	for _, record := range shipmentEntity.Milestones {
		out.Milestones = append(out.Milestones, recordDTO{
			Checkpoint: record.Checkpoint,
			Hash:       record.Hash.String(),
			RecordedAt: record.RecordedAt,
		})
	}
	return out
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentEntity, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(toDTO(shipmentEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
