package metadata_get

import (
	"encoding/json"
	"net/http"

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

type metadataDTO struct {
	Version           uint32            `json:"version"`
	CodeHash          string            `json:"code_hash,omitempty"`
	Admins            []string          `json:"admins"`
	Paused            bool              `json:"paused"`
	TotalShipments    uint64            `json:"total_shipments"`
	TotalDisputes     uint64            `json:"total_disputes"`
	TotalEscrowVolume int64             `json:"total_escrow_volume"`
	StatusCounts      map[string]uint64 `json:"status_counts"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	metadata, err := h.service.Metadata(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	analytics, err := h.service.Analytics(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := metadataDTO{
		Version:           metadata.Version,
		CodeHash:          metadata.CodeHash.String(),
		Admins:            make([]string, 0, len(metadata.Admins)),
		Paused:            metadata.Paused,
		TotalShipments:    metadata.TotalShipments,
		TotalDisputes:     metadata.TotalDisputes,
		TotalEscrowVolume: analytics.TotalEscrowVolume,
		StatusCounts:      make(map[string]uint64, len(analytics.StatusCounts)),
	}
	for _, admin := range metadata.Admins {
		response.Admins = append(response.Admins, admin.String())
	}
	for status, count := range analytics.StatusCounts {
		response.StatusCounts[status.String()] = count
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
