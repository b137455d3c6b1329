package proposal_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipledger/internal/entities"
	"shipledger/internal/service/governance"
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

type proposalDTO struct {
	ID            uint64                  `json:"id"`
	Action        string                  `json:"action"`
	Params        entities.ProposalParams `json:"params"`
	Proposer      string                  `json:"proposer"`
	CreatedAt     uint64                  `json:"created_at"`
	ExpiresAt     uint64                  `json:"expires_at"`
	SnapshotTS    uint64                  `json:"snapshot_ts"`
	Approvals     []string                `json:"approvals"`
	ApprovalPower int64                   `json:"approval_power"`
	Executed      bool                    `json:"executed"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	proposal, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, governance.ErrProposalNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := proposalDTO{
		ID:            proposal.ID,
		Action:        proposal.Action.String(),
		Params:        proposal.Params,
		Proposer:      proposal.Proposer.String(),
		CreatedAt:     proposal.CreatedAt,
		ExpiresAt:     proposal.ExpiresAt,
		SnapshotTS:    proposal.SnapshotTS,
		Approvals:     make([]string, 0, len(proposal.Approvals)),
		ApprovalPower: proposal.ApprovalPower,
		Executed:      proposal.Executed,
	}
	for _, approval := range proposal.Approvals {
		response.Approvals = append(response.Approvals, approval.String())
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
