package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-escrow-service/internal/delivery/grpcapi/escrowpb"
	"github.com/LavaJover/shvark-escrow-service/internal/delivery/grpcapi/mappers"
	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	usecase "github.com/LavaJover/shvark-escrow-service/internal/usecase/escrow"
	escrowdto "github.com/LavaJover/shvark-escrow-service/internal/usecase/dto/escrow"
	"github.com/go-chi/chi/v5"
)

// EscrowHandler exposes the read side of the escrow service over HTTP.
// State transitions are served only by gRPC, where signer tokens are checked.
type EscrowHandler struct {
	uc usecase.EscrowUsecase
}

func NewEscrowHandler(uc usecase.EscrowUsecase) *EscrowHandler {
	return &EscrowHandler{uc: uc}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *EscrowHandler) GetEscrow(w http.ResponseWriter, r *http.Request) {
	escrow, err := h.uc.GetEscrowByID(r.Context(), chi.URLParam(r, "escrowID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToProtoEscrow(escrow))
}

// ListEscrows handles GET /v1/escrows. order_id short-circuits to a single
// lookup; otherwise party, status, page and limit filter the list.
func (h *EscrowHandler) ListEscrows(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if orderID := query.Get("order_id"); orderID != "" {
		escrow, err := h.uc.GetEscrowByOrderID(r.Context(), orderID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, mappers.ToProtoEscrow(escrow))
		return
	}

	page, err := intParam(query.Get("page"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid page"})
		return
	}
	limit, err := intParam(query.Get("limit"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
		return
	}

	output, err := h.uc.ListEscrows(r.Context(), &escrowdto.ListEscrowsInput{
		Party:  query.Get("party"),
		Status: query.Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, escrowpb.ListEscrowsResponse{
		Escrows: mappers.ToProtoEscrows(output.Escrows),
		Total:   output.Total,
	})
}

func (h *EscrowHandler) GetEscrowStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.GetEscrowStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mappers.ToProtoEscrowStats(stats))
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, domain.ErrEscrowNotFound) {
		code = http.StatusNotFound
	}
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
