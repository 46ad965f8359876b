package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LavaJover/shvark-escrow-service/internal/delivery/grpcapi/escrowpb"
	"github.com/LavaJover/shvark-escrow-service/internal/domain"
	escrowdto "github.com/LavaJover/shvark-escrow-service/internal/usecase/dto/escrow"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEscrowUsecase struct {
	escrows   map[string]*domain.Escrow
	lastInput *escrowdto.ListEscrowsInput
}

func (s *stubEscrowUsecase) InitializeEscrow(context.Context, *escrowdto.InitializeEscrowInput) (*domain.Escrow, error) {
	return nil, fmt.Errorf("not served over http")
}

func (s *stubEscrowUsecase) ConfirmEscrow(context.Context, string) (*domain.Escrow, error) {
	return nil, fmt.Errorf("not served over http")
}

func (s *stubEscrowUsecase) CancelEscrow(context.Context, string) (*domain.Escrow, error) {
	return nil, fmt.Errorf("not served over http")
}

func (s *stubEscrowUsecase) GetEscrowByID(_ context.Context, escrowID string) (*domain.Escrow, error) {
	if e, ok := s.escrows[escrowID]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrEscrowNotFound, escrowID)
}

func (s *stubEscrowUsecase) GetEscrowByOrderID(_ context.Context, orderID string) (*domain.Escrow, error) {
	for _, e := range s.escrows {
		if e.OrderID == orderID {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrEscrowNotFound, orderID)
}

func (s *stubEscrowUsecase) ListEscrows(_ context.Context, input *escrowdto.ListEscrowsInput) (*escrowdto.ListEscrowsOutput, error) {
	s.lastInput = input
	if input.Status != "" && strings.ToUpper(input.Status) != "LOCKED" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, input.Status)
	}
	out := &escrowdto.ListEscrowsOutput{Page: input.Page, Limit: input.Limit}
	for _, e := range s.escrows {
		out.Escrows = append(out.Escrows, e)
	}
	out.Total = int64(len(out.Escrows))
	return out, nil
}

func (s *stubEscrowUsecase) GetEscrowStats(context.Context) (*domain.EscrowStats, error) {
	return &domain.EscrowStats{TotalEscrows: 1, ActiveEscrows: 1, TotalValueLocked: 100}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *stubEscrowUsecase) {
	t.Helper()
	uc := &stubEscrowUsecase{escrows: map[string]*domain.Escrow{
		"e1": {ID: "e1", OrderID: "order-1", Buyer: "alice", Seller: "bob", Amount: 100, Status: domain.StatusLocked, CreatedAt: time.Now()},
	}}
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "escrow_test_total", Help: "test"}))
	return NewRouter(NewEscrowHandler(uc), registry), uc
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "escrow_test_total")
}

func TestRouterGetEscrow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/v1/escrows/e1")
	require.Equal(t, http.StatusOK, rec.Code)
	var escrow escrowpb.Escrow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &escrow))
	assert.Equal(t, "order-1", escrow.OrderId)
	assert.Equal(t, "LOCKED", escrow.Status)

	rec = get(t, router, "/v1/escrows/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, router, "/v1/escrows?order_id=order-1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &escrow))
	assert.Equal(t, "e1", escrow.EscrowId)
}

func TestRouterListEscrows(t *testing.T) {
	router, uc := newTestRouter(t)

	rec := get(t, router, "/v1/escrows?party=alice&status=locked&page=2&limit=10")
	require.Equal(t, http.StatusOK, rec.Code)
	var list escrowpb.ListEscrowsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, int64(1), list.Total)
	assert.Equal(t, "alice", uc.lastInput.Party)
	assert.Equal(t, 2, uc.lastInput.Page)
	assert.Equal(t, 10, uc.lastInput.Limit)

	assert.Equal(t, http.StatusBadRequest, get(t, router, "/v1/escrows?status=refunded").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, router, "/v1/escrows?page=two").Code)
}

func TestRouterStats(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(t, router, "/v1/escrows/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats escrowpb.GetEscrowStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, uint64(100), stats.TotalValueLocked)
}
