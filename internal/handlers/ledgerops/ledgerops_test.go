package ledgerops

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/arxlab/arxpoints/internal/domain"
	reconcileservice "github.com/arxlab/arxpoints/internal/service/reconcileservice"
	sweepservice "github.com/arxlab/arxpoints/internal/service/sweepservice"
)

func NewMock(t *testing.T) (*LedgerOpsHandler, *MockSweepService, *MockReconcileService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	sweepService := NewMockSweepService(ctrl)
	reconcileService := NewMockReconcileService(ctrl)
	handler := New(sweepService, reconcileService)
	return handler, sweepService, reconcileService
}

func post(handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSweepStale(t *testing.T) {
	t.Run("runs the sweep", func(t *testing.T) {
		handler, sweepService, _ := NewMock(t)
		sweepService.EXPECT().SweepStale(gomock.Any(), 50, false).
			Return(&sweepservice.Result{Processed: 2, Credited: 2, TotalPointsDelta: 160}, nil)

		rec := post(handler.SweepStale, "/api/admin/sweep/stale", `{"batchSize":50}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"processed":2`)
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		handler, sweepService, _ := NewMock(t)
		sweepService.EXPECT().SweepStale(gomock.Any(), 0, false).
			Return(&sweepservice.Result{}, nil)

		rec := post(handler.SweepStale, "/api/admin/sweep/stale", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("dry run is passed through", func(t *testing.T) {
		handler, sweepService, _ := NewMock(t)
		sweepService.EXPECT().SweepStale(gomock.Any(), 0, true).
			Return(&sweepservice.Result{DryRun: true}, nil)

		rec := post(handler.SweepStale, "/api/admin/sweep/stale", `{"dryRun":true}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"dryRun":true`)
	})
}

func TestSweepOrphans(t *testing.T) {
	handler, sweepService, _ := NewMock(t)
	sweepService.EXPECT().BackfillOrphans(gomock.Any(), 100, false).
		Return(&sweepservice.Result{Processed: 1, Credited: 1, TotalPointsDelta: 75}, nil)

	rec := post(handler.SweepOrphans, "/api/admin/sweep/orphans", `{"batchSize":100}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPointsDelta":75`)
}

func TestReconcile(t *testing.T) {
	t.Run("batch mode", func(t *testing.T) {
		handler, _, reconcileService := NewMock(t)
		reconcileService.EXPECT().ReconcileBatch(gomock.Any(), 100, 200, false).
			Return(&reconcileservice.BatchResult{Processed: 100, Changed: 3, TotalPointsDelta: 450}, nil)

		rec := post(handler.Reconcile, "/api/admin/reconcile", `{"batchSize":100,"offset":200}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"changed":3`)
	})

	t.Run("single user mode", func(t *testing.T) {
		handler, _, reconcileService := NewMock(t)
		reconcileService.EXPECT().ReconcileUser(gomock.Any(), 7, true).
			Return(&domain.AuditLogEntry{
				UserID:     7,
				Action:     domain.AuditActionRestored,
				MiningDiff: 150,
				TotalDiff:  150,
			}, nil)

		rec := post(handler.Reconcile, "/api/admin/reconcile", `{"user_id":7,"dryRun":true}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"processed":1`)
		assert.Contains(t, rec.Body.String(), `"totalPointsDelta":150`)
	})

	t.Run("inconclusive user maps to 422", func(t *testing.T) {
		handler, _, reconcileService := NewMock(t)
		reconcileService.EXPECT().ReconcileUser(gomock.Any(), 7, false).
			Return(nil, reconcileservice.ErrInconclusive)

		rec := post(handler.Reconcile, "/api/admin/reconcile", `{"user_id":7}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		handler, _, _ := NewMock(t)
		rec := post(handler.Reconcile, "/api/admin/reconcile", `{notjson`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestClamp(t *testing.T) {
	t.Run("batch mode with threshold", func(t *testing.T) {
		handler, _, reconcileService := NewMock(t)
		reconcileService.EXPECT().ClampBatch(gomock.Any(), 100, 0, 2.0, false).
			Return(&reconcileservice.BatchResult{Processed: 100, Changed: 1, TotalPointsDelta: -600}, nil)

		rec := post(handler.Clamp, "/api/admin/clamp", `{"batchSize":100,"threshold":2.0}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalPointsDelta":-600`)
	})

	t.Run("single user mode", func(t *testing.T) {
		handler, _, reconcileService := NewMock(t)
		reconcileService.EXPECT().ClampUser(gomock.Any(), 9, 1.5, false).
			Return(&domain.AuditLogEntry{
				UserID:     9,
				Action:     domain.AuditActionClamped,
				MiningDiff: -600,
				TotalDiff:  -600,
			}, nil)

		rec := post(handler.Clamp, "/api/admin/clamp", `{"user_id":9,"threshold":1.5}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"changed":1`)
	})
}

func getAudit(handler http.HandlerFunc, userID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/audit/"+userID+query, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userID", userID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuditTrail(t *testing.T) {
	t.Run("returns entries newest first", func(t *testing.T) {
		handler, _, reconcileService := NewMock(t)
		reconcileService.EXPECT().AuditTrail(gomock.Any(), 7, 0).
			Return([]domain.AuditLogEntry{
				{ID: 2, UserID: 7, Action: domain.AuditActionClamped},
				{ID: 1, UserID: 7, Action: domain.AuditActionRestored},
			}, nil)

		rec := getAudit(handler.AuditTrail, "7", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Action":"clamped"`)
	})

	t.Run("limit query is passed through", func(t *testing.T) {
		handler, _, reconcileService := NewMock(t)
		reconcileService.EXPECT().AuditTrail(gomock.Any(), 7, 10).Return(nil, nil)

		rec := getAudit(handler.AuditTrail, "7", "?limit=10")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid user id", func(t *testing.T) {
		handler, _, _ := NewMock(t)
		rec := getAudit(handler.AuditTrail, "abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service error", func(t *testing.T) {
		handler, _, reconcileService := NewMock(t)
		reconcileService.EXPECT().AuditTrail(gomock.Any(), 7, 0).
			Return(nil, errors.New("db down"))

		rec := getAudit(handler.AuditTrail, "7", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
