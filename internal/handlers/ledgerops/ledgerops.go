package ledgerops

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/dto"
	reconcileservice "github.com/arxlab/arxpoints/internal/service/reconcileservice"
	sweepservice "github.com/arxlab/arxpoints/internal/service/sweepservice"
	"github.com/arxlab/arxpoints/pkg/utils"
)

type SweepService interface {
	SweepStale(ctx context.Context, batchSize int, dryRun bool) (*sweepservice.Result, error)
	BackfillOrphans(ctx context.Context, batchSize int, dryRun bool) (*sweepservice.Result, error)
}

type ReconcileService interface {
	ReconcileUser(ctx context.Context, userID int, dryRun bool) (*domain.AuditLogEntry, error)
	ReconcileBatch(ctx context.Context, batchSize, offset int, dryRun bool) (*reconcileservice.BatchResult, error)
	ClampUser(ctx context.Context, userID int, threshold float64, dryRun bool) (*domain.AuditLogEntry, error)
	ClampBatch(ctx context.Context, batchSize, offset int, threshold float64, dryRun bool) (*reconcileservice.BatchResult, error)
	AuditTrail(ctx context.Context, userID, limit int) ([]domain.AuditLogEntry, error)
}

type LedgerOpsHandler struct {
	sweepService     SweepService
	reconcileService ReconcileService
}

func New(sweepService SweepService, reconcileService ReconcileService) *LedgerOpsHandler {
	return &LedgerOpsHandler{
		sweepService:     sweepService,
		reconcileService: reconcileService,
	}
}

// SweepStale godoc
//
//	@Summary		Sweep stale mining sessions
//	@Description	Close sessions that have been active beyond the session cap and credit them as if claimed at the cap. Dry run reports without writing.
//	@Tags			LedgerOps
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SweepRequestDTO	true	"Sweep request body"
//	@Success		200		{object}	sweepservice.Result
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sweep/stale [post]
func (h *LedgerOpsHandler) SweepStale(w http.ResponseWriter, r *http.Request) {
	var req dto.SweepRequestDTO
	if err := decodeOptional(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.sweepService.SweepStale(r.Context(), req.BatchSize, req.DryRun)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// SweepOrphans godoc
//
//	@Summary		Backfill orphaned sessions
//	@Description	Credit closed, uncredited sessions with raw points at their frozen value. Dry run reports without writing.
//	@Tags			LedgerOps
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SweepRequestDTO	true	"Sweep request body"
//	@Success		200		{object}	sweepservice.Result
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sweep/orphans [post]
func (h *LedgerOpsHandler) SweepOrphans(w http.ResponseWriter, r *http.Request) {
	var req dto.SweepRequestDTO
	if err := decodeOptional(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.sweepService.BackfillOrphans(r.Context(), req.BatchSize, req.DryRun)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Reconcile godoc
//
//	@Summary		Reconcile balances against proof
//	@Description	Recompute proof totals and restore any shortfall, for one user or a paged batch. Never lowers a subtotal; overshoot beyond tolerance is flagged.
//	@Tags			LedgerOps
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReconcileRequestDTO	true	"Reconcile request body"
//	@Success		200		{object}	reconcileservice.BatchResult
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		422		{object}	utils.Response	"Proof totals inconclusive"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/reconcile [post]
func (h *LedgerOpsHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req dto.ReconcileRequestDTO
	if err := decodeOptional(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID != nil {
		entry, err := h.reconcileService.ReconcileUser(r.Context(), *req.UserID, req.DryRun)
		if err != nil {
			respondOpError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, singleResult(entry, req.DryRun))
		return
	}

	result, err := h.reconcileService.ReconcileBatch(r.Context(), req.BatchSize, req.Offset, req.DryRun)
	if err != nil {
		respondOpError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Clamp godoc
//
//	@Summary		Clamp inflated balances
//	@Description	Lower subtotals that exceed their provable maximum when stored mining is at or above the suspicion threshold. Never raises a subtotal.
//	@Tags			LedgerOps
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClampRequestDTO	true	"Clamp request body"
//	@Success		200		{object}	reconcileservice.BatchResult
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		422		{object}	utils.Response	"Proof totals inconclusive"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/clamp [post]
func (h *LedgerOpsHandler) Clamp(w http.ResponseWriter, r *http.Request) {
	var req dto.ClampRequestDTO
	if err := decodeOptional(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID != nil {
		entry, err := h.reconcileService.ClampUser(r.Context(), *req.UserID, req.Threshold, req.DryRun)
		if err != nil {
			respondOpError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, singleResult(entry, req.DryRun))
		return
	}

	result, err := h.reconcileService.ClampBatch(r.Context(), req.BatchSize, req.Offset, req.Threshold, req.DryRun)
	if err != nil {
		respondOpError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// AuditTrail godoc
//
//	@Summary		Read a user's audit trail
//	@Description	Lists the most recent reconciliation, clamp and settlement entries for a user, newest first.
//	@Tags			LedgerOps
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Param			limit	query		int	false	"Max entries to return"
//	@Success		200		{array}		domain.AuditLogEntry
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/audit/{userID} [get]
func (h *LedgerOpsHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.reconcileService.AuditTrail(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if entries == nil {
		entries = []domain.AuditLogEntry{}
	}
	utils.RespondWithJSON(w, http.StatusOK, entries)
}

// decodeOptional tolerates an empty body: every field of the admin ops has
// a usable zero value.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func respondOpError(w http.ResponseWriter, err error) {
	if errors.Is(err, reconcileservice.ErrInconclusive) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func singleResult(entry *domain.AuditLogEntry, dryRun bool) *reconcileservice.BatchResult {
	result := &reconcileservice.BatchResult{
		Processed: 1,
		DryRun:    dryRun,
		Results:   []domain.AuditLogEntry{*entry},
	}
	switch entry.Action {
	case domain.AuditActionRestored, domain.AuditActionClamped:
		result.Changed = 1
		result.TotalPointsDelta = entry.TotalDiff
	case domain.AuditActionFlagged:
		result.Flagged = 1
	}
	return result
}
