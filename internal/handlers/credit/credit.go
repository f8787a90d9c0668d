package credit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/dto"
	creditservice "github.com/arxlab/arxpoints/internal/service/creditservice"
	"github.com/arxlab/arxpoints/pkg/auth"
	"github.com/arxlab/arxpoints/pkg/utils"
)

type Service interface {
	StartSession(ctx context.Context, userID int) (*domain.MiningSession, error)
	CreditSession(ctx context.Context, userID int, sessionID string, claimed int64) (*creditservice.CreditResult, error)
	CreditProof(ctx context.Context, userID int, kind domain.ProofKind, proofID *int, claimed int64) (*creditservice.CreditResult, error)
}

type BalanceService interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type CreditHandler struct {
	creditService  Service
	balanceService BalanceService
}

func New(creditService Service, balanceService BalanceService) *CreditHandler {
	return &CreditHandler{
		creditService:  creditService,
		balanceService: balanceService,
	}
}

// StartSession godoc
//
//	@Summary		Start a mining session
//	@Description	Open a new timed mining session for the authenticated user.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SessionStartResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/session/start [post]
func (h *CreditHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	session, err := h.creditService.StartSession(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionStartResponseDTO{
		SessionID: session.ID,
		StartedAt: session.StartedAt,
	})
}

// Credit godoc
//
//	@Summary		Claim points
//	@Description	Credit a mining session or an activity proof. Repeated claims for the same session or proof return the idempotent already-credited status with zero points.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditRequestDTO	true	"Credit request body"
//	@Success		200		{object}	dto.CreditResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Session or proof not found"
//	@Failure		503		{object}	utils.Response	"Transient storage failure, retry"
//	@Router			/api/user/credit [post]
func (h *CreditHandler) Credit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var result *creditservice.CreditResult
	var err error
	switch req.Type {
	case "mining":
		if req.SessionID == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "session_id is required for mining credit")
			return
		}
		result, err = h.creditService.CreditSession(r.Context(), userID, req.SessionID, req.Amount)
	case "task":
		result, err = h.creditService.CreditProof(r.Context(), userID, domain.ProofKindTask, req.ProofID, req.Amount)
	case "social":
		result, err = h.creditService.CreditProof(r.Context(), userID, domain.ProofKindSocial, req.ProofID, req.Amount)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "type must be one of mining, task, social")
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, creditservice.ErrSessionNotFound),
			errors.Is(err, creditservice.ErrProofNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, creditservice.ErrTransientStore):
			utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreditResponseDTO{
		Success: true,
		Status:  result.Status,
		Points:  result.Awarded,
		Balance: balance.Total,
	})
}
