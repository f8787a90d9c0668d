package balance

import (
	"context"
	"net/http"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/dto"
	"github.com/arxlab/arxpoints/pkg/auth"
	"github.com/arxlab/arxpoints/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the per-category subtotals and the grand total for the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Subtotals and total"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Mining:   balance.MiningSubtotal,
		Task:     balance.TaskSubtotal,
		Social:   balance.SocialSubtotal,
		Referral: balance.ReferralSubtotal,
		Total:    balance.Total,
	})
}
