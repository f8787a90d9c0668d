package arena

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/dto"
	arenaservice "github.com/arxlab/arxpoints/internal/service/arenaservice"
	"github.com/arxlab/arxpoints/pkg/auth"
	"github.com/arxlab/arxpoints/pkg/utils"
)

type Service interface {
	PlaceStake(ctx context.Context, userID int, battleID, side string, amount int64) (*domain.StakeVote, error)
	Settle(ctx context.Context, battleID, winningSide string) (*arenaservice.SettleResult, error)
}

type ArenaHandler struct {
	arenaService Service
}

func New(arenaService Service) *ArenaHandler {
	return &ArenaHandler{
		arenaService: arenaService,
	}
}

// Stake godoc
//
//	@Summary		Stake points on a battle
//	@Description	Debit points from the caller's balance and record a stake on one side of an open battle.
//	@Tags			Arena
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StakeRequestDTO	true	"Stake request body"
//	@Success		200		{object}	dto.StakeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Battle not found"
//	@Failure		409		{object}	utils.Response	"Battle already settled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/arena/stake [post]
func (h *ArenaHandler) Stake(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.StakeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stake, err := h.arenaService.PlaceStake(r.Context(), userID, req.BattleID, req.Side, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, arenaservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, arenaservice.ErrBattleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, arenaservice.ErrBattleClosed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, arenaservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.StakeResponseDTO{
		StakeID:  stake.ID,
		BattleID: stake.BattleID,
		Side:     stake.Side,
		Amount:   stake.Amount,
	})
}

// Settle godoc
//
//	@Summary		Settle a battle
//	@Description	Close a battle and pay the full pool out to the winning side proportionally to stake size. Settling an already settled battle is a no-op.
//	@Tags			Arena
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SettleRequestDTO	true	"Settle request body"
//	@Success		200		{object}	dto.SettleResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Battle not found"
//	@Failure		503		{object}	utils.Response	"Transient storage failure, retry"
//	@Router			/api/admin/arena/settle [post]
func (h *ArenaHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.arenaService.Settle(r.Context(), req.BattleID, req.WinningSide)
	if err != nil {
		switch {
		case errors.Is(err, arenaservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, arenaservice.ErrBattleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, arenaservice.ErrTransientStore):
			utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	payouts := make([]dto.SettlePayoutDTO, len(result.Payouts))
	for i, p := range result.Payouts {
		payouts[i] = dto.SettlePayoutDTO{UserID: p.UserID, Amount: p.Amount}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SettleResponseDTO{
		BattleID:    result.BattleID,
		WinningSide: result.WinningSide,
		Status:      result.Status,
		TotalPool:   result.TotalPool,
		WinningPool: result.WinningPool,
		Multiplier:  result.Multiplier,
		Payouts:     payouts,
	})
}
