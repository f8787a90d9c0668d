package arenaservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/arxlab/arxpoints/internal/domain"
	"github.com/arxlab/arxpoints/internal/pg"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

const battleID = "b1c9f0a2-4d6e-4f1b-9c3d-2a7e8f5b6c4d"

func setup(t *testing.T) (*Service, *MockArenaRepo, *MockBalanceRepo, *MockAuditRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	arenaRepo := NewMockArenaRepo(ctrl)
	balanceRepo := NewMockBalanceRepo(ctrl)
	auditRepo := NewMockAuditRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	svc := New(arenaRepo, balanceRepo, auditRepo, txManager).
		WithNow(func() time.Time { return testNow })
	return svc, arenaRepo, balanceRepo, auditRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
}

func openBattle() *domain.Battle {
	return &domain.Battle{ID: battleID, Title: "alpha vs beta", CreatedAt: testNow.Add(-time.Hour)}
}

func TestPlaceStake(t *testing.T) {
	ctx := context.Background()
	userID := 3

	t.Run("debits across categories in priority order", func(t *testing.T) {
		svc, arenaRepo, balanceRepo, _, txManager := setup(t)
		passthroughTx(txManager)

		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil)
		balanceRepo.EXPECT().GetUserBalance(gomock.Any(), userID).Return(&domain.Balance{
			UserID:         userID,
			MiningSubtotal: 60,
			TaskSubtotal:   30,
			SocialSubtotal: 100,
			Total:          190,
		}, nil)
		// 100 drains mining fully, then task fully, then 10 from social
		gomock.InOrder(
			balanceRepo.EXPECT().AddToCategory(gomock.Any(), userID, domain.CategoryMining, int64(-60)).Return(nil),
			balanceRepo.EXPECT().AddToCategory(gomock.Any(), userID, domain.CategoryTask, int64(-30)).Return(nil),
			balanceRepo.EXPECT().AddToCategory(gomock.Any(), userID, domain.CategorySocial, int64(-10)).Return(nil),
		)
		arenaRepo.EXPECT().InsertStake(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, stake *domain.StakeVote) (bool, error) {
				stake.ID = 11
				return true, nil
			})

		stake, err := svc.PlaceStake(ctx, userID, battleID, "alpha", 100)
		assert.NoError(t, err)
		assert.Equal(t, 11, stake.ID)
		assert.Equal(t, int64(100), stake.Amount)
		assert.Equal(t, "alpha", stake.Side)
	})

	t.Run("single category covers the whole stake", func(t *testing.T) {
		svc, arenaRepo, balanceRepo, _, txManager := setup(t)
		passthroughTx(txManager)

		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil)
		balanceRepo.EXPECT().GetUserBalance(gomock.Any(), userID).Return(&domain.Balance{
			UserID: userID, MiningSubtotal: 500, Total: 500,
		}, nil)
		balanceRepo.EXPECT().AddToCategory(gomock.Any(), userID, domain.CategoryMining, int64(-40)).Return(nil)
		arenaRepo.EXPECT().InsertStake(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.PlaceStake(ctx, userID, battleID, "beta", 40)
		assert.NoError(t, err)
	})

	t.Run("battle settled mid-transaction rolls the debit back", func(t *testing.T) {
		svc, arenaRepo, balanceRepo, _, txManager := setup(t)
		passthroughTx(txManager)

		// FindBattle still saw the battle open, but by the time the insert
		// runs a settlement has won the settled mark
		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil)
		balanceRepo.EXPECT().GetUserBalance(gomock.Any(), userID).Return(&domain.Balance{
			UserID: userID, MiningSubtotal: 500, Total: 500,
		}, nil)
		balanceRepo.EXPECT().AddToCategory(gomock.Any(), userID, domain.CategoryMining, int64(-200)).Return(nil)
		arenaRepo.EXPECT().InsertStake(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.PlaceStake(ctx, userID, battleID, "beta", 200)
		assert.ErrorIs(t, err, ErrBattleClosed)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		svc, arenaRepo, balanceRepo, _, txManager := setup(t)
		passthroughTx(txManager)

		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil)
		balanceRepo.EXPECT().GetUserBalance(gomock.Any(), userID).Return(&domain.Balance{
			UserID: userID, MiningSubtotal: 50, Total: 50,
		}, nil)

		_, err := svc.PlaceStake(ctx, userID, battleID, "alpha", 100)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("battle not found", func(t *testing.T) {
		svc, arenaRepo, _, _, _ := setup(t)
		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(nil, nil)

		_, err := svc.PlaceStake(ctx, userID, battleID, "alpha", 10)
		assert.ErrorIs(t, err, ErrBattleNotFound)
	})

	t.Run("settled battle rejects stakes", func(t *testing.T) {
		svc, arenaRepo, _, _, _ := setup(t)
		settled := openBattle()
		settledAt := testNow.Add(-time.Minute)
		settled.SettledAt = &settledAt
		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(settled, nil)

		_, err := svc.PlaceStake(ctx, userID, battleID, "alpha", 10)
		assert.ErrorIs(t, err, ErrBattleClosed)
	})

	t.Run("invalid amount", func(t *testing.T) {
		svc, _, _, _, _ := setup(t)
		_, err := svc.PlaceStake(ctx, userID, battleID, "alpha", 0)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing side", func(t *testing.T) {
		svc, _, _, _, _ := setup(t)
		_, err := svc.PlaceStake(ctx, userID, battleID, "", 10)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	stakes := []domain.StakeVote{
		{ID: 1, BattleID: battleID, UserID: 1, Side: "alpha", Amount: 100},
		{ID: 2, BattleID: battleID, UserID: 2, Side: "beta", Amount: 200},
		{ID: 3, BattleID: battleID, UserID: 3, Side: "alpha", Amount: 50},
	}

	t.Run("pays the pool out zero-sum to winners", func(t *testing.T) {
		svc, arenaRepo, balanceRepo, auditRepo, txManager := setup(t)
		passthroughTx(txManager)

		// the stake snapshot must come after the settled mark is won
		gomock.InOrder(
			arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil),
			arenaRepo.EXPECT().MarkSettled(gomock.Any(), battleID, "alpha", testNow).Return(true, nil),
			arenaRepo.EXPECT().ListStakes(gomock.Any(), battleID).Return(stakes, nil),
		)

		// pool 350 over winning pool 150: floor payouts 233 and 116,
		// remainder 1 goes to the larger stake
		arenaRepo.EXPECT().InsertEarning(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		balanceRepo.EXPECT().AddToCategory(gomock.Any(), 1, domain.CategorySocial, int64(234)).Return(nil)
		balanceRepo.EXPECT().AddToCategory(gomock.Any(), 3, domain.CategorySocial, int64(116)).Return(nil)
		auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.AuditLogEntry) (*domain.AuditLogEntry, error) {
				assert.Equal(t, domain.AuditActionSettled, entry.Action)
				assert.Contains(t, entry.Note, battleID)
				return entry, nil
			}).Times(2)

		result, err := svc.Settle(ctx, battleID, "alpha")
		assert.NoError(t, err)
		assert.Equal(t, StatusSettled, result.Status)
		assert.Equal(t, int64(350), result.TotalPool)
		assert.Equal(t, int64(150), result.WinningPool)

		var paid int64
		for _, p := range result.Payouts {
			paid += p.Amount
		}
		assert.Equal(t, result.TotalPool, paid)
	})

	t.Run("already settled battle is a no-op", func(t *testing.T) {
		svc, arenaRepo, _, _, _ := setup(t)
		settled := openBattle()
		settledAt := testNow.Add(-time.Hour)
		winner := "beta"
		settled.SettledAt = &settledAt
		settled.WinningSide = &winner
		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(settled, nil)

		result, err := svc.Settle(ctx, battleID, "alpha")
		assert.NoError(t, err)
		assert.Equal(t, StatusAlreadySettled, result.Status)
		assert.Equal(t, "beta", result.WinningSide)
		assert.Empty(t, result.Payouts)
	})

	t.Run("lost settlement race is a no-op", func(t *testing.T) {
		svc, arenaRepo, _, _, _ := setup(t)
		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil)
		arenaRepo.EXPECT().MarkSettled(gomock.Any(), battleID, "alpha", testNow).Return(false, nil)

		result, err := svc.Settle(ctx, battleID, "alpha")
		assert.NoError(t, err)
		assert.Equal(t, StatusAlreadySettled, result.Status)
		assert.Empty(t, result.Payouts)
	})

	t.Run("stake landing during settlement is still in the pool", func(t *testing.T) {
		svc, arenaRepo, balanceRepo, auditRepo, txManager := setup(t)
		passthroughTx(txManager)

		// a stake debited just before the settled mark is won must be in
		// the snapshot, otherwise its points would vanish from the books
		lateStakes := append(append([]domain.StakeVote{}, stakes...),
			domain.StakeVote{ID: 4, BattleID: battleID, UserID: 4, Side: "beta", Amount: 200})
		gomock.InOrder(
			arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil),
			arenaRepo.EXPECT().MarkSettled(gomock.Any(), battleID, "alpha", testNow).Return(true, nil),
			arenaRepo.EXPECT().ListStakes(gomock.Any(), battleID).Return(lateStakes, nil),
		)
		arenaRepo.EXPECT().InsertEarning(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		balanceRepo.EXPECT().AddToCategory(gomock.Any(), gomock.Any(), domain.CategorySocial, gomock.Any()).Return(nil).Times(2)
		auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry *domain.AuditLogEntry) (*domain.AuditLogEntry, error) {
				return entry, nil
			}).Times(2)

		result, err := svc.Settle(ctx, battleID, "alpha")
		assert.NoError(t, err)
		assert.Equal(t, int64(550), result.TotalPool)

		var paid int64
		for _, p := range result.Payouts {
			paid += p.Amount
		}
		assert.Equal(t, result.TotalPool, paid)
	})

	t.Run("stake snapshot failure rolls back the settled mark", func(t *testing.T) {
		svc, arenaRepo, _, _, _ := setup(t)
		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil)
		arenaRepo.EXPECT().MarkSettled(gomock.Any(), battleID, "alpha", testNow).Return(true, nil)
		arenaRepo.EXPECT().ListStakes(gomock.Any(), battleID).Return(nil, errors.New("connection reset"))
		arenaRepo.EXPECT().ClearSettled(gomock.Any(), battleID).Return(nil)

		_, err := svc.Settle(ctx, battleID, "alpha")
		assert.ErrorIs(t, err, ErrTransientStore)
	})

	t.Run("no winning stakes forfeits the pool", func(t *testing.T) {
		svc, arenaRepo, _, _, _ := setup(t)
		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil)
		arenaRepo.EXPECT().MarkSettled(gomock.Any(), battleID, "alpha", testNow).Return(true, nil)
		arenaRepo.EXPECT().ListStakes(gomock.Any(), battleID).Return([]domain.StakeVote{
			{ID: 1, BattleID: battleID, UserID: 1, Side: "beta", Amount: 100},
		}, nil)

		result, err := svc.Settle(ctx, battleID, "alpha")
		assert.NoError(t, err)
		assert.Equal(t, StatusSettled, result.Status)
		assert.Empty(t, result.Payouts)
		assert.Equal(t, int64(0), result.WinningPool)
	})

	t.Run("payout failure rolls back the settled mark", func(t *testing.T) {
		svc, arenaRepo, _, _, txManager := setup(t)

		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(openBattle(), nil)
		arenaRepo.EXPECT().ListStakes(gomock.Any(), battleID).Return(stakes, nil)
		arenaRepo.EXPECT().MarkSettled(gomock.Any(), battleID, "alpha", testNow).Return(true, nil)
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
		arenaRepo.EXPECT().ClearSettled(gomock.Any(), battleID).Return(nil)

		_, err := svc.Settle(ctx, battleID, "alpha")
		assert.ErrorIs(t, err, ErrTransientStore)
	})

	t.Run("battle not found", func(t *testing.T) {
		svc, arenaRepo, _, _, _ := setup(t)
		arenaRepo.EXPECT().FindBattle(gomock.Any(), battleID).Return(nil, nil)

		_, err := svc.Settle(ctx, battleID, "alpha")
		assert.ErrorIs(t, err, ErrBattleNotFound)
	})

	t.Run("missing winning side", func(t *testing.T) {
		svc, _, _, _, _ := setup(t)
		_, err := svc.Settle(ctx, battleID, "")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestComputePayouts(t *testing.T) {
	tests := []struct {
		name        string
		stakes      []domain.StakeVote
		winningSide string
		want        []Payout
	}{
		{
			name: "even split no remainder",
			stakes: []domain.StakeVote{
				{ID: 1, UserID: 1, Side: "a", Amount: 100},
				{ID: 2, UserID: 2, Side: "a", Amount: 100},
				{ID: 3, UserID: 3, Side: "b", Amount: 200},
			},
			winningSide: "a",
			want: []Payout{
				{UserID: 1, StakeID: 1, Amount: 200},
				{UserID: 2, StakeID: 2, Amount: 200},
			},
		},
		{
			name: "remainder goes to the largest winning stake",
			stakes: []domain.StakeVote{
				{ID: 1, UserID: 1, Side: "a", Amount: 100},
				{ID: 2, UserID: 2, Side: "b", Amount: 200},
				{ID: 3, UserID: 3, Side: "a", Amount: 50},
			},
			winningSide: "a",
			want: []Payout{
				{UserID: 1, StakeID: 1, Amount: 234},
				{UserID: 3, StakeID: 3, Amount: 116},
			},
		},
		{
			name: "single winner takes everything",
			stakes: []domain.StakeVote{
				{ID: 1, UserID: 1, Side: "a", Amount: 30},
				{ID: 2, UserID: 2, Side: "b", Amount: 300},
			},
			winningSide: "a",
			want: []Payout{
				{UserID: 1, StakeID: 1, Amount: 330},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var totalPool, winningPool int64
			for _, st := range tt.stakes {
				totalPool += st.Amount
				if st.Side == tt.winningSide {
					winningPool += st.Amount
				}
			}
			got := computePayouts(tt.stakes, tt.winningSide, totalPool, winningPool)
			assert.Equal(t, tt.want, got)

			var paid int64
			for _, p := range got {
				paid += p.Amount
			}
			assert.Equal(t, totalPool, paid)
		})
	}
}
