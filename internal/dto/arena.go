package dto

type StakeRequestDTO struct {
	BattleID string `json:"battle_id" example:"b1c9f0a2-4d6e-4f1b-9c3d-2a7e8f5b6c4d"`
	Side     string `json:"side" example:"alpha"`
	Amount   int64  `json:"amount" example:"100"`
}

type StakeResponseDTO struct {
	StakeID  int    `json:"stake_id" example:"11"`
	BattleID string `json:"battle_id" example:"b1c9f0a2-4d6e-4f1b-9c3d-2a7e8f5b6c4d"`
	Side     string `json:"side" example:"alpha"`
	Amount   int64  `json:"amount" example:"100"`
}

type SettleRequestDTO struct {
	BattleID    string `json:"battle_id" example:"b1c9f0a2-4d6e-4f1b-9c3d-2a7e8f5b6c4d"`
	WinningSide string `json:"winning_side" example:"alpha"`
}

type SettlePayoutDTO struct {
	UserID int   `json:"user_id" example:"3"`
	Amount int64 `json:"amount" example:"234"`
}

type SettleResponseDTO struct {
	BattleID    string            `json:"battle_id"`
	WinningSide string            `json:"winning_side" example:"alpha"`
	Status      string            `json:"status" example:"settled"`
	TotalPool   int64             `json:"total_pool" example:"350"`
	WinningPool int64             `json:"winning_pool" example:"150"`
	Multiplier  float64           `json:"multiplier" example:"2.33"`
	Payouts     []SettlePayoutDTO `json:"payouts"`
}
