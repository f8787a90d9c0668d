package dto

type BalanceResponseDTO struct {
	Mining   int64 `json:"mining" example:"480"`
	Task     int64 `json:"task" example:"200"`
	Social   int64 `json:"social" example:"150"`
	Referral int64 `json:"referral" example:"100"`
	Total    int64 `json:"total" example:"930"`
}
