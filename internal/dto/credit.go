package dto

import "time"

type CreditRequestDTO struct {
	Type      string `json:"type" example:"mining"`
	Amount    int64  `json:"amount" example:"50"`
	SessionID string `json:"session_id,omitempty" example:"7d444840-9dc0-11d1-b245-5ffdce74fad2"`
	ProofID   *int   `json:"proof_id,omitempty" example:"42"`
}

type CreditResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"credited"`
	Points  int64  `json:"points" example:"50"`
	Balance int64  `json:"balance" example:"1250"`
}

type SessionStartResponseDTO struct {
	SessionID string    `json:"session_id" example:"7d444840-9dc0-11d1-b245-5ffdce74fad2"`
	StartedAt time.Time `json:"started_at" example:"2024-06-01T12:00:00Z"`
}
