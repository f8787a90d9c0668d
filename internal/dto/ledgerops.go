package dto

type SweepRequestDTO struct {
	BatchSize int  `json:"batchSize,omitempty" example:"100"`
	DryRun    bool `json:"dryRun,omitempty" example:"false"`
}

type ReconcileRequestDTO struct {
	BatchSize int  `json:"batchSize,omitempty" example:"100"`
	Offset    int  `json:"offset,omitempty" example:"0"`
	DryRun    bool `json:"dryRun,omitempty" example:"false"`
	UserID    *int `json:"user_id,omitempty" example:"7"`
}

type ClampRequestDTO struct {
	BatchSize int     `json:"batchSize,omitempty" example:"100"`
	Offset    int     `json:"offset,omitempty" example:"0"`
	Threshold float64 `json:"threshold,omitempty" example:"1.5"`
	DryRun    bool    `json:"dryRun,omitempty" example:"false"`
	UserID    *int    `json:"user_id,omitempty" example:"7"`
}
