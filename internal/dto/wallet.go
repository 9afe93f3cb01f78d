package dto

import "time"

type BalanceResponseDTO struct {
	BalanceCents int64 `json:"balance_cents" example:"12500"`
}

type DepositRequestDTO struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0" example:"5000"`
	CardNumber  string `json:"card_number" validate:"required" example:"4561261212345467"`
}

type WithdrawRequestDTO struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0" example:"4000"`
	CardNumber  string `json:"card_number" validate:"required" example:"4561261212345467"`
}

type WalletEntryResponseDTO struct {
	ID          int       `json:"id" example:"12"`
	AmountCents int64     `json:"amount_cents" example:"-4000"`
	Reason      string    `json:"reason" example:"withdrawal"`
	Reference   string    `json:"reference" example:"2c3f4e1a-9f7d-4b3e-8f1a-2c3f4e1a9f7d"`
	CreatedAt   time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
