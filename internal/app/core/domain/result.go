package domain

import "github.com/google/uuid"

// Payout 執行提款後需要由外部環境實際轉出的金額
type Payout struct {
	Recipient Principal `json:"recipient"`
	Amount    int64     `json:"amount"`
}

// Result 指令提交結果
type Result struct {
	Sequence   uint64    `json:"seq"`
	CommandID  uuid.UUID `json:"id"`
	AccountID  int64     `json:"account_id"`
	WithdrawID int64     `json:"withdraw_id,omitempty"`
	// Balance: 提交後的帳戶餘額
	Balance int64   `json:"balance"`
	Payout  *Payout `json:"payout,omitempty"`
	Event   Event   `json:"event"`
}
