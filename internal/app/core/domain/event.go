package domain

// EventType 事件類型
type EventType string

const (
	EventAccountCreated    EventType = "AccountCreated"
	EventDeposit           EventType = "Deposit"
	EventWithdrawRequested EventType = "WithdrawRequested"
	EventWithdrawApproved  EventType = "WithdrawApproved"
	EventWithdraw          EventType = "Withdraw"
)

// Event 狀態轉移後發出的事件，依提交順序排列
//
// 各類型使用的欄位:
//
//	AccountCreated:    Owners, AccountID
//	Deposit:           Owner, AccountID, Amount
//	WithdrawRequested: Owner, AccountID, WithdrawID, Amount
//	WithdrawApproved:  AccountID, WithdrawID (不帶核准者)
//	Withdraw:          Owner, AccountID, WithdrawID, Amount
type Event struct {
	Sequence   uint64      `json:"seq"`
	Type       EventType   `json:"type"`
	Owners     []Principal `json:"owners,omitempty"`
	Owner      Principal   `json:"owner,omitempty"`
	AccountID  int64       `json:"account_id"`
	WithdrawID int64       `json:"withdraw_id,omitempty"`
	Amount     int64       `json:"amount,omitempty"`
	// Timestamp: UnixNano
	Timestamp int64 `json:"timestamp"`
}
