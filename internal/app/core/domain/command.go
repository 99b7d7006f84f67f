package domain

import "github.com/google/uuid"

// CommandType 指令類型
// 為了節省記憶體，使用 uint8
type CommandType uint8

const (
	// 開戶
	CommandCreateAccount CommandType = 1
	// 存款
	CommandDeposit CommandType = 2
	// 提款請求
	CommandRequestWithdrawal CommandType = 3
	// 核准
	CommandApproveRequest CommandType = 4
	// 執行提款
	CommandWithdraw CommandType = 5
)

func (t CommandType) String() string {
	switch t {
	case CommandCreateAccount:
		return "create_account"
	case CommandDeposit:
		return "deposit"
	case CommandRequestWithdrawal:
		return "request_withdrawal"
	case CommandApproveRequest:
		return "approve_request"
	case CommandWithdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}

// Command 會改變帳本狀態的操作，寫入 WAL 供重放
type Command struct {
	// Sequence: 全局唯一的順序號 (由核心引擎分配，1, 2, 3...)
	// 只有成功提交的指令才會取得序號，與事件序號一致
	Sequence uint64 `json:"seq"`
	// CommandID: 外部追蹤號 (UUID)，用於冪等
	CommandID uuid.UUID `json:"id"`
	// Caller: 呼叫者
	Caller Principal `json:"caller"`
	// AccountID, WithdrawID: 目標帳戶與請求
	AccountID  int64 `json:"account_id,omitempty"`
	WithdrawID int64 `json:"withdraw_id,omitempty"`
	// CoOwners: 開戶時的共同擁有者 (不含建立者)
	CoOwners []Principal `json:"co_owners,omitempty"`
	// Amount: 金額 (開戶時為初始存入金額)
	Amount int64 `json:"amount,omitempty"`
	// CreatedAt: 指令時間 (UnixNano)，重放時沿用以確保事件時間一致
	CreatedAt int64       `json:"created_at"`
	Type      CommandType `json:"type"`
}
