package domain

// Snapshot 帳本完整狀態，用於持久化與啟動時載入
type Snapshot struct {
	// Sequence: 快照包含的最後一個指令序號，重放 WAL 時跳過 <= Sequence 的紀錄
	Sequence      uint64              `json:"seq"`
	NextAccountID int64               `json:"next_account_id"`
	Accounts      []Account           `json:"accounts"`
	Withdrawals   []WithdrawalRequest `json:"withdrawals"`
	// Commands: 冪等紀錄，依序號排序
	Commands []CommandRecord `json:"commands"`
}
