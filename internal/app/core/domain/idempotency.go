package domain

import (
	"slices"

	"github.com/google/uuid"
)

// CommandRecord 已提交指令的冪等紀錄
// 保留指令的識別欄位與原本的結果，隨快照一起持久化，
// 重啟後同一個 CommandID 重送仍能拿到相同結果
type CommandRecord struct {
	CommandID  uuid.UUID   `json:"id"`
	Caller     Principal   `json:"caller"`
	Type       CommandType `json:"type"`
	AccountID  int64       `json:"account_id,omitempty"`
	WithdrawID int64       `json:"withdraw_id,omitempty"`
	Amount     int64       `json:"amount,omitempty"`
	Result     Result      `json:"result"`
}

func newCommandRecord(cmd *Command, res *Result) *CommandRecord {
	return &CommandRecord{
		CommandID:  cmd.CommandID,
		Caller:     cmd.Caller,
		Type:       cmd.Type,
		AccountID:  cmd.AccountID,
		WithdrawID: cmd.WithdrawID,
		Amount:     cmd.Amount,
		Result:     res.Clone(),
	}
}

// Matches 指令是否與紀錄相同 (同一呼叫者、同類型、同目標與金額)
func (r *CommandRecord) Matches(cmd *Command) bool {
	return r.Caller == cmd.Caller &&
		r.Type == cmd.Type &&
		r.AccountID == cmd.AccountID &&
		r.WithdrawID == cmd.WithdrawID &&
		r.Amount == cmd.Amount
}

// Clone 深拷貝
func (r CommandRecord) Clone() CommandRecord {
	r.Result = r.Result.Clone()
	return r
}

// Clone 深拷貝 (Payout 與事件的擁有者清單)
func (r Result) Clone() Result {
	if r.Payout != nil {
		payout := *r.Payout
		r.Payout = &payout
	}
	r.Event.Owners = slices.Clone(r.Event.Owners)
	return r
}

// Processed 查詢指令是否已提交過
//
// 參數:
//
//	cmd: 待提交的指令，CommandID 為 uuid.Nil 時不做冪等檢查
//
// 回傳:
//
//	*Result: 原本的結果 (副本)
//	bool: 是否已提交
//	error: CommandID 已被不同內容的指令使用 (ErrCommandIDConflict)
func (s *State) Processed(cmd *Command) (*Result, bool, error) {
	if cmd.CommandID == uuid.Nil {
		return nil, false, nil
	}
	rec, ok := s.processed[cmd.CommandID]
	if !ok {
		return nil, false, nil
	}
	if !rec.Matches(cmd) {
		return nil, false, ErrCommandIDConflict
	}
	res := rec.Result.Clone()
	return &res, true, nil
}

func (s *State) checkCommandID(cmd *Command) error {
	if cmd.CommandID == uuid.Nil {
		return nil
	}
	if _, dup := s.processed[cmd.CommandID]; dup {
		return ErrCommandIDConflict
	}
	return nil
}

func (s *State) remember(cmd *Command, res *Result) {
	if cmd.CommandID == uuid.Nil {
		return
	}
	s.processed[cmd.CommandID] = newCommandRecord(cmd, res)
}
