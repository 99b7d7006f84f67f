package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOwnerSet 擁有者數量錯誤、重複擁有者，或建立者同時出現在共同擁有者中
	ErrInvalidOwnerSet = errors.New("invalid owner set")

	// ErrInsufficientFunding 開戶金額低於最低門檻
	ErrInsufficientFunding = errors.New("insufficient funding")

	// ErrOwnerAccountLimitExceeded 擁有者帳戶數超過上限
	ErrOwnerAccountLimitExceeded = errors.New("owner account limit exceeded")

	// ErrNotAnOwner 呼叫者不是帳戶擁有者
	ErrNotAnOwner = errors.New("not an owner")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrRequestNotFound 找不到提款請求
	ErrRequestNotFound = errors.New("request not found")

	// ErrInvalidAmount 金額必須為正數
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrSelfApprovalForbidden 請求者不可核准自己的請求
	ErrSelfApprovalForbidden = errors.New("self approval forbidden")

	// ErrDuplicateApproval 同一擁有者重複核准
	ErrDuplicateApproval = errors.New("duplicate approval")

	// ErrRequestAlreadyExecuted 請求已執行
	ErrRequestAlreadyExecuted = errors.New("request already executed")

	// ErrQuorumNotMet 核准數不足
	ErrQuorumNotMet = errors.New("quorum not met")

	// ErrInsufficientBalanceAtExecution 執行時餘額不足
	ErrInsufficientBalanceAtExecution = errors.New("insufficient balance at execution")

	// ErrUnknownCommand 未知的指令類型
	ErrUnknownCommand = errors.New("unknown command type")

	// ErrWALWriteFailed 寫入 WAL 失敗
	ErrWALWriteFailed = errors.New("wal write failed")

	// ErrLedgerClosed 帳本已關閉
	ErrLedgerClosed = errors.New("ledger closed")

	// ErrCommandIDConflict 同一個 CommandID 被用在不同的指令上
	ErrCommandIDConflict = errors.New("command id conflict")
)

var (
	// ErrAmountExceedsBalance 請求金額大於目前餘額
	ErrAmountExceedsBalance = fmt.Errorf("%w: amount exceeds balance", ErrInvalidAmount)

	// ErrBalanceOverflow 存款後餘額溢位
	ErrBalanceOverflow = fmt.Errorf("%w: balance overflow", ErrInvalidAmount)

	// ErrNotRequester 只有請求者可以執行提款，非擁有者同樣符合 ErrNotAnOwner
	ErrNotRequester = fmt.Errorf("%w: caller is not the requester", ErrNotAnOwner)
)

var (
	// ErrSequenceGap 指令序號不連續 (WAL 或快照損毀)
	ErrSequenceGap = errors.New("sequence gap")

	// ErrCorruptSnapshot 快照不符合帳本不變量
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
