package domain

import (
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// State 帳本的完整狀態 (帳戶、提款請求、使用者索引)
//
// State 本身不是 thread-safe，呼叫者必須確保同一時間只有一個寫入者
// (見 adapter/out/memory 的 MutexLedger / LMAXLedger)。
// 每個操作都先完成全部驗證才修改狀態，失敗時狀態不變。
type State struct {
	rules    Rules
	accounts map[int64]*Account
	// withdrawals[accountID][withdrawID-1]
	withdrawals map[int64][]*WithdrawalRequest
	// userIndex 使用者擁有的帳戶，只增不減
	userIndex map[Principal][]int64
	// processed 已提交指令的冪等紀錄 (CommandID -> 紀錄)
	processed     map[uuid.UUID]*CommandRecord
	nextAccountID int64
	sequence      uint64
}

// NewState 建立空的帳本狀態
func NewState(rules Rules) *State {
	return &State{
		rules:         rules.WithDefaults(),
		accounts:      make(map[int64]*Account),
		withdrawals:   make(map[int64][]*WithdrawalRequest),
		userIndex:     make(map[Principal][]int64),
		processed:     make(map[uuid.UUID]*CommandRecord),
		nextAccountID: 1,
	}
}

// Rules 回傳目前規則
func (s *State) Rules() Rules {
	return s.rules
}

// Sequence 最後提交的指令序號
func (s *State) Sequence() uint64 {
	return s.sequence
}

// Validate 執行與 Apply 相同的檢查，但不修改狀態
func (s *State) Validate(cmd *Command) error {
	if err := s.checkSequence(cmd); err != nil {
		return err
	}
	if err := s.checkCommandID(cmd); err != nil {
		return err
	}
	var err error
	switch cmd.Type {
	case CommandCreateAccount:
		_, err = s.validateCreateAccount(cmd)
	case CommandDeposit:
		_, err = s.validateDeposit(cmd)
	case CommandRequestWithdrawal:
		_, err = s.validateRequestWithdrawal(cmd)
	case CommandApproveRequest:
		_, _, err = s.validateApproveRequest(cmd)
	case CommandWithdraw:
		_, _, err = s.validateWithdraw(cmd)
	default:
		err = ErrUnknownCommand
	}
	return err
}

// Apply 驗證並提交指令
//
// 參數:
//
//	cmd: 指令，Sequence 為 0 時自動分配下一個序號
//
// 回傳:
//
//	*Result: 提交結果 (含事件)
//	error: 驗證失敗，狀態不變
func (s *State) Apply(cmd *Command) (*Result, error) {
	if err := s.checkSequence(cmd); err != nil {
		return nil, err
	}
	if err := s.checkCommandID(cmd); err != nil {
		return nil, err
	}

	var (
		res *Result
		err error
	)
	switch cmd.Type {
	case CommandCreateAccount:
		res, err = s.createAccount(cmd)
	case CommandDeposit:
		res, err = s.deposit(cmd)
	case CommandRequestWithdrawal:
		res, err = s.requestWithdrawal(cmd)
	case CommandApproveRequest:
		res, err = s.approveRequest(cmd)
	case CommandWithdraw:
		res, err = s.withdraw(cmd)
	default:
		err = ErrUnknownCommand
	}
	if err != nil {
		return nil, err
	}

	s.sequence++
	cmd.Sequence = s.sequence
	res.Sequence = s.sequence
	res.CommandID = cmd.CommandID
	res.Event.Sequence = s.sequence
	res.Event.Timestamp = cmd.CreatedAt
	s.remember(cmd, res)
	return res, nil
}

func (s *State) checkSequence(cmd *Command) error {
	if cmd.Sequence != 0 && cmd.Sequence != s.sequence+1 {
		return fmt.Errorf("%w: expected %d, got %d", ErrSequenceGap, s.sequence+1, cmd.Sequence)
	}
	return nil
}

func (s *State) validateCreateAccount(cmd *Command) ([]Principal, error) {
	total := len(cmd.CoOwners) + 1
	if total < MinOwners || total > MaxOwners {
		return nil, ErrInvalidOwnerSet
	}

	owners := make([]Principal, 0, total)
	owners = append(owners, cmd.Caller)
	owners = append(owners, cmd.CoOwners...)
	seen := make(map[Principal]struct{}, total)
	for _, owner := range owners {
		if owner.IsZero() {
			return nil, ErrInvalidOwnerSet
		}
		if _, dup := seen[owner]; dup {
			return nil, ErrInvalidOwnerSet
		}
		seen[owner] = struct{}{}
	}

	if cmd.Amount < s.rules.MinFunding {
		return nil, ErrInsufficientFunding
	}

	for _, owner := range owners {
		if len(s.userIndex[owner]) >= MaxAccountsPerOwner {
			return nil, ErrOwnerAccountLimitExceeded
		}
	}
	return owners, nil
}

func (s *State) createAccount(cmd *Command) (*Result, error) {
	owners, err := s.validateCreateAccount(cmd)
	if err != nil {
		return nil, err
	}

	id := s.nextAccountID
	s.nextAccountID++
	s.accounts[id] = NewAccount(id, owners, cmd.Amount)
	for _, owner := range owners {
		s.userIndex[owner] = append(s.userIndex[owner], id)
	}

	return &Result{
		AccountID: id,
		Balance:   cmd.Amount,
		Event: Event{
			Type:      EventAccountCreated,
			Owners:    slices.Clone(owners),
			AccountID: id,
		},
	}, nil
}

// ownedAccount 取得帳戶並確認呼叫者為擁有者
func (s *State) ownedAccount(accountID int64, caller Principal) (*Account, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if !account.IsOwner(caller) {
		return nil, ErrNotAnOwner
	}
	return account, nil
}

func (s *State) request(accountID, withdrawID int64) (*WithdrawalRequest, error) {
	requests := s.withdrawals[accountID]
	if withdrawID < 1 || withdrawID > int64(len(requests)) {
		return nil, ErrRequestNotFound
	}
	return requests[withdrawID-1], nil
}

func (s *State) validateDeposit(cmd *Command) (*Account, error) {
	account, err := s.ownedAccount(cmd.AccountID, cmd.Caller)
	if err != nil {
		return nil, err
	}
	if cmd.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	after := *account
	if err := after.Deposit(cmd.Amount); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *State) deposit(cmd *Command) (*Result, error) {
	account, err := s.validateDeposit(cmd)
	if err != nil {
		return nil, err
	}
	if err := account.Deposit(cmd.Amount); err != nil {
		return nil, err
	}

	return &Result{
		AccountID: account.ID,
		Balance:   account.Balance,
		Event: Event{
			Type:      EventDeposit,
			Owner:     cmd.Caller,
			AccountID: account.ID,
			Amount:    cmd.Amount,
		},
	}, nil
}

func (s *State) validateRequestWithdrawal(cmd *Command) (*Account, error) {
	account, err := s.ownedAccount(cmd.AccountID, cmd.Caller)
	if err != nil {
		return nil, err
	}
	if cmd.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	// 只做事前檢查，不保留資金；執行時會再檢查一次
	if cmd.Amount > account.Balance {
		return nil, ErrAmountExceedsBalance
	}
	return account, nil
}

func (s *State) requestWithdrawal(cmd *Command) (*Result, error) {
	account, err := s.validateRequestWithdrawal(cmd)
	if err != nil {
		return nil, err
	}

	id := int64(len(s.withdrawals[account.ID])) + 1
	s.withdrawals[account.ID] = append(s.withdrawals[account.ID], &WithdrawalRequest{
		ID:        id,
		AccountID: account.ID,
		Requester: cmd.Caller,
		Amount:    cmd.Amount,
	})

	return &Result{
		AccountID:  account.ID,
		WithdrawID: id,
		Balance:    account.Balance,
		Event: Event{
			Type:       EventWithdrawRequested,
			Owner:      cmd.Caller,
			AccountID:  account.ID,
			WithdrawID: id,
			Amount:     cmd.Amount,
		},
	}, nil
}

func (s *State) validateApproveRequest(cmd *Command) (*Account, *WithdrawalRequest, error) {
	account, ok := s.accounts[cmd.AccountID]
	if !ok {
		return nil, nil, ErrAccountNotFound
	}
	req, err := s.request(cmd.AccountID, cmd.WithdrawID)
	if err != nil {
		return nil, nil, err
	}
	if !account.IsOwner(cmd.Caller) {
		return nil, nil, ErrNotAnOwner
	}
	if req.Requester == cmd.Caller {
		return nil, nil, ErrSelfApprovalForbidden
	}
	if req.Executed {
		return nil, nil, ErrRequestAlreadyExecuted
	}
	if req.HasApproved(cmd.Caller) {
		return nil, nil, ErrDuplicateApproval
	}
	return account, req, nil
}

func (s *State) approveRequest(cmd *Command) (*Result, error) {
	account, req, err := s.validateApproveRequest(cmd)
	if err != nil {
		return nil, err
	}
	req.Approvals = append(req.Approvals, cmd.Caller)

	return &Result{
		AccountID:  account.ID,
		WithdrawID: req.ID,
		Balance:    account.Balance,
		Event: Event{
			Type:       EventWithdrawApproved,
			AccountID:  account.ID,
			WithdrawID: req.ID,
		},
	}, nil
}

func (s *State) validateWithdraw(cmd *Command) (*Account, *WithdrawalRequest, error) {
	account, ok := s.accounts[cmd.AccountID]
	if !ok {
		return nil, nil, ErrAccountNotFound
	}
	req, err := s.request(cmd.AccountID, cmd.WithdrawID)
	if err != nil {
		return nil, nil, err
	}
	if req.Requester != cmd.Caller {
		return nil, nil, ErrNotRequester
	}
	if req.Executed {
		return nil, nil, ErrRequestAlreadyExecuted
	}
	if !req.IsApproved(account.Owners) {
		return nil, nil, ErrQuorumNotMet
	}
	// 建立請求後餘額可能已被其他提款扣除
	if account.Balance < req.Amount {
		return nil, nil, ErrInsufficientBalanceAtExecution
	}
	return account, req, nil
}

func (s *State) withdraw(cmd *Command) (*Result, error) {
	account, req, err := s.validateWithdraw(cmd)
	if err != nil {
		return nil, err
	}
	if err := account.Withdraw(req.Amount); err != nil {
		return nil, err
	}
	req.Executed = true

	return &Result{
		AccountID:  account.ID,
		WithdrawID: req.ID,
		Balance:    account.Balance,
		Payout: &Payout{
			Recipient: req.Requester,
			Amount:    req.Amount,
		},
		Event: Event{
			Type:       EventWithdraw,
			Owner:      req.Requester,
			AccountID:  account.ID,
			WithdrawID: req.ID,
			Amount:     req.Amount,
		},
	}, nil
}

// Account 取得帳戶 (副本)
func (s *State) Account(accountID int64) (Account, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return account.Clone(), nil
}

// AccountBalance 取得帳戶餘額
func (s *State) AccountBalance(accountID int64) (int64, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return account.Balance, nil
}

// AccountOwners 取得帳戶擁有者
func (s *State) AccountOwners(accountID int64) ([]Principal, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return slices.Clone(account.Owners), nil
}

// UserAccounts 取得使用者擁有的帳戶 ID (依建立順序)
func (s *State) UserAccounts(p Principal) []int64 {
	ids := slices.Clone(s.userIndex[p])
	if ids == nil {
		return []int64{}
	}
	return ids
}

// Withdrawal 取得提款請求 (副本)
func (s *State) Withdrawal(accountID, withdrawID int64) (WithdrawalRequest, error) {
	if _, ok := s.accounts[accountID]; !ok {
		return WithdrawalRequest{}, ErrAccountNotFound
	}
	req, err := s.request(accountID, withdrawID)
	if err != nil {
		return WithdrawalRequest{}, err
	}
	return req.Clone(), nil
}

// WithdrawApprovals 取得已核准的擁有者
func (s *State) WithdrawApprovals(accountID, withdrawID int64) ([]Principal, error) {
	req, err := s.Withdrawal(accountID, withdrawID)
	if err != nil {
		return nil, err
	}
	if req.Approvals == nil {
		return []Principal{}, nil
	}
	return req.Approvals, nil
}

// ApprovalCount 取得核准數
func (s *State) ApprovalCount(accountID, withdrawID int64) (int, error) {
	approvals, err := s.WithdrawApprovals(accountID, withdrawID)
	if err != nil {
		return 0, err
	}
	return len(approvals), nil
}

// IsApproved 請求是否已達 quorum
func (s *State) IsApproved(accountID, withdrawID int64) (bool, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return false, ErrAccountNotFound
	}
	req, err := s.request(accountID, withdrawID)
	if err != nil {
		return false, err
	}
	return req.IsApproved(account.Owners), nil
}

// Snapshot 產生狀態的深拷貝，依帳戶 ID 排序
func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		Sequence:      s.sequence,
		NextAccountID: s.nextAccountID,
		Accounts:      make([]Account, 0, len(s.accounts)),
		Withdrawals:   make([]WithdrawalRequest, 0),
		Commands:      make([]CommandRecord, 0, len(s.processed)),
	}
	ids := make([]int64, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		snap.Accounts = append(snap.Accounts, s.accounts[id].Clone())
		for _, req := range s.withdrawals[id] {
			snap.Withdrawals = append(snap.Withdrawals, req.Clone())
		}
	}
	for _, rec := range s.processed {
		snap.Commands = append(snap.Commands, rec.Clone())
	}
	sort.Slice(snap.Commands, func(i, j int) bool {
		return snap.Commands[i].Result.Sequence < snap.Commands[j].Result.Sequence
	})
	return snap
}

// RestoreState 從快照重建狀態，並檢查帳本不變量
//
// 參數:
//
//	rules: 帳本規則
//	snap: 快照，nil 時回傳空狀態
//
// 回傳:
//
//	*State: 重建後的狀態
//	error: 快照不合法 (ErrCorruptSnapshot)
func RestoreState(rules Rules, snap *Snapshot) (*State, error) {
	s := NewState(rules)
	if snap == nil {
		return s, nil
	}

	accounts := slices.Clone(snap.Accounts)
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	for i := range accounts {
		account := accounts[i].Clone()
		if err := checkAccount(&account); err != nil {
			return nil, err
		}
		if _, dup := s.accounts[account.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate account %d", ErrCorruptSnapshot, account.ID)
		}
		for _, owner := range account.Owners {
			if len(s.userIndex[owner]) >= MaxAccountsPerOwner {
				return nil, fmt.Errorf("%w: owner %s exceeds account limit", ErrCorruptSnapshot, owner)
			}
			s.userIndex[owner] = append(s.userIndex[owner], account.ID)
		}
		s.accounts[account.ID] = &account
		if account.ID >= s.nextAccountID {
			s.nextAccountID = account.ID + 1
		}
	}
	if snap.NextAccountID > s.nextAccountID {
		s.nextAccountID = snap.NextAccountID
	}

	requests := slices.Clone(snap.Withdrawals)
	sort.Slice(requests, func(i, j int) bool {
		if requests[i].AccountID != requests[j].AccountID {
			return requests[i].AccountID < requests[j].AccountID
		}
		return requests[i].ID < requests[j].ID
	})
	for i := range requests {
		req := requests[i].Clone()
		account, ok := s.accounts[req.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: request %d references unknown account %d", ErrCorruptSnapshot, req.ID, req.AccountID)
		}
		if err := checkRequest(account, &req, int64(len(s.withdrawals[req.AccountID]))+1); err != nil {
			return nil, err
		}
		s.withdrawals[req.AccountID] = append(s.withdrawals[req.AccountID], &req)
	}

	for i := range snap.Commands {
		rec := snap.Commands[i].Clone()
		if rec.CommandID == uuid.Nil || rec.Result.Sequence == 0 || rec.Result.Sequence > snap.Sequence {
			return nil, fmt.Errorf("%w: invalid command record %s", ErrCorruptSnapshot, rec.CommandID)
		}
		if _, dup := s.processed[rec.CommandID]; dup {
			return nil, fmt.Errorf("%w: duplicate command record %s", ErrCorruptSnapshot, rec.CommandID)
		}
		s.processed[rec.CommandID] = &rec
	}

	s.sequence = snap.Sequence
	return s, nil
}

func checkAccount(a *Account) error {
	if a.ID <= 0 {
		return fmt.Errorf("%w: invalid account id %d", ErrCorruptSnapshot, a.ID)
	}
	if len(a.Owners) < MinOwners || len(a.Owners) > MaxOwners {
		return fmt.Errorf("%w: account %d has %d owners", ErrCorruptSnapshot, a.ID, len(a.Owners))
	}
	seen := make(map[Principal]struct{}, len(a.Owners))
	for _, owner := range a.Owners {
		if _, dup := seen[owner]; dup || owner.IsZero() {
			return fmt.Errorf("%w: account %d has invalid owner %q", ErrCorruptSnapshot, a.ID, owner)
		}
		seen[owner] = struct{}{}
	}
	if a.Balance < 0 {
		return fmt.Errorf("%w: account %d has negative balance", ErrCorruptSnapshot, a.ID)
	}
	return nil
}

func checkRequest(account *Account, req *WithdrawalRequest, expectedID int64) error {
	if req.ID != expectedID {
		return fmt.Errorf("%w: account %d expected request %d, got %d", ErrCorruptSnapshot, account.ID, expectedID, req.ID)
	}
	if req.Amount <= 0 || !account.IsOwner(req.Requester) {
		return fmt.Errorf("%w: account %d request %d is invalid", ErrCorruptSnapshot, account.ID, req.ID)
	}
	seen := make(map[Principal]struct{}, len(req.Approvals))
	for _, approver := range req.Approvals {
		_, dup := seen[approver]
		if dup || approver == req.Requester || !account.IsOwner(approver) {
			return fmt.Errorf("%w: account %d request %d has invalid approval %q", ErrCorruptSnapshot, account.ID, req.ID, approver)
		}
		seen[approver] = struct{}{}
	}
	return nil
}
