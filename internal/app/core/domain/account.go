package domain

import (
	"math"
	"slices"
)

// Account 共同持有的帳戶
type Account struct {
	ID      int64       `json:"id"`
	Owners  []Principal `json:"owners"`
	Balance int64       `json:"balance"`
}

func NewAccount(id int64, owners []Principal, balance int64) *Account {
	return &Account{
		ID:      id,
		Owners:  slices.Clone(owners),
		Balance: balance,
	}
}

// IsOwner 是否為帳戶擁有者
func (a *Account) IsOwner(p Principal) bool {
	return slices.Contains(a.Owners, p)
}

// Deposit 存款
func (a *Account) Deposit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Balance > math.MaxInt64-amount {
		return ErrBalanceOverflow
	}

	a.Balance = a.Balance + amount
	return nil
}

// Withdraw 提款
func (a *Account) Withdraw(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if a.Balance < amount {
		return ErrInsufficientBalanceAtExecution
	}

	a.Balance = a.Balance - amount
	return nil
}

// Clone 深拷貝，避免外部修改內部狀態
func (a *Account) Clone() Account {
	return Account{
		ID:      a.ID,
		Owners:  slices.Clone(a.Owners),
		Balance: a.Balance,
	}
}
