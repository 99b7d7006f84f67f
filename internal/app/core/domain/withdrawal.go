package domain

import "slices"

// WithdrawalRequest 提款請求，ID 只在所屬帳戶內唯一 (從 1 開始)
type WithdrawalRequest struct {
	ID        int64       `json:"id"`
	AccountID int64       `json:"account_id"`
	Requester Principal   `json:"requester"`
	Amount    int64       `json:"amount"`
	Approvals []Principal `json:"approvals"`
	Executed  bool        `json:"executed"`
}

// HasApproved 是否已核准過
func (w *WithdrawalRequest) HasApproved(p Principal) bool {
	return slices.Contains(w.Approvals, p)
}

// ApprovalCount 核准數
func (w *WithdrawalRequest) ApprovalCount() int {
	return len(w.Approvals)
}

// IsApproved 除請求者以外的所有擁有者皆已核准
//
// 參數:
//
//	owners: 帳戶擁有者
//
// 回傳:
//
//	bool: 是否達到 quorum
func (w *WithdrawalRequest) IsApproved(owners []Principal) bool {
	required := 0
	for _, owner := range owners {
		if owner == w.Requester {
			continue
		}
		if !w.HasApproved(owner) {
			return false
		}
		required++
	}
	return required > 0
}

// Clone 深拷貝
func (w *WithdrawalRequest) Clone() WithdrawalRequest {
	c := *w
	c.Approvals = slices.Clone(w.Approvals)
	return c
}
