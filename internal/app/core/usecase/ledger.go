package usecase

import (
	"context"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
)

// Ledger 是帳務系統的介面
//
// 實作必須保證所有 Submit 依序 (serialized) 執行，且每一筆要嘛完整提交、要嘛完全不生效。
type Ledger interface {
	// Submit 提交一筆會改變狀態的指令，不再分 Deposit/Withdraw，直接看 cmd.Type 決定
	Submit(ctx context.Context, cmd *domain.Command) (*domain.Result, error)
	// Read 在與寫入互斥的情況下讀取狀態，fn 不可修改 state 也不可保留其參考
	Read(ctx context.Context, fn func(state *domain.State) error) error
}

// EventPublisher 接收已提交的事件 (依提交順序)
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// EventLog 持久化的事件紀錄
type EventLog interface {
	EventPublisher
	// ReadFrom 讀取序號大於 after 的事件，最多 limit 筆
	ReadFrom(ctx context.Context, after uint64, limit int) ([]domain.Event, error)
	// ReadAccount 讀取單一帳戶序號大於 after 的事件
	ReadAccount(ctx context.Context, accountID int64, after uint64, limit int) ([]domain.Event, error)
}

// EventSubscriber 即時事件訂閱
type EventSubscriber interface {
	// Subscribe 回傳事件 channel 與取消函式；訂閱者跟不上時 channel 會被關閉
	Subscribe(buffer int) (<-chan domain.Event, func())
}

// SnapshotStore 快照儲存
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error
	// LoadSnapshot 沒有快照時回傳 nil, nil
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
}
