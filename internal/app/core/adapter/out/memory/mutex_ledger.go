package memory

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"
)

// MutexLedger 是一個使用 Mutex 實現的帳本
//
// 結構:
//
//	engine: 帳本狀態、冪等表與 WAL
//	mu: RWMutex，寫入互斥、讀取共享
type MutexLedger struct {
	engine *engine
	mu     sync.RWMutex
}

// NewMutexLedger 建立一個新的 MutexLedger 實例
//
// 參數:
//
//	state: 初始狀態 (通常由快照還原)
//	opts: WAL、commit hook 等設定
//
// 回傳:
//
//	*MutexLedger: MutexLedger 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewMutexLedger(state *domain.State, opts ...Option) (*MutexLedger, error) {
	ledger := &MutexLedger{
		engine: newEngine(state, opts...),
	}
	if err := ledger.engine.recoverFromWAL(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// Submit 處理指令 (Level 1: Mutex Lock)
//
// 參數:
//
//	ctx: 上下文
//	cmd: 指令
//
// 回傳:
//
//	*domain.Result: 提交結果
//	error: 驗證或寫入錯誤
func (m *MutexLedger) Submit(ctx context.Context, cmd *domain.Command) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engine.submit(cmd)
}

// Read 以讀鎖執行查詢
func (m *MutexLedger) Read(ctx context.Context, fn func(state *domain.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(m.engine.state)
}

var _ usecase.Ledger = (*MutexLedger)(nil)
