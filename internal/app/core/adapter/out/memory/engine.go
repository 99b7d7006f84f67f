package memory

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
)

// Journal 指令的持久化紀錄 (pkg/wal.WAL)
//
// Write 回傳錯誤時紀錄必須不在檔案中，否則同一個序號會被下一筆指令重用
type Journal interface {
	Write(v any) error
	ReadAll(callback func(jsonRaw []byte) error) error
}

// Option 設定帳本
type Option func(*engine)

// WithWAL 設定 Write-Ahead Log，nil 表示不持久化
func WithWAL(j Journal) Option {
	return func(e *engine) {
		e.wal = j
	}
}

// WithCommitHook 每筆指令提交後 (仍在序列化區段內) 呼叫，用來依提交順序發送事件
// WAL 重放時也會呼叫，下游需能處理重複事件
func WithCommitHook(hook func(domain.Event)) Option {
	return func(e *engine) {
		e.onCommit = hook
	}
}

// WithLogger 設定 logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *engine) {
		e.logger = logger
	}
}

// engine 兩種帳本共用的提交邏輯，本身不處理並發，由呼叫者保證單一寫入者
type engine struct {
	state *domain.State
	// Write-Ahead Logging
	wal      Journal
	onCommit func(domain.Event)
	logger   *zap.Logger
}

func newEngine(state *domain.State, opts ...Option) *engine {
	e := &engine{
		state:    state,
		onCommit: func(domain.Event) {},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// recoverFromWAL 從 WAL 檔案恢復帳本狀態
// 序號 <= 目前狀態序號的紀錄已包含在快照中，直接略過
//
// 回傳:
//
//	error: 恢復過程錯誤
func (e *engine) recoverFromWAL() error {
	if e.wal == nil {
		return nil
	}
	replayed, skipped := 0, 0
	err := e.wal.ReadAll(func(jsonRaw []byte) error {
		var cmd domain.Command
		if err := json.Unmarshal(jsonRaw, &cmd); err != nil {
			return err
		}
		if cmd.Sequence <= e.state.Sequence() {
			skipped++
			return nil
		}
		res, err := e.state.Apply(&cmd)
		if err != nil {
			return fmt.Errorf("replay command seq %d: %w", cmd.Sequence, err)
		}
		e.onCommit(res.Event)
		replayed++
		return nil
	})
	if err != nil {
		return err
	}
	e.logger.Info("wal recovered",
		zap.Int("replayed", replayed),
		zap.Int("skipped", skipped),
		zap.Uint64("seq", e.state.Sequence()),
	)
	return nil
}

// submit 執行指令核心邏輯
//
// 流程: 冪等檢查 -> 驗證 -> 寫入 WAL -> 更新狀態 -> 通知
// WAL 寫入失敗時 WAL 已回滾該筆紀錄，序號不會被消耗
func (e *engine) submit(cmd *domain.Command) (*domain.Result, error) {
	// 0. Idempotency Check (冪等紀錄存在 State 中，隨快照保存)
	if res, ok, err := e.state.Processed(cmd); err != nil || ok {
		return res, err
	}

	// 1. 分配序號並驗證 (失敗不會寫 WAL，也不會消耗序號)
	cmd.Sequence = e.state.Sequence() + 1
	if err := e.state.Validate(cmd); err != nil {
		cmd.Sequence = 0
		return nil, err
	}

	// 2. 寫入 WAL (Critical Path)
	if e.wal != nil {
		if err := e.wal.Write(cmd); err != nil {
			e.logger.Error("wal write failed", zap.Uint64("seq", cmd.Sequence), zap.Error(err))
			cmd.Sequence = 0
			return nil, domain.ErrWALWriteFailed
		}
	}

	// 3. 更新狀態 (同時記錄冪等紀錄)，已通過驗證所以不會失敗
	res, err := e.state.Apply(cmd)
	if err != nil {
		return nil, err
	}

	// 4. 通知
	e.onCommit(res.Event)
	return res, nil
}
