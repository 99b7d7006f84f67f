package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
)

const tracerName = "github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"

// ErrSubscriberLagged 訂閱者跟不上事件速度，需從最後收到的序號重新訂閱
var ErrSubscriberLagged = errors.New("subscriber lagged")

// CoreUseCase 是核心業務邏輯層
type CoreUseCase struct {
	ledger     Ledger
	eventLog   EventLog
	subscriber EventSubscriber
	dispatcher *Dispatcher
	logger     *zap.Logger
	tracer     trace.Tracer
	now        func() time.Time
}

// Option 設定 CoreUseCase
type Option func(*CoreUseCase)

// WithLogger 設定 logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *CoreUseCase) {
		c.logger = logger
	}
}

// WithEventLog 設定事件紀錄，Subscribe 會先從這裡補齊歷史事件
func WithEventLog(log EventLog) Option {
	return func(c *CoreUseCase) {
		c.eventLog = log
	}
}

// WithSubscriber 設定即時事件來源
func WithSubscriber(s EventSubscriber) Option {
	return func(c *CoreUseCase) {
		c.subscriber = s
	}
}

// WithDispatcher 設定事件 Dispatcher，SaveSnapshot 會等快照內的事件都送出後才寫入
func WithDispatcher(d *Dispatcher) Option {
	return func(c *CoreUseCase) {
		c.dispatcher = d
	}
}

// WithTracerProvider 設定 OpenTelemetry tracer provider (預設使用 global)
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *CoreUseCase) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// WithClock 設定時間來源 (測試用)
func WithClock(now func() time.Time) Option {
	return func(c *CoreUseCase) {
		c.now = now
	}
}

func NewCoreUseCase(ledger Ledger, opts ...Option) *CoreUseCase {
	c := &CoreUseCase{
		ledger: ledger,
		logger: zap.NewNop(),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateAccount 開戶，回傳新帳戶 ID
//
// 參數:
//
//	ctx: 上下文
//	commandID: 冪等用的指令 ID，uuid.Nil 時自動產生
//	creator: 建立者
//	coOwners: 共同擁有者 (不含建立者)
//	contribution: 初始存入金額
//
// 回傳:
//
//	*domain.Result: 提交結果
//	error: 驗證失敗
func (c *CoreUseCase) CreateAccount(ctx context.Context, commandID uuid.UUID, creator domain.Principal, coOwners []domain.Principal, contribution int64) (*domain.Result, error) {
	return c.submit(ctx, &domain.Command{
		CommandID: commandID,
		Type:      domain.CommandCreateAccount,
		Caller:    creator,
		CoOwners:  coOwners,
		Amount:    contribution,
	})
}

// Deposit 存款
func (c *CoreUseCase) Deposit(ctx context.Context, commandID uuid.UUID, caller domain.Principal, accountID, amount int64) (*domain.Result, error) {
	return c.submit(ctx, &domain.Command{
		CommandID: commandID,
		Type:      domain.CommandDeposit,
		Caller:    caller,
		AccountID: accountID,
		Amount:    amount,
	})
}

// RequestWithdrawal 建立提款請求，Result.WithdrawID 為帳戶內的請求 ID
func (c *CoreUseCase) RequestWithdrawal(ctx context.Context, commandID uuid.UUID, caller domain.Principal, accountID, amount int64) (*domain.Result, error) {
	return c.submit(ctx, &domain.Command{
		CommandID: commandID,
		Type:      domain.CommandRequestWithdrawal,
		Caller:    caller,
		AccountID: accountID,
		Amount:    amount,
	})
}

// ApproveRequest 核准提款請求
func (c *CoreUseCase) ApproveRequest(ctx context.Context, commandID uuid.UUID, caller domain.Principal, accountID, withdrawID int64) (*domain.Result, error) {
	return c.submit(ctx, &domain.Command{
		CommandID:  commandID,
		Type:       domain.CommandApproveRequest,
		Caller:     caller,
		AccountID:  accountID,
		WithdrawID: withdrawID,
	})
}

// Withdraw 執行提款，Result.Payout 為需要由外部實際轉給請求者的金額
func (c *CoreUseCase) Withdraw(ctx context.Context, commandID uuid.UUID, caller domain.Principal, accountID, withdrawID int64) (*domain.Result, error) {
	return c.submit(ctx, &domain.Command{
		CommandID:  commandID,
		Type:       domain.CommandWithdraw,
		Caller:     caller,
		AccountID:  accountID,
		WithdrawID: withdrawID,
	})
}

func (c *CoreUseCase) submit(ctx context.Context, cmd *domain.Command) (*domain.Result, error) {
	if cmd.CommandID == uuid.Nil {
		cmd.CommandID = uuid.New()
	}
	// 序號一律由帳本分配
	cmd.Sequence = 0
	cmd.CreatedAt = c.now().UnixNano()

	ctx, span := c.tracer.Start(ctx, "ledger."+cmd.Type.String(), trace.WithAttributes(
		attribute.String("ledger.command_id", cmd.CommandID.String()),
		attribute.String("ledger.caller", cmd.Caller.String()),
		attribute.Int64("ledger.account_id", cmd.AccountID),
		attribute.Int64("ledger.withdraw_id", cmd.WithdrawID),
		attribute.Int64("ledger.amount", cmd.Amount),
	))
	defer span.End()

	fields := []zap.Field{
		zap.String("command", cmd.Type.String()),
		zap.Stringer("command_id", cmd.CommandID),
		zap.String("caller", cmd.Caller.String()),
		zap.Int64("account_id", cmd.AccountID),
		zap.Int64("withdraw_id", cmd.WithdrawID),
		zap.Int64("amount", cmd.Amount),
	}

	res, err := c.ledger.Submit(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Info("command rejected", append(fields, zap.Error(err))...)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("ledger.seq", int64(res.Sequence)),
		attribute.Int64("ledger.result.account_id", res.AccountID),
		attribute.Int64("ledger.result.withdraw_id", res.WithdrawID),
	)
	c.logger.Debug("command committed", append(fields,
		zap.Uint64("seq", res.Sequence),
		zap.Int64("balance", res.Balance),
	)...)
	if res.Payout != nil {
		c.logger.Info("payout issued",
			zap.Uint64("seq", res.Sequence),
			zap.String("recipient", res.Payout.Recipient.String()),
			zap.Int64("amount", res.Payout.Amount),
			zap.Int64("account_id", res.AccountID),
			zap.Int64("withdraw_id", res.WithdrawID),
		)
	}
	return res, nil
}

// GetAccount 取得帳戶 (餘額與擁有者)
func (c *CoreUseCase) GetAccount(ctx context.Context, accountID int64) (domain.Account, error) {
	var account domain.Account
	err := c.ledger.Read(ctx, func(s *domain.State) error {
		var err error
		account, err = s.Account(accountID)
		return err
	})
	return account, err
}

// GetAccountBalance 取得帳戶餘額
func (c *CoreUseCase) GetAccountBalance(ctx context.Context, accountID int64) (int64, error) {
	var balance int64
	err := c.ledger.Read(ctx, func(s *domain.State) error {
		var err error
		balance, err = s.AccountBalance(accountID)
		return err
	})
	return balance, err
}

// GetAccountOwners 取得帳戶擁有者
func (c *CoreUseCase) GetAccountOwners(ctx context.Context, accountID int64) ([]domain.Principal, error) {
	var owners []domain.Principal
	err := c.ledger.Read(ctx, func(s *domain.State) error {
		var err error
		owners, err = s.AccountOwners(accountID)
		return err
	})
	return owners, err
}

// GetUserAccounts 取得呼叫者擁有的帳戶
func (c *CoreUseCase) GetUserAccounts(ctx context.Context, caller domain.Principal) ([]int64, error) {
	var ids []int64
	err := c.ledger.Read(ctx, func(s *domain.State) error {
		ids = s.UserAccounts(caller)
		return nil
	})
	return ids, err
}

// WithdrawalView 提款請求與其 quorum 狀態
type WithdrawalView struct {
	domain.WithdrawalRequest
	ApprovalCount int
	Approved      bool
}

// GetWithdrawal 取得提款請求
func (c *CoreUseCase) GetWithdrawal(ctx context.Context, accountID, withdrawID int64) (WithdrawalView, error) {
	var view WithdrawalView
	err := c.ledger.Read(ctx, func(s *domain.State) error {
		req, err := s.Withdrawal(accountID, withdrawID)
		if err != nil {
			return err
		}
		approved, err := s.IsApproved(accountID, withdrawID)
		if err != nil {
			return err
		}
		view = WithdrawalView{
			WithdrawalRequest: req,
			ApprovalCount:     req.ApprovalCount(),
			Approved:          approved,
		}
		return nil
	})
	return view, err
}

// GetWithdrawApprovals 取得核准數
func (c *CoreUseCase) GetWithdrawApprovals(ctx context.Context, accountID, withdrawID int64) (int, error) {
	var count int
	err := c.ledger.Read(ctx, func(s *domain.State) error {
		var err error
		count, err = s.ApprovalCount(accountID, withdrawID)
		return err
	})
	return count, err
}

// IsApproved 請求是否已達 quorum
func (c *CoreUseCase) IsApproved(ctx context.Context, accountID, withdrawID int64) (bool, error) {
	var approved bool
	err := c.ledger.Read(ctx, func(s *domain.State) error {
		var err error
		approved, err = s.IsApproved(accountID, withdrawID)
		return err
	})
	return approved, err
}

// GetAccountEvents 取得帳戶歷史事件
//
// 參數:
//
//	accountID: 帳戶 ID，必須存在
//	after: 只回傳序號大於 after 的事件
//	limit: 最多筆數
func (c *CoreUseCase) GetAccountEvents(ctx context.Context, accountID int64, after uint64, limit int) ([]domain.Event, error) {
	if c.eventLog == nil {
		return nil, errors.New("event log is not configured")
	}
	if _, err := c.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	events, err := c.eventLog.ReadAccount(ctx, accountID, after, limit)
	if err != nil {
		return nil, fmt.Errorf("read account events: %w", err)
	}
	return events, nil
}

// Snapshot 取得目前狀態的快照
func (c *CoreUseCase) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	err := c.ledger.Read(ctx, func(s *domain.State) error {
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

// SaveSnapshot 將目前狀態寫入 store
//
// 重啟時快照序號之前的事件不會重放，因此必須等這些事件都送到事件紀錄後才能寫入快照，
// 否則 Dispatcher 尚未送出的事件會永久遺失。
func (c *CoreUseCase) SaveSnapshot(ctx context.Context, store SnapshotStore) error {
	snap, err := c.Snapshot(ctx)
	if err != nil {
		return err
	}
	if c.dispatcher != nil {
		if err := c.dispatcher.WaitPublished(ctx, snap.Sequence); err != nil {
			return fmt.Errorf("wait events published up to seq %d: %w", snap.Sequence, err)
		}
	}
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	c.logger.Info("snapshot saved",
		zap.Uint64("seq", snap.Sequence),
		zap.Int("accounts", len(snap.Accounts)),
		zap.Int("withdrawals", len(snap.Withdrawals)),
	)
	return nil
}

// Subscribe 依序推送序號大於 after 的事件給 fn，直到 ctx 結束或 fn 回傳錯誤
//
// 先訂閱即時事件再讀取歷史事件，最後以序號去除重複，
// 因此不會漏掉兩者之間提交的事件 (at-least-once，但對 fn 而言不重複)。
func (c *CoreUseCase) Subscribe(ctx context.Context, after uint64, fn func(domain.Event) error) error {
	if c.subscriber == nil {
		return errors.New("event subscription is not configured")
	}
	live, cancel := c.subscriber.Subscribe(256)
	defer cancel()

	last := after
	if c.eventLog != nil {
		const pageSize = 500
		for {
			events, err := c.eventLog.ReadFrom(ctx, last, pageSize)
			if err != nil {
				return fmt.Errorf("read event log: %w", err)
			}
			for _, event := range events {
				if err := fn(event); err != nil {
					return err
				}
				last = event.Sequence
			}
			if len(events) < pageSize {
				break
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-live:
			if !ok {
				return ErrSubscriberLagged
			}
			if event.Sequence <= last {
				continue
			}
			if err := fn(event); err != nil {
				return err
			}
			last = event.Sequence
		}
	}
}
