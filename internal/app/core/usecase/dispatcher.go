package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
)

// ErrDispatcherStopped Dispatcher 已停止，之後的事件不會再發送
var ErrDispatcherStopped = errors.New("dispatcher stopped")

// Dispatcher 依提交順序把事件送給所有 publisher
//
// Enqueue 由帳本在序列化區段內呼叫，因此 queue 中的順序即為提交順序；
// 單一 goroutine 依序發送，確保每個 publisher 看到的順序一致。
// Publish 失敗時以 backoff 重試同一個 publisher，成功前不會處理下一筆事件。
type Dispatcher struct {
	publishers []EventPublisher
	queue      chan domain.Event
	logger     *zap.Logger
	done       chan struct{}
	closeOnce  sync.Once
	// stop 由 Shutdown 逾時時取消，中斷進行中的重試
	stop       context.Context
	cancelStop context.CancelFunc
	newBackOff func() backoff.BackOff

	mu sync.Mutex
	// published 所有 publisher 都已收到的最後序號
	published uint64
	// advanced published 每次前進時關閉並換成新的 channel
	advanced chan struct{}
}

// NewDispatcher 建立 Dispatcher，publishers 依傳入順序發送
// (事件紀錄應排在即時訂閱之前，Subscribe 依賴這個順序補齊遺漏的事件)
func NewDispatcher(logger *zap.Logger, bufferSize int, publishers ...EventPublisher) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if bufferSize <= 0 {
		bufferSize = 1024
	}
	stop, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		publishers: publishers,
		queue:      make(chan domain.Event, bufferSize),
		logger:     logger,
		done:       make(chan struct{}),
		stop:       stop,
		cancelStop: cancel,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 50 * time.Millisecond
			b.MaxInterval = 5 * time.Second
			return b
		},
		advanced: make(chan struct{}),
	}
}

// Resume 設定起始的已發送序號 (通常是載入的快照序號)
// 快照之前的事件已在上次執行時送出，WAL 重放只會送出之後的事件。必須在 Run 之前呼叫
func (d *Dispatcher) Resume(seq uint64) {
	d.markPublished(seq)
}

// Enqueue 放入事件，queue 滿時會阻塞 (背壓)
func (d *Dispatcher) Enqueue(event domain.Event) {
	d.queue <- event
}

// Run 持續發送直到 Close 被呼叫且 queue 清空，或 ctx 結束
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	unregister := context.AfterFunc(d.stop, cancel)
	defer unregister()

	for event := range d.queue {
		if err := d.dispatch(ctx, event); err != nil {
			// 尚未送出的事件仍在 WAL 中，重啟時會重放
			d.logger.Error("dispatcher stopped before event was published",
				zap.Uint64("seq", event.Sequence),
				zap.Int("pending", len(d.queue)),
				zap.Error(err),
			)
			return
		}
		d.markPublished(event.Sequence)
	}
}

// dispatch 依序送給每個 publisher，失敗時重試直到成功或 ctx 結束
func (d *Dispatcher) dispatch(ctx context.Context, event domain.Event) error {
	for i, p := range d.publishers {
		_, err := backoff.Retry(ctx,
			func() (struct{}, error) {
				return struct{}{}, p.Publish(ctx, event)
			},
			backoff.WithBackOff(d.newBackOff()),
			backoff.WithMaxElapsedTime(0),
			backoff.WithNotify(func(err error, next time.Duration) {
				d.logger.Warn("publish event failed, retrying",
					zap.Uint64("seq", event.Sequence),
					zap.String("type", string(event.Type)),
					zap.Int("publisher", i),
					zap.Duration("backoff", next),
					zap.Error(err),
				)
			}),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) markPublished(seq uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if seq <= d.published {
		return
	}
	d.published = seq
	close(d.advanced)
	d.advanced = make(chan struct{})
}

// Published 所有 publisher 都已收到的最後序號
func (d *Dispatcher) Published() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.published
}

// WaitPublished 等待序號 <= seq 的事件都已送出
//
// 參數:
//
//	ctx: 逾時或取消
//	seq: 目標序號
//
// 回傳:
//
//	error: ctx 結束，或 Dispatcher 在送到 seq 之前停止 (ErrDispatcherStopped)
func (d *Dispatcher) WaitPublished(ctx context.Context, seq uint64) error {
	for {
		d.mu.Lock()
		published, advanced := d.published, d.advanced
		d.mu.Unlock()
		if published >= seq {
			return nil
		}
		select {
		case <-advanced:
		case <-d.done:
			if d.Published() >= seq {
				return nil
			}
			return ErrDispatcherStopped
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close 停止接收事件並等待剩下的事件發送完畢
// 必須在帳本停止寫入之後呼叫
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}

// Shutdown 與 Close 相同，但 ctx 結束時放棄重試並回傳 ctx 的錯誤
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		d.cancelStop()
		<-d.done
		return ctx.Err()
	}
}
