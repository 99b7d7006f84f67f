package memory

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"
)

// commandRequest 指令請求包裝channel，讓 Submit 可以等待結果
type commandRequest struct {
	Cmd    *domain.Command
	Read   func(state *domain.State) error
	Res    *domain.Result
	Result chan error // 讓 Submit 等這個 channel
}

// LMAXLedger 單一 goroutine 依序處理所有指令，不需要鎖
type LMAXLedger struct {
	engine *engine
	// 輸送帶 負責接收指令與查詢
	requestChan chan *commandRequest
	// run loop 結束後關閉
	done chan struct{}
	// Pool 減少 GC 壓力
	requestPool sync.Pool
	startOnce   sync.Once
}

// NewLMAXLedger 建立一個新的 LMAXLedger 實例，需呼叫 Start 後才會開始處理
//
// 參數:
//
//	state: 初始狀態
//	bufferSize: 輸送帶容量
//	opts: WAL、commit hook 等設定
//
// 回傳:
//
//	*LMAXLedger: LMAXLedger 實例
//	error: 初始化錯誤
func NewLMAXLedger(state *domain.State, bufferSize int, opts ...Option) (*LMAXLedger, error) {
	if bufferSize <= 0 {
		bufferSize = 1000
	}
	ledger := &LMAXLedger{
		engine:      newEngine(state, opts...),
		requestChan: make(chan *commandRequest, bufferSize),
		done:        make(chan struct{}),
		requestPool: sync.Pool{
			New: func() interface{} {
				return &commandRequest{
					Result: make(chan error, 1),
				}
			},
		},
	}

	// 在啟動前先恢復資料 (單執行緒)
	if err := ledger.engine.recoverFromWAL(); err != nil {
		return nil, err
	}

	return ledger, nil
}

// Start 啟動核心引擎 (非同步)，ctx 結束後處理完剩下的請求再停止
func (l *LMAXLedger) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		go l.run(ctx)
	})
}

// Done 回傳 run loop 結束時關閉的 channel
func (l *LMAXLedger) Done() <-chan struct{} {
	return l.done
}

// Submit 接收指令
//
// Submit(等待) -> Channel -> Run Loop (核心) -> WAL -> State Update -> Result Channel -> Submit(收到結果)
//
// ctx 在指令送入後才取消時，指令仍可能被提交；呼叫者可用相同 CommandID 重送取得結果。
func (l *LMAXLedger) Submit(ctx context.Context, cmd *domain.Command) (*domain.Result, error) {
	req := l.newRequest()
	req.Cmd = cmd
	if err := l.roundTrip(ctx, req); err != nil {
		return nil, err
	}
	res := req.Res
	l.release(req)
	return res, nil
}

// Read 在 run loop 中執行查詢
func (l *LMAXLedger) Read(ctx context.Context, fn func(state *domain.State) error) error {
	req := l.newRequest()
	req.Read = fn
	if err := l.roundTrip(ctx, req); err != nil {
		return err
	}
	l.release(req)
	return nil
}

func (l *LMAXLedger) newRequest() *commandRequest {
	req := l.requestPool.Get().(*commandRequest)
	// 清空 Channel (理論上應該是空的)
	select {
	case <-req.Result:
	default:
	}
	return req
}

func (l *LMAXLedger) release(req *commandRequest) {
	req.Cmd, req.Read, req.Res = nil, nil, nil
	l.requestPool.Put(req)
}

// roundTrip 送入輸送帶並等待結果
// 回傳錯誤時 req 不放回 pool (run loop 可能還會寫入 Result)
func (l *LMAXLedger) roundTrip(ctx context.Context, req *commandRequest) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return domain.ErrLedgerClosed
	case l.requestChan <- req:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-req.Result:
		return l.finish(req, err)
	case <-l.done:
		// run loop 已停止，結果可能已經寫入 (process 在 close(done) 之前完成)
		select {
		case err := <-req.Result:
			return l.finish(req, err)
		default:
			return domain.ErrLedgerClosed
		}
	}
}

func (l *LMAXLedger) finish(req *commandRequest, err error) error {
	if err != nil {
		l.release(req)
	}
	return err
}

func (l *LMAXLedger) run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			// 收到關閉信號，把剩下的請求處理完
			l.drain()
			return
		case req := <-l.requestChan:
			l.process(req)
		}
	}
}

func (l *LMAXLedger) drain() {
	for {
		select {
		case req := <-l.requestChan:
			l.process(req)
		default:
			return
		}
	}
}

// process 處理單筆請求並回傳結果
func (l *LMAXLedger) process(req *commandRequest) {
	if req.Read != nil {
		req.Result <- req.Read(l.engine.state)
		return
	}
	res, err := l.engine.submit(req.Cmd)
	req.Res = res
	req.Result <- err
}

var _ usecase.Ledger = (*LMAXLedger)(nil)
