package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/pkg/auth"
	grpcpool "github.com/JoeShih716/go-joint-ledger/pkg/grpc"
	pb "github.com/JoeShih716/go-joint-ledger/proto"
)

const (
	TotalCount  = 100000
	Concurrency = 500
)

type callerKey struct{}

// as 以 caller 的身份呼叫
func as(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func main() {
	addr := flag.String("addr", "localhost:50051", "ledger server address")
	secret := flag.String("secret", "dev-secret", "jwt secret shared with the server")
	issuer := flag.String("issuer", "go-joint-ledger", "jwt issuer")
	total := flag.Int("count", TotalCount, "number of deposits in the load test")
	concurrency := flag.Int("concurrency", Concurrency, "concurrent deposits")
	measure := flag.Bool("measure", false, "print the WAL size of a single command and exit")
	flag.Parse()

	if *measure {
		measureCommandSize()
		return
	}

	authenticator, err := auth.NewAuthenticator(auth.Config{Secret: *secret, Issuer: *issuer, TTL: time.Hour})
	if err != nil {
		log.Fatalf("init authenticator: %v", err)
	}
	tokens := newTokenCache(authenticator)

	pool := grpcpool.NewPool(
		grpcpool.WithDialOptions(grpc.WithPerRPCCredentials(grpcpool.BearerCredentials{Source: tokens.token})),
	)
	defer pool.Close()

	conn, err := pool.GetConnection(*addr)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewLedgerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	// 每次執行使用不同的擁有者，避免超過每人帳戶上限
	run := uuid.NewString()[:8]
	alice, bob := "alice-"+run, "bob-"+run

	accountID, err := runScenario(ctx, c, alice, bob)
	if err != nil {
		log.Fatalf("scenario failed: %v", err)
	}
	runLoad(ctx, c, alice, accountID, *total, *concurrency)
}

// runScenario 兩個擁有者、兩筆與餘額相同的提款請求，第二筆執行時應因餘額不足失敗
func runScenario(ctx context.Context, c pb.LedgerServiceClient, alice, bob string) (int64, error) {
	created, err := c.CreateAccount(as(ctx, alice), &pb.CreateAccountRequest{
		RefId:        uuid.NewString(),
		CoOwners:     []string{bob},
		Contribution: domain.DefaultMinFunding,
	})
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}
	accountID := created.AccountId
	log.Printf("account %d created by %s (seq=%d balance=%d)", accountID, alice, created.Sequence, created.CurrentBalance)

	var withdrawIDs []int64
	for range 2 {
		req, err := c.RequestWithdrawal(as(ctx, bob), &pb.RequestWithdrawalRequest{
			RefId:     uuid.NewString(),
			AccountId: accountID,
			Amount:    domain.DefaultMinFunding,
		})
		if err != nil {
			return 0, fmt.Errorf("request withdrawal: %w", err)
		}
		if _, err := c.ApproveRequest(as(ctx, alice), &pb.ApproveRequestRequest{
			RefId:      uuid.NewString(),
			AccountId:  accountID,
			WithdrawId: req.WithdrawId,
		}); err != nil {
			return 0, fmt.Errorf("approve %d: %w", req.WithdrawId, err)
		}
		withdrawIDs = append(withdrawIDs, req.WithdrawId)
	}

	first, err := c.Withdraw(as(ctx, bob), &pb.WithdrawRequest{
		RefId:      uuid.NewString(),
		AccountId:  accountID,
		WithdrawId: withdrawIDs[0],
	})
	if err != nil {
		return 0, fmt.Errorf("withdraw %d: %w", withdrawIDs[0], err)
	}
	log.Printf("withdraw %d paid %d to %s", withdrawIDs[0], first.Payout.GetAmount(), first.Payout.GetRecipient())

	_, err = c.Withdraw(as(ctx, bob), &pb.WithdrawRequest{
		RefId:      uuid.NewString(),
		AccountId:  accountID,
		WithdrawId: withdrawIDs[1],
	})
	if status.Code(err) != codes.FailedPrecondition {
		return 0, fmt.Errorf("second withdraw: expected FailedPrecondition, got %v", err)
	}
	log.Printf("withdraw %d rejected as expected: %s", withdrawIDs[1], status.Convert(err).Message())

	account, err := c.GetAccount(as(ctx, alice), &pb.GetAccountRequest{AccountId: accountID})
	if err != nil {
		return 0, fmt.Errorf("get account: %w", err)
	}
	log.Printf("account %d owners=%v balance=%d", account.AccountId, account.Owners, account.Balance)
	return accountID, nil
}

// runLoad 並發存款並輸出 TPS
func runLoad(ctx context.Context, c pb.LedgerServiceClient, caller string, accountID int64, total, concurrency int) {
	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)
	sem := make(chan struct{}, concurrency)
	ctx = as(ctx, caller)
	startTime := time.Now()

	for i := 0; i < total; i++ {
		sem <- struct{}{}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			_, err := c.Deposit(ctx, &pb.DepositRequest{
				RefId:     uuid.NewString(),
				AccountId: accountID,
				Amount:    10000,
			})
			if err != nil {
				failed.Add(1)
				if idx%10000 == 0 {
					log.Printf("deposit %d failed: %v", idx, err)
				}
			}
		}(i)
	}
	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d requests (%d failed) in %v\n", total, failed.Load(), elapsed)
	fmt.Printf("TPS: %.2f\n", float64(total)/elapsed.Seconds())
}

// tokenCache 每個 caller 只簽發一次 token
type tokenCache struct {
	auth   *auth.Authenticator
	mu     sync.Mutex
	tokens map[string]string
}

func newTokenCache(a *auth.Authenticator) *tokenCache {
	return &tokenCache{auth: a, tokens: make(map[string]string)}
}

func (t *tokenCache) token(ctx context.Context) (string, error) {
	caller, _ := ctx.Value(callerKey{}).(string)
	if caller == "" {
		return "", errors.New("no caller in context")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok, ok := t.tokens[caller]; ok {
		return tok, nil
	}
	tok, err := t.auth.Issue(caller)
	if err != nil {
		return "", err
	}
	t.tokens[caller] = tok
	return tok, nil
}

// measureCommandSize 計算單筆指令寫入 WAL 的大小
func measureCommandSize() {
	cmd := &domain.Command{
		Sequence:  1234567,
		CommandID: uuid.New(),
		Caller:    "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4",
		AccountID: 1234567890,
		Amount:    1000000000000000000,
		CreatedAt: time.Now().UnixNano(),
		Type:      domain.CommandDeposit,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(cmd); err != nil {
		panic(err)
	}
	fmt.Printf("Single Command JSON Size: %d bytes\n", buf.Len())

	req := &pb.DepositRequest{
		RefId:     cmd.CommandID.String(),
		AccountId: cmd.AccountID,
		Amount:    cmd.Amount,
	}
	fmt.Printf("Deposit Request Protobuf Size: %d bytes\n", proto.Size(req))
}
