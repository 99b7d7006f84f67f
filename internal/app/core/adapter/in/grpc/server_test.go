package grpc_test

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	grpcadapter "github.com/JoeShih716/go-joint-ledger/internal/app/core/adapter/in/grpc"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/adapter/out/sqlite"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-joint-ledger/pkg/auth"
	pb "github.com/JoeShih716/go-joint-ledger/proto"
)

type testEnv struct {
	client pb.LedgerServiceClient
	auth   *auth.Authenticator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	eventLog, err := sqlite.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	bus := memory.NewEventBus()
	dispatcher := usecase.NewDispatcher(nil, 64, eventLog, bus)
	go dispatcher.Run(context.Background())

	ledger, err := memory.NewMutexLedger(
		domain.NewState(domain.Rules{MinFunding: 1000}),
		memory.WithCommitHook(dispatcher.Enqueue),
	)
	require.NoError(t, err)
	core := usecase.NewCoreUseCase(ledger,
		usecase.WithEventLog(eventLog),
		usecase.WithSubscriber(bus),
	)

	authenticator, err := auth.NewAuthenticator(auth.Config{Secret: "test-secret", TTL: time.Minute})
	require.NoError(t, err)
	interceptors := grpcadapter.NewInterceptors(authenticator, nil)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(interceptors.Unary()),
		grpc.StreamInterceptor(interceptors.Stream()),
	)
	pb.RegisterLedgerServiceServer(srv, grpcadapter.NewGrpcServer(core))
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		srv.Stop()
		dispatcher.Close()
		_ = eventLog.Close()
	})
	return &testEnv{
		client: pb.NewLedgerServiceClient(conn),
		auth:   authenticator,
	}
}

// as 以 subject 的身份呼叫
func (e *testEnv) as(t *testing.T, subject string) context.Context {
	t.Helper()
	token, err := e.auth.Issue(subject)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func TestGrpcServerWithdrawalFlow(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.client.CreateAccount(env.as(t, "alice"), &pb.CreateAccountRequest{
		CoOwners:     []string{"bob", "carol"},
		Contribution: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.AccountId)
	assert.Equal(t, uint64(1), created.Sequence)
	assert.Equal(t, int64(5000), created.CurrentBalance)

	accounts, err := env.client.GetUserAccounts(env.as(t, "carol"), &pb.GetUserAccountsRequest{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, accounts.AccountIds)

	requested, err := env.client.RequestWithdrawal(env.as(t, "bob"), &pb.RequestWithdrawalRequest{AccountId: 1, Amount: 2000})
	require.NoError(t, err)
	assert.Equal(t, int64(1), requested.WithdrawId)

	_, err = env.client.Withdraw(env.as(t, "bob"), &pb.WithdrawRequest{AccountId: 1, WithdrawId: 1})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	for _, approver := range []string{"alice", "carol"} {
		_, err = env.client.ApproveRequest(env.as(t, approver), &pb.ApproveRequestRequest{AccountId: 1, WithdrawId: 1})
		require.NoError(t, err)
	}

	view, err := env.client.GetWithdrawal(env.as(t, "alice"), &pb.GetWithdrawalRequest{AccountId: 1, WithdrawId: 1})
	require.NoError(t, err)
	assert.True(t, view.Approved)
	assert.Equal(t, int32(2), view.ApprovalCount)
	assert.Equal(t, "bob", view.Requester)

	withdrawn, err := env.client.Withdraw(env.as(t, "bob"), &pb.WithdrawRequest{AccountId: 1, WithdrawId: 1})
	require.NoError(t, err)
	require.NotNil(t, withdrawn.Payout)
	assert.Equal(t, "bob", withdrawn.Payout.Recipient)
	assert.Equal(t, int64(2000), withdrawn.Payout.Amount)
	assert.Equal(t, int64(3000), withdrawn.CurrentBalance)

	account, err := env.client.GetAccount(env.as(t, "alice"), &pb.GetAccountRequest{AccountId: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3000), account.Balance)
	assert.Equal(t, []string{"alice", "bob", "carol"}, account.Owners)
}

func TestGrpcServerErrorCodes(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.CreateAccount(env.as(t, "alice"), &pb.CreateAccountRequest{CoOwners: []string{"bob"}, Contribution: 1000})
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{
			name: "insufficient funding",
			call: func() error {
				_, err := env.client.CreateAccount(env.as(t, "alice"), &pb.CreateAccountRequest{CoOwners: []string{"bob"}, Contribution: 999})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "not an owner",
			call: func() error {
				_, err := env.client.Deposit(env.as(t, "mallory"), &pb.DepositRequest{AccountId: 1, Amount: 1})
				return err
			},
			want: codes.PermissionDenied,
		},
		{
			name: "account not found",
			call: func() error {
				_, err := env.client.GetAccount(env.as(t, "alice"), &pb.GetAccountRequest{AccountId: 42})
				return err
			},
			want: codes.NotFound,
		},
		{
			name: "invalid ref id",
			call: func() error {
				_, err := env.client.Deposit(env.as(t, "alice"), &pb.DepositRequest{RefId: "not-a-uuid", AccountId: 1, Amount: 1})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "missing token",
			call: func() error {
				_, err := env.client.Deposit(context.Background(), &pb.DepositRequest{AccountId: 1, Amount: 1})
				return err
			},
			want: codes.Unauthenticated,
		},
		{
			name: "bad token",
			call: func() error {
				ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer garbage")
				_, err := env.client.Deposit(ctx, &pb.DepositRequest{AccountId: 1, Amount: 1})
				return err
			},
			want: codes.Unauthenticated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(tt.call()))
		})
	}
}

func TestGrpcServerIdempotentRefID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.CreateAccount(env.as(t, "alice"), &pb.CreateAccountRequest{CoOwners: []string{"bob"}, Contribution: 1000})
	require.NoError(t, err)

	refID := uuid.NewString()
	first, err := env.client.Deposit(env.as(t, "bob"), &pb.DepositRequest{RefId: refID, AccountId: 1, Amount: 10})
	require.NoError(t, err)
	second, err := env.client.Deposit(env.as(t, "bob"), &pb.DepositRequest{RefId: refID, AccountId: 1, Amount: 10})
	require.NoError(t, err)

	assert.Equal(t, refID, first.RefId)
	assert.Equal(t, first.Sequence, second.Sequence)
	assert.Equal(t, int64(1010), second.CurrentBalance)

	// 其他人或其他內容重用同一個 ref_id
	_, err = env.client.Deposit(env.as(t, "alice"), &pb.DepositRequest{RefId: refID, AccountId: 1, Amount: 10})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = env.client.Deposit(env.as(t, "bob"), &pb.DepositRequest{RefId: refID, AccountId: 1, Amount: 11})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := env.client.GetAccount(env.as(t, "bob"), &pb.GetAccountRequest{AccountId: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1010), resp.Balance)
}

func TestGrpcServerSubscribe(t *testing.T) {
	env := newTestEnv(t)

	ctx, cancel := context.WithCancel(env.as(t, "alice"))
	defer cancel()
	stream, err := env.client.Subscribe(ctx, &pb.SubscribeRequest{})
	require.NoError(t, err)

	_, err = env.client.CreateAccount(env.as(t, "alice"), &pb.CreateAccountRequest{CoOwners: []string{"bob"}, Contribution: 1000})
	require.NoError(t, err)
	_, err = env.client.Deposit(env.as(t, "bob"), &pb.DepositRequest{AccountId: 1, Amount: 5})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.Sequence)
	assert.Equal(t, string(domain.EventAccountCreated), first.Type)
	assert.Equal(t, []string{"alice", "bob"}, first.Owners)

	second, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.Sequence)
	assert.Equal(t, string(domain.EventDeposit), second.Type)
	assert.Equal(t, "bob", second.Owner)
	assert.Equal(t, int64(5), second.Amount)
}

func TestGrpcServerGetAccountEvents(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.CreateAccount(env.as(t, "alice"), &pb.CreateAccountRequest{CoOwners: []string{"bob"}, Contribution: 1000})
	require.NoError(t, err)
	_, err = env.client.CreateAccount(env.as(t, "carol"), &pb.CreateAccountRequest{CoOwners: []string{"dave"}, Contribution: 1000})
	require.NoError(t, err)
	_, err = env.client.Deposit(env.as(t, "bob"), &pb.DepositRequest{AccountId: 1, Amount: 5})
	require.NoError(t, err)

	// 事件由 dispatcher 非同步寫入
	var resp *pb.GetAccountEventsResponse
	require.Eventually(t, func() bool {
		resp, err = env.client.GetAccountEvents(env.as(t, "alice"), &pb.GetAccountEventsRequest{AccountId: 1})
		return err == nil && len(resp.Events) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []uint64{1, 3}, []uint64{resp.Events[0].Sequence, resp.Events[1].Sequence})

	_, err = env.client.GetAccountEvents(env.as(t, "alice"), &pb.GetAccountEventsRequest{AccountId: 7})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestLedgerServiceDescriptorMatchesServiceDesc(t *testing.T) {
	svc := pb.File_ledger_proto.Services().ByName("LedgerService")
	require.NotNil(t, svc)
	assert.Equal(t, pb.LedgerService_ServiceDesc.ServiceName, string(svc.FullName()))

	methods := svc.Methods()
	require.Equal(t, len(pb.LedgerService_ServiceDesc.Methods)+len(pb.LedgerService_ServiceDesc.Streams), methods.Len())
	for _, m := range pb.LedgerService_ServiceDesc.Methods {
		md := methods.ByName(protoreflect.Name(m.MethodName))
		require.NotNil(t, md, m.MethodName)
		assert.False(t, md.IsStreamingServer(), m.MethodName)
	}
	subscribe := methods.ByName("Subscribe")
	require.NotNil(t, subscribe)
	assert.True(t, subscribe.IsStreamingServer())
	assert.Equal(t, (&pb.Event{}).ProtoReflect().Descriptor(), subscribe.Output())
}

func TestCommandResponseWireFormat(t *testing.T) {
	resp := &pb.CommandResponse{
		RefId:          uuid.NewString(),
		Sequence:       7,
		AccountId:      1,
		WithdrawId:     2,
		CurrentBalance: 500,
		Payout:         &pb.Payout{Recipient: "alice", Amount: 500},
	}
	raw, err := proto.Marshal(resp)
	require.NoError(t, err)

	var decoded pb.CommandResponse
	require.NoError(t, proto.Unmarshal(raw, &decoded))
	assert.True(t, proto.Equal(resp, &decoded))
	assert.Equal(t, "alice", decoded.GetPayout().GetRecipient())

	// nil 訊息的 getter 回傳零值
	var empty *pb.Payout
	assert.Equal(t, int64(0), empty.GetAmount())
}
