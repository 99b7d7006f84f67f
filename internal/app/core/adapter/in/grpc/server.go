package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-joint-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	core *usecase.CoreUseCase
}

func NewGrpcServer(core *usecase.CoreUseCase) *GrpcServer {
	return &GrpcServer{
		core: core,
	}
}

func (s *GrpcServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CommandResponse, error) {
	caller, commandID, err := commandContext(ctx, req.GetRefId())
	if err != nil {
		return nil, err
	}
	coOwners := make([]domain.Principal, len(req.GetCoOwners()))
	for i, owner := range req.GetCoOwners() {
		coOwners[i] = domain.Principal(owner)
	}
	res, err := s.core.CreateAccount(ctx, commandID, caller, coOwners, req.GetContribution())
	return toResponse(res, err)
}

func (s *GrpcServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.CommandResponse, error) {
	caller, commandID, err := commandContext(ctx, req.GetRefId())
	if err != nil {
		return nil, err
	}
	res, err := s.core.Deposit(ctx, commandID, caller, req.GetAccountId(), req.GetAmount())
	return toResponse(res, err)
}

func (s *GrpcServer) RequestWithdrawal(ctx context.Context, req *pb.RequestWithdrawalRequest) (*pb.CommandResponse, error) {
	caller, commandID, err := commandContext(ctx, req.GetRefId())
	if err != nil {
		return nil, err
	}
	res, err := s.core.RequestWithdrawal(ctx, commandID, caller, req.GetAccountId(), req.GetAmount())
	return toResponse(res, err)
}

func (s *GrpcServer) ApproveRequest(ctx context.Context, req *pb.ApproveRequestRequest) (*pb.CommandResponse, error) {
	caller, commandID, err := commandContext(ctx, req.GetRefId())
	if err != nil {
		return nil, err
	}
	res, err := s.core.ApproveRequest(ctx, commandID, caller, req.GetAccountId(), req.GetWithdrawId())
	return toResponse(res, err)
}

func (s *GrpcServer) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.CommandResponse, error) {
	caller, commandID, err := commandContext(ctx, req.GetRefId())
	if err != nil {
		return nil, err
	}
	res, err := s.core.Withdraw(ctx, commandID, caller, req.GetAccountId(), req.GetWithdrawId())
	return toResponse(res, err)
}

func (s *GrpcServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.GetAccountResponse, error) {
	account, err := s.core.GetAccount(ctx, req.GetAccountId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetAccountResponse{
		AccountId: account.ID,
		Balance:   account.Balance,
		Owners:    principalsToStrings(account.Owners),
	}, nil
}

func (s *GrpcServer) GetUserAccounts(ctx context.Context, _ *pb.GetUserAccountsRequest) (*pb.GetUserAccountsResponse, error) {
	caller, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing caller")
	}
	ids, err := s.core.GetUserAccounts(ctx, caller)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetUserAccountsResponse{AccountIds: ids}, nil
}

func (s *GrpcServer) GetWithdrawal(ctx context.Context, req *pb.GetWithdrawalRequest) (*pb.GetWithdrawalResponse, error) {
	view, err := s.core.GetWithdrawal(ctx, req.GetAccountId(), req.GetWithdrawId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetWithdrawalResponse{
		AccountId:     view.AccountID,
		WithdrawId:    view.ID,
		Requester:     view.Requester.String(),
		Amount:        view.Amount,
		Approvals:     principalsToStrings(view.Approvals),
		ApprovalCount: int32(view.ApprovalCount),
		Approved:      view.Approved,
		Executed:      view.Executed,
	}, nil
}

// maxEventsPage GetAccountEvents 單次最多回傳筆數
const maxEventsPage = 500

func (s *GrpcServer) GetAccountEvents(ctx context.Context, req *pb.GetAccountEventsRequest) (*pb.GetAccountEventsResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 || limit > maxEventsPage {
		limit = maxEventsPage
	}
	events, err := s.core.GetAccountEvents(ctx, req.GetAccountId(), req.GetAfterSequence(), limit)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.GetAccountEventsResponse{Events: make([]*pb.Event, len(events))}
	for i, e := range events {
		resp.Events[i] = toEvent(e)
	}
	return resp, nil
}

// Subscribe 推送序號大於 after_seq 的事件，直到客戶端斷線
func (s *GrpcServer) Subscribe(req *pb.SubscribeRequest, stream pb.LedgerService_SubscribeServer) error {
	err := s.core.Subscribe(stream.Context(), req.GetAfterSequence(), func(event domain.Event) error {
		return stream.Send(toEvent(event))
	})
	return toStatus(err)
}

// commandContext 取出呼叫者並解析 ref_id (空字串時由帳本自動產生)
func commandContext(ctx context.Context, refID string) (domain.Principal, uuid.UUID, error) {
	caller, ok := PrincipalFromContext(ctx)
	if !ok {
		return "", uuid.Nil, status.Error(codes.Unauthenticated, "missing caller")
	}
	if refID == "" {
		return caller, uuid.Nil, nil
	}
	id, err := uuid.Parse(refID)
	if err != nil {
		return "", uuid.Nil, status.Error(codes.InvalidArgument, "invalid ref_id: "+err.Error())
	}
	return caller, id, nil
}

func toResponse(res *domain.Result, err error) (*pb.CommandResponse, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &pb.CommandResponse{
		RefId:          res.CommandID.String(),
		Sequence:       res.Sequence,
		AccountId:      res.AccountID,
		WithdrawId:     res.WithdrawID,
		CurrentBalance: res.Balance,
	}
	if res.Payout != nil {
		resp.Payout = &pb.Payout{
			Recipient: res.Payout.Recipient.String(),
			Amount:    res.Payout.Amount,
		}
	}
	return resp, nil
}

func toEvent(e domain.Event) *pb.Event {
	return &pb.Event{
		Sequence:   e.Sequence,
		Type:       string(e.Type),
		Owners:     principalsToStrings(e.Owners),
		Owner:      e.Owner.String(),
		AccountId:  e.AccountID,
		WithdrawId: e.WithdrawID,
		Amount:     e.Amount,
		Timestamp:  e.Timestamp,
	}
}

func principalsToStrings(ps []domain.Principal) []string {
	if ps == nil {
		return nil
	}
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

var _ pb.LedgerServiceServer = (*GrpcServer)(nil)
