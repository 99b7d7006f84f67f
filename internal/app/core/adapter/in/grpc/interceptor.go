package grpc

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/pkg/auth"
	pb "github.com/JoeShih716/go-joint-ledger/proto"
)

type principalKey struct{}

// ContextWithPrincipal 把呼叫者放進 context
func ContextWithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext 取出呼叫者
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok && !p.IsZero()
}

// Interceptors 驗證 JWT 並記錄每次呼叫
//
// 只有 ledger service 的方法需要 token，其他服務 (例如 reflection) 直接放行。
type Interceptors struct {
	auth   *auth.Authenticator
	logger *zap.Logger
}

func NewInterceptors(authenticator *auth.Authenticator, logger *zap.Logger) *Interceptors {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interceptors{
		auth:   authenticator,
		logger: logger,
	}
}

// Unary unary 攔截器
func (i *Interceptors) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		ctx, err := i.authenticate(ctx, info.FullMethod)
		if err != nil {
			i.log(info.FullMethod, start, err)
			return nil, err
		}
		resp, err := handler(ctx, req)
		i.log(info.FullMethod, start, err)
		return resp, err
	}
}

// Stream stream 攔截器
func (i *Interceptors) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		ctx, err := i.authenticate(ss.Context(), info.FullMethod)
		if err != nil {
			i.log(info.FullMethod, start, err)
			return err
		}
		err = handler(srv, &principalStream{ServerStream: ss, ctx: ctx})
		i.log(info.FullMethod, start, err)
		return err
	}
}

func (i *Interceptors) authenticate(ctx context.Context, fullMethod string) (context.Context, error) {
	if !strings.HasPrefix(fullMethod, "/"+pb.LedgerService_ServiceDesc.ServiceName+"/") {
		return ctx, nil
	}
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, toStatus(auth.ErrMissingToken)
	}
	token, err := auth.BearerToken(values[0])
	if err != nil {
		return nil, toStatus(err)
	}
	subject, err := i.auth.Verify(token)
	if err != nil {
		return nil, toStatus(err)
	}
	return ContextWithPrincipal(ctx, domain.Principal(subject)), nil
}

func (i *Interceptors) log(method string, start time.Time, err error) {
	code := status.Code(err)
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("code", code.String()),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	i.logger.Debug("grpc call", fields...)
}

type principalStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *principalStream) Context() context.Context {
	return s.ctx
}
