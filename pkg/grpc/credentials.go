package grpc

import (
	"context"
)

// TokenSource 依呼叫的 context 回傳 bearer token
type TokenSource func(ctx context.Context) (string, error)

// BearerCredentials 每次呼叫時在 metadata 帶上 authorization: Bearer <token>
// 以 grpc.WithPerRPCCredentials 使用，unary 與 stream 都適用
type BearerCredentials struct {
	Source TokenSource
	// Secure: 是否要求 TLS，內部網路測試可關閉
	Secure bool
}

func (c BearerCredentials) GetRequestMetadata(ctx context.Context, _ ...string) (map[string]string, error) {
	token, err := c.Source(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	return map[string]string{"authorization": "Bearer " + token}, nil
}

func (c BearerCredentials) RequireTransportSecurity() bool {
	return c.Secure
}
