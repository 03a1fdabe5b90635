package queries

import (
	"context"

	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/usecase/shared"
)

type UserQueries interface {
	Me(ctx context.Context, sess shared.Session) (*upstream.UserDetails, error)
}

type userQueriesImpl struct {
	gateway UserGateway
}

func NewUserQueries(gateway UserGateway) UserQueries {
	return &userQueriesImpl{
		gateway: gateway,
	}
}

func (q *userQueriesImpl) Me(ctx context.Context, sess shared.Session) (*upstream.UserDetails, error) {
	details, err := q.gateway.UserDetails(ctx, sess.AccessToken)
	if err != nil {
		return nil, shared.MapUpstreamError(err)
	}
	return details, nil
}
