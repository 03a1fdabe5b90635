//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hotel-front/internal/domain/bill"
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/usecase/queries"
	"hotel-front/internal/usecase/shared"
	queriesmock "hotel-front/tests/mock/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailableRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("valid stay is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := queriesmock.NewMockCatalogGateway(ctrl)
		q := queries.NewCatalogQueries(gw)

		gw.EXPECT().AvailableRooms(gomock.Any(), "acc", "2024-05-01", "2024-05-03", 2).
			Return([]upstream.Room{{Number: "101"}}, nil)

		rooms, err := q.AvailableRooms(ctx, employee, "2024-05-01", "2024-05-03", 2)
		require.NoError(t, err)
		assert.Len(t, rooms, 1)
	})

	t.Run("invalid stays are rejected locally", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewCatalogQueries(queriesmock.NewMockCatalogGateway(ctrl))

		for _, tc := range [][2]string{
			{"2024-05-03", "2024-05-01"},
			{"2024-05-01", "2024-05-01"},
			{"2024/05/01", "2024-05-03"},
			{"2024-05-01", ""},
		} {
			_, err := q.AvailableRooms(ctx, employee, tc[0], tc[1], 1)
			assert.True(t, errs.Is(err, queries.ErrInvalidStay), "%v", tc)
		}
	})
}

func TestBill(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gw := queriesmock.NewMockCatalogGateway(ctrl)
	q := queries.NewCatalogQueries(gw)

	want := &bill.Bill{ID: 5, Elements: []bill.Element{
		bill.ServiceElement{ID: 1, Title: "Massage", Price: decimal.RequireFromString("120")},
	}}
	gw.EXPECT().BillElements(gomock.Any(), "acc", int64(5)).Return(want, nil)
	gw.EXPECT().BillElements(gomock.Any(), "acc", int64(6)).Return(nil, &upstream.Error{Kind: upstream.KindNotFound})

	got, err := q.Bill(ctx, employee, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = q.Bill(ctx, employee, 6)
	assert.True(t, errs.Is(err, shared.ErrNotFound))
}

func TestListsMapErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gw := queriesmock.NewMockCatalogGateway(ctrl)
	q := queries.NewCatalogQueries(gw)

	gw.EXPECT().ListGuests(gomock.Any(), "acc").Return(nil, &upstream.Error{Kind: upstream.KindForbidden})
	gw.EXPECT().ListRooms(gomock.Any(), "acc").Return(nil, &upstream.Error{Kind: upstream.KindServer})
	gw.EXPECT().ListServices(gomock.Any(), "acc").Return([]upstream.Service{{ID: 1}}, nil)
	gw.EXPECT().ListRoomStandards(gomock.Any(), "acc").Return(nil, &upstream.Error{Kind: upstream.KindUnauthorized})

	_, err := q.ListGuests(ctx, employee)
	assert.True(t, errs.Is(err, shared.ErrForbidden))

	_, err = q.ListRooms(ctx, employee)
	assert.True(t, errs.Is(err, shared.ErrUpstreamFailure))

	services, err := q.ListServices(ctx, employee)
	require.NoError(t, err)
	assert.Len(t, services, 1)

	_, err = q.ListRoomStandards(ctx, employee)
	assert.True(t, errs.Is(err, shared.ErrSessionExpired))
}
