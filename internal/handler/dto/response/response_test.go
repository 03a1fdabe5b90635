//go:build unit

package response_test

import (
	"testing"

	resdto "hotel-front/internal/handler/dto/response"
	"hotel-front/internal/infra/upstream"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRooms(t *testing.T) {
	t.Run("maps every field", func(t *testing.T) {
		rooms, err := resdto.FromRooms([]upstream.Room{
			{Number: "101", StandardID: 2, Standard: "Deluxe", Capacity: 3, PricePerNight: decimal.RequireFromString("350.00")},
		})
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "101", rooms[0].Number)
		assert.Equal(t, int64(2), rooms[0].StandardID)
		assert.Equal(t, "Deluxe", rooms[0].Standard)
		assert.True(t, decimal.RequireFromString("350").Equal(rooms[0].PricePerNight))
	})

	t.Run("nil renders as an empty list", func(t *testing.T) {
		rooms, err := resdto.FromRooms(nil)
		require.NoError(t, err)
		assert.NotNil(t, rooms)
		assert.Empty(t, rooms)
	})
}

func TestMappingErrorsAreReturned(t *testing.T) {
	_, err := resdto.FromRoom(nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)

	_, err = resdto.FromRoomStandard(nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)

	_, err = resdto.FromService(nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)
}

func TestFromUserDetails(t *testing.T) {
	t.Run("absent details map to nil", func(t *testing.T) {
		res, err := resdto.FromUserDetails(nil)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("role is normalized", func(t *testing.T) {
		res, err := resdto.FromUserDetails(&upstream.UserDetails{ID: 4, Username: "anna.nowak", Role: "employee"})
		require.NoError(t, err)
		assert.Equal(t, "anna.nowak", res.Username)
		assert.Equal(t, "EMPLOYEE", res.Role)
	})

	t.Run("unknown role falls back to guest", func(t *testing.T) {
		res, err := resdto.FromUserDetails(&upstream.UserDetails{Username: "x", Role: "janitor"})
		require.NoError(t, err)
		assert.Equal(t, "GUEST", res.Role)
	})
}
