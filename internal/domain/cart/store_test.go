//go:build unit

package cart_test

import (
	"context"
	"errors"
	"testing"

	"hotel-front/internal/domain/cart"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingPersister keeps the last saved sequence; present=false means the
// entry is absent, which is distinct from an empty saved sequence.
type recordingPersister[T cart.Item] struct {
	items   []T
	present bool
	saves   int
	clears  int
}

func (p *recordingPersister[T]) Load(context.Context) ([]T, error) {
	if !p.present {
		return nil, nil
	}
	return append([]T(nil), p.items...), nil
}

func (p *recordingPersister[T]) Save(_ context.Context, items []T) error {
	p.items = append([]T(nil), items...)
	p.present = true
	p.saves++
	return nil
}

func (p *recordingPersister[T]) Clear(context.Context) error {
	p.items = nil
	p.present = false
	p.clears++
	return nil
}

type MockPersister struct {
	mock.Mock
}

func (m *MockPersister) Load(ctx context.Context) ([]cart.ReservationItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]cart.ReservationItem)
	return items, args.Error(1)
}

func (m *MockPersister) Save(ctx context.Context, items []cart.ReservationItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *MockPersister) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func room(number, checkIn, checkOut string, guests int) cart.ReservationItem {
	in, _ := cart.ParseDate(checkIn)
	out, _ := cart.ParseDate(checkOut)
	return cart.ReservationItem{RoomNumber: number, CheckIn: in, CheckOut: out, GuestCount: guests}
}

func TestStoreAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("adding the same reservation twice keeps one entry", func(t *testing.T) {
		p := &recordingPersister[cart.ReservationItem]{}
		store, err := cart.Open[cart.ReservationItem](ctx, p)
		require.NoError(t, err)

		item := room("101", "2025-09-08", "2025-09-10", 2)
		added, err := store.Add(ctx, item)
		require.NoError(t, err)
		assert.True(t, added)

		added, err = store.Add(ctx, item)
		require.NoError(t, err)
		assert.False(t, added)

		assert.Equal(t, 1, store.Count())
		assert.Equal(t, 1, p.saves, "duplicate add must not write")
		assert.Equal(t, []cart.ReservationItem{item}, p.items)
	})

	t.Run("guest count is not part of identity", func(t *testing.T) {
		p := &recordingPersister[cart.ReservationItem]{}
		store, err := cart.Open[cart.ReservationItem](ctx, p)
		require.NoError(t, err)

		_, err = store.Add(ctx, room("101", "2025-09-08", "2025-09-10", 2))
		require.NoError(t, err)
		added, err := store.Add(ctx, room("101", "2025-09-08", "2025-09-10", 4))
		require.NoError(t, err)

		assert.False(t, added)
		assert.Equal(t, 2, store.Items()[0].GuestCount)
	})

	t.Run("different dates or rooms are distinct and keep insertion order", func(t *testing.T) {
		p := &recordingPersister[cart.ReservationItem]{}
		store, err := cart.Open[cart.ReservationItem](ctx, p)
		require.NoError(t, err)

		items := []cart.ReservationItem{
			room("101", "2025-09-08", "2025-09-10", 2),
			room("101", "2025-09-08", "2025-09-11", 2),
			room("102", "2025-09-08", "2025-09-10", 1),
			room("101", "2025-09-07", "2025-09-10", 3),
		}
		for _, it := range items {
			_, err := store.Add(ctx, it)
			require.NoError(t, err)
		}

		if diff := cmp.Diff(items, store.Items()); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, len(items), p.saves)
	})

	t.Run("random add sequences never hold duplicate keys", func(t *testing.T) {
		p := &recordingPersister[cart.ReservationItem]{}
		store, err := cart.Open[cart.ReservationItem](ctx, p)
		require.NoError(t, err)

		rooms := []string{"101", "102", "103"}
		days := []string{"2025-09-08", "2025-09-09", "2025-09-10"}
		for i := 0; i < 60; i++ {
			in := days[i%2]
			out := days[2-(i%2)]
			_, err := store.Add(ctx, room(rooms[i%len(rooms)], in, out, 1+i%3))
			require.NoError(t, err)
		}

		seen := map[string]bool{}
		for _, it := range store.Items() {
			assert.False(t, seen[it.DedupKey()], "duplicate key %s", it.DedupKey())
			seen[it.DedupKey()] = true
		}
		assert.Equal(t, 6, store.Count())
	})
}

func TestStoreRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes every entry with the same key", func(t *testing.T) {
		p := &recordingPersister[cart.ReservationItem]{}
		store, err := cart.Open[cart.ReservationItem](ctx, p)
		require.NoError(t, err)

		keep := room("102", "2025-09-08", "2025-09-10", 1)
		drop := room("101", "2025-09-08", "2025-09-10", 2)
		require.NoError(t, store.SetAll(ctx, []cart.ReservationItem{drop, keep}))

		require.NoError(t, store.Remove(ctx, room("101", "2025-09-08", "2025-09-10", 9)))
		assert.Equal(t, []cart.ReservationItem{keep}, store.Items())
		assert.Equal(t, []cart.ReservationItem{keep}, p.items)
	})

	t.Run("removing an absent item still re-persists the unchanged sequence", func(t *testing.T) {
		p := &recordingPersister[cart.ReservationItem]{}
		store, err := cart.Open[cart.ReservationItem](ctx, p)
		require.NoError(t, err)

		item := room("101", "2025-09-08", "2025-09-10", 2)
		_, err = store.Add(ctx, item)
		require.NoError(t, err)
		savesBefore := p.saves

		require.NoError(t, store.Remove(ctx, room("999", "2025-09-08", "2025-09-10", 2)))
		require.NoError(t, store.Remove(ctx, room("999", "2025-09-08", "2025-09-10", 2)))

		assert.Equal(t, savesBefore+2, p.saves)
		assert.Equal(t, []cart.ReservationItem{item}, p.items)
	})

	t.Run("removing the last item persists an empty sequence", func(t *testing.T) {
		p := &recordingPersister[cart.ReservationItem]{}
		store, err := cart.Open[cart.ReservationItem](ctx, p)
		require.NoError(t, err)

		item := room("101", "2025-09-08", "2025-09-10", 2)
		_, err = store.Add(ctx, item)
		require.NoError(t, err)
		require.NoError(t, store.Remove(ctx, item))

		assert.True(t, p.present)
		assert.Empty(t, p.items)
		assert.Equal(t, 0, p.clears)
	})
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister[cart.ReservationItem]{}
	store, err := cart.Open[cart.ReservationItem](ctx, p)
	require.NoError(t, err)

	_, err = store.Add(ctx, room("101", "2025-09-08", "2025-09-10", 2))
	require.NoError(t, err)
	require.NoError(t, store.Clear(ctx))

	assert.Equal(t, 0, store.Count())
	assert.False(t, p.present, "clear must delete the entry, not store an empty sequence")
	assert.Equal(t, 1, p.clears)

	loaded, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStoreSetAll(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister[cart.ReservationItem]{}
	store, err := cart.Open[cart.ReservationItem](ctx, p)
	require.NoError(t, err)

	a := room("101", "2025-09-08", "2025-09-10", 2)
	b := room("102", "2025-09-08", "2025-09-10", 2)
	require.NoError(t, store.SetAll(ctx, []cart.ReservationItem{a, b, a}))

	assert.Equal(t, []cart.ReservationItem{a, b}, store.Items())
	assert.Equal(t, []cart.ReservationItem{a, b}, p.items)
}

func TestOpenHydratesFromPersister(t *testing.T) {
	ctx := context.Background()
	a := room("101", "2025-09-08", "2025-09-10", 2)
	p := &recordingPersister[cart.ReservationItem]{items: []cart.ReservationItem{a}, present: true}

	store, err := cart.Open[cart.ReservationItem](ctx, p)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Count())
	assert.Equal(t, 0, p.saves, "hydration must not write")
}

func TestStorageFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	errQuota := errors.New("quota exceeded")

	t.Run("load", func(t *testing.T) {
		m := new(MockPersister)
		m.On("Load", mock.Anything).Return(nil, errQuota)

		_, err := cart.Open[cart.ReservationItem](ctx, m)
		assert.ErrorIs(t, err, errQuota)
		m.AssertExpectations(t)
	})

	t.Run("save and clear", func(t *testing.T) {
		m := new(MockPersister)
		m.On("Load", mock.Anything).Return([]cart.ReservationItem{}, nil)
		m.On("Save", mock.Anything, mock.Anything).Return(errQuota)
		m.On("Clear", mock.Anything).Return(errQuota)

		store, err := cart.Open[cart.ReservationItem](ctx, m)
		require.NoError(t, err)

		_, err = store.Add(ctx, room("101", "2025-09-08", "2025-09-10", 2))
		assert.ErrorIs(t, err, errQuota)
		assert.ErrorIs(t, store.Remove(ctx, room("101", "2025-09-08", "2025-09-10", 2)), errQuota)
		assert.ErrorIs(t, store.SetAll(ctx, nil), errQuota)
		assert.ErrorIs(t, store.Clear(ctx), errQuota)
		m.AssertExpectations(t)
	})

	t.Run("failed writes leave the store unchanged", func(t *testing.T) {
		kept := room("101", "2025-09-08", "2025-09-10", 2)
		m := new(MockPersister)
		m.On("Load", mock.Anything).Return([]cart.ReservationItem{kept}, nil)
		m.On("Save", mock.Anything, mock.Anything).Return(errQuota)
		m.On("Clear", mock.Anything).Return(errQuota)

		store, err := cart.Open[cart.ReservationItem](ctx, m)
		require.NoError(t, err)

		added, err := store.Add(ctx, room("102", "2025-09-08", "2025-09-10", 1))
		assert.ErrorIs(t, err, errQuota)
		assert.False(t, added)
		assert.ErrorIs(t, store.Remove(ctx, kept), errQuota)
		assert.ErrorIs(t, store.SetAll(ctx, []cart.ReservationItem{room("103", "2025-09-08", "2025-09-10", 1)}), errQuota)
		assert.ErrorIs(t, store.Clear(ctx), errQuota)

		if diff := cmp.Diff([]cart.ReservationItem{kept}, store.Items()); diff != "" {
			t.Errorf("items after failed writes (-want +got):\n%s", diff)
		}
	})
}

func TestServicesStore(t *testing.T) {
	ctx := context.Background()
	p := &recordingPersister[cart.ServiceItem]{}
	store, err := cart.Open[cart.ServiceItem](ctx, p)
	require.NoError(t, err)

	massage := cart.ServiceItem{ServiceID: 3, SlotID: 41, Title: "Massage", Date: "2025-09-08T08:30", Duration: 60, Price: decimal.RequireFromString("150.00")}
	sauna := cart.ServiceItem{ServiceID: 5, SlotID: 7, Title: "Sauna", Date: "2025-09-08T12:00", Duration: 30, Price: decimal.RequireFromString("49.99")}

	for _, it := range []cart.ServiceItem{massage, sauna, massage} {
		_, err := store.Add(ctx, it)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, store.Count())
	assert.True(t, decimal.RequireFromString("199.99").Equal(cart.TotalPrice(store.Items())))

	other := massage
	other.SlotID = 42
	added, err := store.Add(ctx, other)
	require.NoError(t, err)
	assert.True(t, added, "another slot of the same service is a separate booking")
}
