package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

var takenAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestTakeComputesTotalAndTimestamp(t *testing.T) {
	s := NewStore()

	snap := s.Take([]cart.LineItem{
		{ProductID: "1", Price: 10, Quantity: 2},
		{ProductID: "2", Price: 5, Quantity: 1},
	}, takenAt)

	assert.Equal(t, 25.0, snap.Total)
	assert.Equal(t, takenAt, snap.CreatedAt)
	assert.Len(t, snap.Items, 2)
}

func TestTakeReplacesPriorSnapshot(t *testing.T) {
	s := NewStore()

	s.Take([]cart.LineItem{{ProductID: "1", Price: 10, Quantity: 1}}, takenAt)
	s.Take([]cart.LineItem{{ProductID: "2", Price: 3, Quantity: 2}}, takenAt.Add(time.Minute))

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, 6.0, current.Total)
	require.Len(t, current.Items, 1)
	assert.Equal(t, "2", current.Items[0].ProductID)
}

func TestSnapshotIsDecoupledFromSource(t *testing.T) {
	s := NewStore()

	items := []cart.LineItem{{ProductID: "1", Price: 10, Quantity: 2}}
	s.Take(items, takenAt)

	items[0].Quantity = 99

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, 2, current.Items[0].Quantity)
}

func TestCurrentReturnsNilWhenEmpty(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Current())
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Take([]cart.LineItem{{ProductID: "1", Price: 10, Quantity: 1}}, takenAt)

	s.Clear()

	assert.Nil(t, s.Current())
}
