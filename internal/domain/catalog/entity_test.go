//go:build unit

package catalog_test

import (
	"testing"

	"boxoffice/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketType(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tt, err := catalog.NewTicketType("  Adult  ", decimal.NewFromInt(20))
		require.NoError(t, err)
		assert.Equal(t, "Adult", tt.Name())
		assert.True(t, tt.IsActive())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := catalog.NewTicketType("   ", decimal.NewFromInt(20))
		assert.ErrorIs(t, err, catalog.ErrEmptyName)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := catalog.NewTicketType("Adult", decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, catalog.ErrNegativePrice)
	})

	t.Run("free admission is allowed", func(t *testing.T) {
		tt, err := catalog.NewTicketType("Infant", decimal.Zero)
		require.NoError(t, err)
		assert.True(t, tt.BaseCost().IsZero())
	})
}

func TestTicketType_Updates(t *testing.T) {
	tt, err := catalog.NewTicketType("Adult", decimal.NewFromInt(20))
	require.NoError(t, err)

	require.NoError(t, tt.Rename("Adult Day Pass"))
	assert.Equal(t, "Adult Day Pass", tt.Name())
	assert.ErrorIs(t, tt.Rename(" "), catalog.ErrEmptyName)

	require.NoError(t, tt.Reprice(decimal.NewFromInt(25)))
	assert.ErrorIs(t, tt.Reprice(decimal.NewFromInt(-5)), catalog.ErrNegativePrice)

	tt.Deactivate()
	assert.False(t, tt.IsActive())
	tt.Activate()
	assert.True(t, tt.IsActive())
}

func TestNewAddOn(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		a, err := catalog.NewAddOn("Locker", decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, "Locker", a.Name())
		assert.True(t, a.IsActive())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := catalog.NewAddOn("", decimal.NewFromInt(5))
		assert.ErrorIs(t, err, catalog.ErrEmptyName)
	})
}

func TestNewTimeSlotDef(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		start    string
		end      string
		capacity int
		wantErr  error
	}{
		{name: "valid", label: "Morning", start: "09:00", end: "12:00", capacity: 100},
		{name: "blank label", label: " ", start: "09:00", end: "12:00", capacity: 100, wantErr: catalog.ErrEmptyLabel},
		{name: "unparseable start", label: "Morning", start: "9am", end: "12:00", capacity: 100, wantErr: catalog.ErrInvalidSlotTime},
		{name: "start after end", label: "Morning", start: "13:00", end: "12:00", capacity: 100, wantErr: catalog.ErrInvalidSlotTime},
		{name: "start equals end", label: "Morning", start: "12:00", end: "12:00", capacity: 100, wantErr: catalog.ErrInvalidSlotTime},
		{name: "zero capacity", label: "Morning", start: "09:00", end: "12:00", capacity: 0, wantErr: catalog.ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := catalog.NewTimeSlotDef(tt.label, tt.start, tt.end, tt.capacity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, slot.Capacity())
		})
	}
}

func TestTimeSlotDef_Resize(t *testing.T) {
	slot, err := catalog.NewTimeSlotDef("Morning", "09:00", "12:00", 100)
	require.NoError(t, err)

	require.NoError(t, slot.Resize(150))
	assert.Equal(t, 150, slot.Capacity())
	assert.ErrorIs(t, slot.Resize(0), catalog.ErrInvalidCapacity)
}
