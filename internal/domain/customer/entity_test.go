//go:build unit

package customer_test

import (
	"strings"
	"testing"

	"boxoffice/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkIn(t *testing.T) {
	ref := customer.WalkIn()

	assert.Equal(t, customer.WalkInID, ref.ID)
	assert.Equal(t, "Walk-in Customer", ref.Name)
	assert.True(t, ref.IsWalkIn())
	assert.False(t, ref.IsSessionLocal())
}

func TestNewSessionRef(t *testing.T) {
	tests := []struct {
		name        string
		inName      string
		email       string
		phone       string
		wantErr     error
		wantDisplay string
	}{
		{
			name:        "name is trimmed",
			inName:      "  Jordan Lee  ",
			wantDisplay: "Jordan Lee",
		},
		{
			name:        "email only falls back to walk-in display",
			email:       "jordan@example.com",
			wantDisplay: "Walk-in Customer",
		},
		{
			name:        "phone only falls back to walk-in display",
			phone:       "555-0101",
			wantDisplay: "Walk-in Customer",
		},
		{
			name:    "all fields blank",
			inName:  "   ",
			email:   " ",
			phone:   "",
			wantErr: customer.ErrNoContactField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := customer.NewSessionRef(tt.inName, tt.email, tt.phone)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDisplay, ref.Name)
			assert.True(t, ref.IsSessionLocal())
			assert.False(t, ref.IsWalkIn())
		})
	}
}

func TestNewSessionRef_UniqueIDs(t *testing.T) {
	first, err := customer.NewSessionRef("Jordan", "", "")
	require.NoError(t, err)
	second, err := customer.NewSessionRef("Jordan", "", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewCustomer(t *testing.T) {
	t.Run("trims contact fields", func(t *testing.T) {
		c, err := customer.NewCustomer("  Jordan Lee ", " jordan@example.com ", " 555-0101 ")
		require.NoError(t, err)

		assert.Equal(t, "Jordan Lee", c.Name())
		assert.Equal(t, "jordan@example.com", c.Email())
		assert.Equal(t, "555-0101", c.Phone())
		assert.Zero(t, c.LoyaltyPoints())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := customer.NewCustomer("   ", "jordan@example.com", "")
		assert.ErrorIs(t, err, customer.ErrEmptyName)
	})
}

func TestCustomer_Ref(t *testing.T) {
	c, err := customer.NewCustomer("Jordan Lee", "", "")
	require.NoError(t, err)

	ref := c.Ref()
	assert.Equal(t, c.ID().String(), ref.ID)
	assert.Equal(t, "Jordan Lee", ref.Name)
	assert.False(t, ref.IsWalkIn())
	assert.False(t, strings.HasPrefix(ref.ID, "temp-"))
}

func TestCustomer_AddLoyaltyPoints(t *testing.T) {
	c, err := customer.NewCustomer("Jordan Lee", "", "")
	require.NoError(t, err)

	c.AddLoyaltyPoints(10)
	assert.Equal(t, 10, c.LoyaltyPoints())

	c.AddLoyaltyPoints(-5)
	assert.Equal(t, 10, c.LoyaltyPoints())

	c.AddLoyaltyPoints(0)
	assert.Equal(t, 10, c.LoyaltyPoints())
}
