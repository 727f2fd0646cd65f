package catalog

import (
	"testing"

	"esgweb/internal/schema"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, c.Categories)

	m, err := c.Material("electricity", "grid", "grid-kwh")
	require.NoError(t, err)
	assert.Equal(t, "kWh", m.Unit)
	assert.True(t, decimal.RequireFromString("0.4594").Equal(m.Factor))
}

func TestCatalog_Resolve(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	testCases := []struct {
		name        string
		state       schema.SelectorState
		expectedErr error
		emission    string
	}{
		{
			name: "grid electricity",
			state: schema.SelectorState{
				Category:    "electricity",
				Separate:    "grid",
				RawMaterial: "grid-kwh",
				Quantity:    decimal.RequireFromString("1000"),
			},
			emission: "459.4",
		},
		{
			name:        "unknown category",
			state:       schema.SelectorState{Category: "fuel"},
			expectedErr: ErrUnknownCategory,
		},
		{
			name:        "unknown separate",
			state:       schema.SelectorState{Category: "electricity", Separate: "diesel"},
			expectedErr: ErrUnknownSeparate,
		},
		{
			name:        "unknown material",
			state:       schema.SelectorState{Category: "electricity", Separate: "grid", RawMaterial: "coal"},
			expectedErr: ErrUnknownMaterial,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolved, err := c.Resolve(tc.state)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.emission).Equal(resolved.Emission()), resolved.Emission().String())
		})
	}
}

func TestParse_InvalidFactor(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  - name: x
    separates:
      - name: y
        materials:
          - id: z
            factor: "abc"
`))
	assert.Error(t, err)
}
