package carbon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate_ReferenceValues(t *testing.T) {
	result, err := Calculate(Inputs{
		Transport:   20,
		Electricity: 200,
		Diet:        2.5,
		Flights:     2,
		Waste:       5,
	})
	require.NoError(t, err)

	require.InDelta(t, 1.460, Round3(result.Transport), 1e-9)
	require.InDelta(t, 1.680, Round3(result.Electricity), 1e-9)
	require.InDelta(t, 2.500, Round3(result.Diet), 1e-9)
	require.InDelta(t, 0.500, Round3(result.Flights), 1e-9)
	require.InDelta(t, 0.260, Round3(result.Waste), 1e-9)
	require.InDelta(t, 6.400, Round3(result.Total), 1e-9)
}

func TestCalculate_TotalIsSumOfComponents(t *testing.T) {
	cases := []Inputs{
		{},
		{Transport: 1, Electricity: 1, Diet: 1, Flights: 1, Waste: 1},
		{Transport: 12.7, Electricity: 340.2, Diet: 3.5, Flights: 0, Waste: 8.25},
		{Diet: -4.2}, // diet is trusted as given, sign included
		{Transport: 0.001, Electricity: 0.001, Diet: 0.001, Flights: 0.001, Waste: 0.001},
	}

	for _, in := range cases {
		result, err := Calculate(in)
		require.NoError(t, err)

		sum := result.Transport + result.Electricity + result.Diet + result.Flights + result.Waste
		require.Equal(t, sum, result.Total)
	}
}

func TestCalculate_NoDoubleRoundingDrift(t *testing.T) {
	// Each component lands on a .0005 boundary after rounding-relevant
	// digits, so summing pre-rounded components would drift upward.
	result, err := Calculate(Inputs{
		Diet:    1.0004,
		Flights: 4.002, // 4.002 * 0.25 = 1.0005
	})
	require.NoError(t, err)

	// The result keeps unrounded components; the total is the true sum.
	require.Equal(t, result.Diet+result.Flights, result.Total)
	// Rounding the true sum is not the same as summing rounded parts.
	require.Equal(t, Round3(result.Total), Round3(1.0004+4.002*0.25))
}

func TestCalculate_NegativeInputsRejected(t *testing.T) {
	cases := []Inputs{
		{Transport: -1},
		{Electricity: -0.5},
		{Flights: -2},
		{Waste: -10},
	}

	for _, in := range cases {
		_, err := Calculate(in)
		require.ErrorIs(t, err, ErrNegativeInput)
	}
}

func TestCalculate_ZeroInputsAreValid(t *testing.T) {
	result, err := Calculate(Inputs{Diet: DietMixed})
	require.NoError(t, err)
	require.Equal(t, DietMixed, result.Total)
}

func TestRound3(t *testing.T) {
	require.Equal(t, 1.46, Round3(1.4599999999))
	require.Equal(t, 6.4, Round3(6.4000000001))
	require.Equal(t, 0.001, Round3(0.0005))
	require.Equal(t, -0.001, Round3(-0.0005))
	require.Equal(t, 0.0, Round3(0))
}
