package randomness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randcheck/domain/core"
	"randcheck/internal/testkit"
)

func TestAutoCorrelation_Reference(t *testing.T) {
	res, err := AutoCorrelation([]byte("00000001111111111100000000"))
	require.NoError(t, err)

	assert.InDelta(t, 0.8376623376623375, res.AutoCorrelation, 1e-9)
	assert.Less(t, res.P, 0.05)
}

func TestAutoCorrelation_AlternatingIsAntiCorrelated(t *testing.T) {
	res, err := AutoCorrelation(testkit.Alternating(40))
	require.NoError(t, err)

	assert.InDelta(t, -1.0, res.AutoCorrelation, 1e-12)
	assert.Less(t, res.P, 0.05)
}

func TestAutoCorrelation_CodingIsSymmetric(t *testing.T) {
	// Swapping which value appears first must not change the coefficient.
	a, err := AutoCorrelation([]byte("0010110100"))
	require.NoError(t, err)
	b, err := AutoCorrelation([]byte("1101001011"))
	require.NoError(t, err)
	assert.InDelta(t, a.AutoCorrelation, b.AutoCorrelation, 1e-12)
}

func TestAutoCorrelation_Errors(t *testing.T) {
	_, err := AutoCorrelation([]int{1})
	assert.ErrorIs(t, err, core.ErrSequenceTooShort)

	_, err = AutoCorrelation(testkit.Constant(30, 5))
	assert.True(t, core.IsDegenerateInput(err))

	_, err = AutoCorrelation([]byte("0120101"))
	assert.ErrorIs(t, err, core.ErrAlphabetTooLarge)

	// Two distinct values overall, but one shifted window is constant.
	_, err = AutoCorrelation([]int{0, 1, 1, 1})
	assert.True(t, core.IsDegenerateInput(err))
}

func TestAutoCorrelation_Idempotent(t *testing.T) {
	seq := testkit.Bernoulli(150, 0.5, 11)
	first, err := AutoCorrelation(seq)
	require.NoError(t, err)
	second, err := AutoCorrelation(seq)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAutoCorrelation_PValueRange(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		res, err := AutoCorrelation(testkit.Bernoulli(120, 0.5, seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.P, 0.0)
		assert.LessOrEqual(t, res.P, 1.0)
	}
}
