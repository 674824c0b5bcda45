package randomness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randcheck/domain/core"
	"randcheck/internal/testkit"
)

func TestRunAll(t *testing.T) {
	seq := testkit.Bernoulli(300, 0.5, 7)
	res, err := RunAll(context.Background(), seq)
	require.NoError(t, err)

	require.NotNil(t, res.Runs)
	require.NotNil(t, res.AutoCorrelation)
	require.NotNil(t, res.Serial)
	require.NotNil(t, res.Gap)

	for name, p := range map[string]float64{
		"runs":             res.Runs.P,
		"auto_correlation": res.AutoCorrelation.P,
		"serial":           res.Serial.P,
		"gap":              res.Gap.P,
	} {
		assert.GreaterOrEqualf(t, p, 0.0, "%s p-value below 0", name)
		assert.LessOrEqualf(t, p, 1.0, "%s p-value above 1", name)
	}
	assert.Equal(t, seq[0], res.Gap.Item)
}

func TestRunAll_MatchesIndividualTests(t *testing.T) {
	seq := testkit.Bernoulli(250, 0.5, 21)
	batch, err := RunAll(context.Background(), seq)
	require.NoError(t, err)

	runs, err := WaldWolfowitz(seq)
	require.NoError(t, err)
	assert.Equal(t, runs, batch.Runs)

	serial, err := SerialTest(seq)
	require.NoError(t, err)
	assert.Equal(t, serial, batch.Serial)
}

func TestRunAll_DegenerateInputFailsBattery(t *testing.T) {
	_, err := RunAll(context.Background(), testkit.Constant(50, 1))
	require.Error(t, err)
	assert.True(t, core.IsDegenerateInput(err))
}

func TestRunAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunAll(ctx, testkit.Bernoulli(100, 0.5, 1))
	assert.ErrorIs(t, err, context.Canceled)
}
