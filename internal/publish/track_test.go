package publish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrack(t *testing.T) {
	for _, valid := range []string{"internal", "alpha", "beta", "production"} {
		track, err := ParseTrack(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, track.String())
	}

	for _, invalid := range []string{"", "prod", "Internal", "rollout", "PRODUCTION"} {
		_, err := ParseTrack(invalid)
		assert.Error(t, err, "track %q should be rejected", invalid)
	}
}

func TestHoldsForReview(t *testing.T) {
	assert.True(t, TrackProduction.HoldsForReview())
	assert.False(t, TrackInternal.HoldsForReview())
	assert.False(t, TrackAlpha.HoldsForReview())
	assert.False(t, TrackBeta.HoldsForReview())
}

func TestRequestHold(t *testing.T) {
	assert.True(t, Request{Track: TrackProduction}.Hold())
	assert.False(t, Request{Track: TrackBeta}.Hold())

	hold := true
	assert.True(t, Request{Track: TrackBeta, HoldForReview: &hold}.Hold())
	noHold := false
	assert.False(t, Request{Track: TrackProduction, HoldForReview: &noHold}.Hold())
}
