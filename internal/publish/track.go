package publish

import "fmt"

// Track is a Google Play release track. Tracks control which user
// population receives an update and which review process applies.
type Track string

const (
	TrackInternal   Track = "internal"
	TrackAlpha      Track = "alpha"
	TrackBeta       Track = "beta"
	TrackProduction Track = "production"
)

// ParseTrack validates a track name from user input.
func ParseTrack(s string) (Track, error) {
	switch t := Track(s); t {
	case TrackInternal, TrackAlpha, TrackBeta, TrackProduction:
		return t, nil
	}
	return "", fmt.Errorf("unknown track %q (expected internal, alpha, beta, or production)", s)
}

// HoldsForReview reports whether releases on this track are held back from
// automatic review by default. Production releases are held so they can be
// gated manually in the Play Console; every other track goes straight to
// Google's automatic review.
func (t Track) HoldsForReview() bool {
	return t == TrackProduction
}

func (t Track) String() string { return string(t) }
