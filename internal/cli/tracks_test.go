package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playforge/playpub/internal/publish"
)

func TestTracksCommand(t *testing.T) {
	cmd := newTracksCmd()
	assert.NotNil(t, cmd)
	assert.Equal(t, "tracks [flags]", cmd.Use)
	assert.Contains(t, cmd.Short, "tracks")
}

func TestRunTracksTable(t *testing.T) {
	fake := &fakeEditService{
		tracks: []publish.TrackInfo{
			{Track: publish.TrackInternal, Releases: []publish.ReleaseInfo{
				{Name: "1.0", Status: "completed", VersionCodes: []int64{7, 8}},
			}},
			{Track: publish.TrackProduction},
		},
	}
	withFakeService(t, fake)
	out := captureOutput(t)

	opts := &TracksOptions{
		PackageName: "com.example.app",
		ConfigFile:  filepath.Join(t.TempDir(), "playpub.yaml"),
		Output:      "table",
	}

	err := runTracks(context.Background(), opts)
	require.NoError(t, err)

	// The read-only path still cleans up its throwaway edit.
	assert.Equal(t, 1, fake.createCalls)
	assert.Equal(t, 1, fake.deleteCalls)

	output := out.String()
	assert.Contains(t, output, "TRACK")
	assert.Contains(t, output, "internal")
	assert.Contains(t, output, "7, 8")
	assert.Contains(t, output, "production")
}

func TestRunTracksJSON(t *testing.T) {
	fake := &fakeEditService{
		tracks: []publish.TrackInfo{
			{Track: publish.TrackBeta, Releases: []publish.ReleaseInfo{
				{Status: "completed", VersionCodes: []int64{100}},
			}},
		},
	}
	withFakeService(t, fake)
	out := captureOutput(t)

	opts := &TracksOptions{
		PackageName: "com.example.app",
		ConfigFile:  filepath.Join(t.TempDir(), "playpub.yaml"),
		Output:      "json",
	}

	err := runTracks(context.Background(), opts)
	require.NoError(t, err)

	var infos []publish.TrackInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, publish.TrackBeta, infos[0].Track)
	assert.Equal(t, []int64{100}, infos[0].Releases[0].VersionCodes)
}

func TestRunTracksMissingPackageName(t *testing.T) {
	fake := &fakeEditService{}
	factoryCalls := withFakeService(t, fake)
	captureOutput(t)

	opts := &TracksOptions{
		ConfigFile: filepath.Join(t.TempDir(), "playpub.yaml"),
		Output:     "table",
	}

	err := runTracks(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package name is required")
	assert.Zero(t, *factoryCalls)
}

func TestJoinVersionCodes(t *testing.T) {
	assert.Equal(t, "-", joinVersionCodes(nil))
	assert.Equal(t, "42", joinVersionCodes([]int64{42}))
	assert.Equal(t, "1, 2, 3", joinVersionCodes([]int64{1, 2, 3}))
}
