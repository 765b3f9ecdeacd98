package publish

import (
	"context"
	"io"
)

// EditService is the slice of the Play Developer API the publisher drives.
// All mutations happen inside a server-owned edit transaction identified by
// an opaque edit ID; nothing is visible to users until the edit is committed.
type EditService interface {
	// CreateEdit opens a new edit transaction for the package.
	CreateEdit(ctx context.Context, packageName string) (editID string, err error)

	// UploadBundle streams an app bundle into the edit and returns the
	// version code the service assigned to it.
	UploadBundle(ctx context.Context, packageName, editID string, bundle io.Reader) (versionCode int64, err error)

	// AssignTrack points a release track at the uploaded version code with
	// release status "completed".
	AssignTrack(ctx context.Context, packageName, editID string, track Track, versionCode int64, releaseName string) error

	// CommitEdit finalizes the edit. When changesNotSentForReview is set the
	// committed changes are held for manual review instead of being sent to
	// Google's automatic review.
	CommitEdit(ctx context.Context, packageName, editID string, changesNotSentForReview bool) (committedID string, err error)

	// ListTracks returns the current track assignments within the edit.
	ListTracks(ctx context.Context, packageName, editID string) ([]TrackInfo, error)

	// DeleteEdit abandons an uncommitted edit.
	DeleteEdit(ctx context.Context, packageName, editID string) error
}

// TrackInfo is a read-only view of one track's current releases.
type TrackInfo struct {
	Track    Track         `json:"track"`
	Releases []ReleaseInfo `json:"releases,omitempty"`
}

// ReleaseInfo describes one release on a track.
type ReleaseInfo struct {
	Name         string  `json:"name,omitempty"`
	Status       string  `json:"status,omitempty"`
	VersionCodes []int64 `json:"versionCodes,omitempty"`
}
