package publish

import (
	"context"
	"io"
)

// MockEditService records calls and allows per-call overrides, in the style
// of MockXxxFunc/MockXxxCalls used across the repo's tests.
type MockEditService struct {
	CreateEditFunc  func(ctx context.Context, packageName string) (string, error)
	CreateEditCalls []string

	UploadBundleFunc  func(ctx context.Context, packageName, editID string, bundle io.Reader) (int64, error)
	UploadBundleCalls []struct {
		PackageName string
		EditID      string
	}

	AssignTrackFunc  func(ctx context.Context, packageName, editID string, track Track, versionCode int64, releaseName string) error
	AssignTrackCalls []struct {
		PackageName string
		EditID      string
		Track       Track
		VersionCode int64
		ReleaseName string
	}

	CommitEditFunc  func(ctx context.Context, packageName, editID string, hold bool) (string, error)
	CommitEditCalls []struct {
		PackageName string
		EditID      string
		Hold        bool
	}

	ListTracksFunc  func(ctx context.Context, packageName, editID string) ([]TrackInfo, error)
	ListTracksCalls []struct {
		PackageName string
		EditID      string
	}

	DeleteEditFunc  func(ctx context.Context, packageName, editID string) error
	DeleteEditCalls []struct {
		PackageName string
		EditID      string
	}
}

var _ EditService = (*MockEditService)(nil)

func (m *MockEditService) CreateEdit(ctx context.Context, packageName string) (string, error) {
	m.CreateEditCalls = append(m.CreateEditCalls, packageName)
	if m.CreateEditFunc != nil {
		return m.CreateEditFunc(ctx, packageName)
	}
	return "edit-1", nil
}

func (m *MockEditService) UploadBundle(ctx context.Context, packageName, editID string, bundle io.Reader) (int64, error) {
	m.UploadBundleCalls = append(m.UploadBundleCalls, struct {
		PackageName string
		EditID      string
	}{packageName, editID})
	if m.UploadBundleFunc != nil {
		return m.UploadBundleFunc(ctx, packageName, editID, bundle)
	}
	return 42, nil
}

func (m *MockEditService) AssignTrack(ctx context.Context, packageName, editID string, track Track, versionCode int64, releaseName string) error {
	m.AssignTrackCalls = append(m.AssignTrackCalls, struct {
		PackageName string
		EditID      string
		Track       Track
		VersionCode int64
		ReleaseName string
	}{packageName, editID, track, versionCode, releaseName})
	if m.AssignTrackFunc != nil {
		return m.AssignTrackFunc(ctx, packageName, editID, track, versionCode, releaseName)
	}
	return nil
}

func (m *MockEditService) CommitEdit(ctx context.Context, packageName, editID string, hold bool) (string, error) {
	m.CommitEditCalls = append(m.CommitEditCalls, struct {
		PackageName string
		EditID      string
		Hold        bool
	}{packageName, editID, hold})
	if m.CommitEditFunc != nil {
		return m.CommitEditFunc(ctx, packageName, editID, hold)
	}
	return editID, nil
}

func (m *MockEditService) ListTracks(ctx context.Context, packageName, editID string) ([]TrackInfo, error) {
	m.ListTracksCalls = append(m.ListTracksCalls, struct {
		PackageName string
		EditID      string
	}{packageName, editID})
	if m.ListTracksFunc != nil {
		return m.ListTracksFunc(ctx, packageName, editID)
	}
	return nil, nil
}

func (m *MockEditService) DeleteEdit(ctx context.Context, packageName, editID string) error {
	m.DeleteEditCalls = append(m.DeleteEditCalls, struct {
		PackageName string
		EditID      string
	}{packageName, editID})
	if m.DeleteEditFunc != nil {
		return m.DeleteEditFunc(ctx, packageName, editID)
	}
	return nil
}
