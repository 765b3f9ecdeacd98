package publish

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const bundleMimeType = "application/octet-stream"

// googleEditService implements EditService against the real
// androidpublisher v3 API.
type googleEditService struct {
	svc *androidpublisher.Service
}

var _ EditService = (*googleEditService)(nil)

// NewEditService creates an EditService backed by the Play Developer API.
func NewEditService(ctx context.Context, opts ...option.ClientOption) (EditService, error) {
	svc, err := androidpublisher.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create androidpublisher client: %w", err)
	}
	return &googleEditService{svc: svc}, nil
}

func (g *googleEditService) CreateEdit(ctx context.Context, packageName string) (string, error) {
	edit, err := g.svc.Edits.Insert(packageName, &androidpublisher.AppEdit{}).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return edit.Id, nil
}

func (g *googleEditService) UploadBundle(ctx context.Context, packageName, editID string, bundle io.Reader) (int64, error) {
	call := g.svc.Edits.Bundles.Upload(packageName, editID)
	call.Media(bundle, googleapi.ContentType(bundleMimeType))
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return 0, err
	}
	return resp.VersionCode, nil
}

func (g *googleEditService) AssignTrack(ctx context.Context, packageName, editID string, track Track, versionCode int64, releaseName string) error {
	update := &androidpublisher.Track{
		Track: track.String(),
		Releases: []*androidpublisher.TrackRelease{{
			Name:         releaseName,
			Status:       "completed",
			VersionCodes: []int64{versionCode},
		}},
	}
	_, err := g.svc.Edits.Tracks.Update(packageName, editID, track.String(), update).Context(ctx).Do()
	return err
}

func (g *googleEditService) CommitEdit(ctx context.Context, packageName, editID string, changesNotSentForReview bool) (string, error) {
	call := g.svc.Edits.Commit(packageName, editID)
	if changesNotSentForReview {
		call.ChangesNotSentForReview(true)
	}
	edit, err := call.Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return edit.Id, nil
}

func (g *googleEditService) ListTracks(ctx context.Context, packageName, editID string) ([]TrackInfo, error) {
	resp, err := g.svc.Edits.Tracks.List(packageName, editID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	infos := make([]TrackInfo, 0, len(resp.Tracks))
	for _, t := range resp.Tracks {
		info := TrackInfo{Track: Track(t.Track)}
		for _, r := range t.Releases {
			info.Releases = append(info.Releases, ReleaseInfo{
				Name:         r.Name,
				Status:       r.Status,
				VersionCodes: r.VersionCodes,
			})
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (g *googleEditService) DeleteEdit(ctx context.Context, packageName, editID string) error {
	return g.svc.Edits.Delete(packageName, editID).Context(ctx).Do()
}
