package publish

import (
	"context"
	"fmt"
	"os"
)

// StepObserver receives progress notifications as the publish sequence
// advances. Implementations must not fail; they exist for console output.
type StepObserver interface {
	StepStarted(step Step)
	StepDone(step Step, detail string)
}

type nopObserver struct{}

func (nopObserver) StepStarted(Step)      {}
func (nopObserver) StepDone(Step, string) {}

// Request describes one publish run.
type Request struct {
	PackageName string
	BundlePath  string
	Track       Track
	ReleaseName string

	// HoldForReview overrides the per-track default when non-nil.
	HoldForReview *bool
}

// Hold resolves whether the commit holds the changes for manual review.
func (r Request) Hold() bool {
	if r.HoldForReview != nil {
		return *r.HoldForReview
	}
	return r.Track.HoldsForReview()
}

// Result reports a committed publish run.
type Result struct {
	EditID        string
	VersionCode   int64
	Track         Track
	HeldForReview bool
}

// Publisher drives the edit-transaction sequence. Exactly one edit is
// created per run and either committed or abandoned; no step is retried and
// a failed run leaves the uncommitted edit to expire server-side.
type Publisher struct {
	svc EditService
	obs StepObserver
}

// New creates a Publisher. obs may be nil.
func New(svc EditService, obs StepObserver) *Publisher {
	if obs == nil {
		obs = nopObserver{}
	}
	return &Publisher{svc: svc, obs: obs}
}

// Publish runs the full sequence: create edit, upload bundle, assign track,
// commit. Any remote failure stops the run at that step.
func (p *Publisher) Publish(ctx context.Context, req Request) (*Result, error) {
	if req.PackageName == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if _, err := ParseTrack(string(req.Track)); err != nil {
		return nil, err
	}

	// The bundle is opened before any remote call so a bad path never
	// creates a dangling edit.
	bundle, err := os.Open(req.BundlePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}
	defer func() { _ = bundle.Close() }()

	p.obs.StepStarted(StepCreateEdit)
	editID, err := p.svc.CreateEdit(ctx, req.PackageName)
	if err != nil {
		return nil, stepErr(StepCreateEdit, err)
	}
	p.obs.StepDone(StepCreateEdit, editID)

	p.obs.StepStarted(StepUploadBundle)
	versionCode, err := p.svc.UploadBundle(ctx, req.PackageName, editID, bundle)
	if err != nil {
		return nil, stepErr(StepUploadBundle, err)
	}
	p.obs.StepDone(StepUploadBundle, fmt.Sprintf("version code %d", versionCode))

	p.obs.StepStarted(StepAssignTrack)
	if err := p.svc.AssignTrack(ctx, req.PackageName, editID, req.Track, versionCode, req.ReleaseName); err != nil {
		return nil, stepErr(StepAssignTrack, err)
	}
	p.obs.StepDone(StepAssignTrack, req.Track.String())

	hold := req.Hold()
	p.obs.StepStarted(StepCommitEdit)
	committedID, err := p.svc.CommitEdit(ctx, req.PackageName, editID, hold)
	if err != nil {
		return nil, stepErr(StepCommitEdit, err)
	}
	p.obs.StepDone(StepCommitEdit, committedID)

	return &Result{
		EditID:        committedID,
		VersionCode:   versionCode,
		Track:         req.Track,
		HeldForReview: hold,
	}, nil
}

// ListTracks reads the current track assignments for a package. The Play API
// only exposes tracks inside an edit, so a throwaway edit is opened and
// deleted around the read.
func (p *Publisher) ListTracks(ctx context.Context, packageName string) ([]TrackInfo, error) {
	if packageName == "" {
		return nil, fmt.Errorf("package name is required")
	}

	editID, err := p.svc.CreateEdit(ctx, packageName)
	if err != nil {
		return nil, stepErr(StepCreateEdit, err)
	}
	// Best effort; an abandoned edit expires server-side anyway.
	defer func() { _ = p.svc.DeleteEdit(ctx, packageName, editID) }()

	infos, err := p.svc.ListTracks(ctx, packageName, editID)
	if err != nil {
		return nil, stepErr(StepListTracks, err)
	}
	return infos, nil
}
