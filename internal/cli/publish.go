package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/playforge/playpub/internal/auth"
	"github.com/playforge/playpub/internal/publish"
)

// PublishOptions holds options for the publish command
type PublishOptions struct {
	AABPath       string
	PackageName   string
	Track         string
	ReleaseName   string
	ConfigFile    string
	HoldForReview bool
	Yes           bool
	DryRun        bool
	Timeout       time.Duration

	// set from cobra's flag-changed state
	holdSet        bool
	configExplicit bool
}

// newEditService builds the Play API client after resolving credentials.
// Swapped out in tests.
var newEditService = func(ctx context.Context) (publish.EditService, error) {
	creds, err := auth.Load(ctx)
	if err != nil {
		return nil, err
	}
	Debug("Credentials resolved (project: %s)", creds.ProjectID())
	return publish.NewEditService(ctx, creds.ClientOptions()...)
}

func newPublishCmd() *cobra.Command {
	opts := &PublishOptions{}

	cmd := &cobra.Command{
		Use:   "publish [flags]",
		Short: "Publish an app bundle to a Google Play release track",
		Long: `Publish an Android App Bundle to the Google Play Store.

This command:
1. Resolves Application Default Credentials (Workload Identity Federation
   in CI, a service account or gcloud credentials locally)
2. Opens an edit transaction for the package
3. Uploads the app bundle
4. Assigns the uploaded version code to the requested release track
5. Commits the edit

Production releases are committed with the changes held for manual review;
every other track is sent straight to Google's automatic review.

Example:
  playpub publish --aab app-release.aab --package-name com.example.app
  playpub publish --aab app-release.aab --package-name com.example.app --track beta
  playpub publish --aab app-release.aab --package-name com.example.app --track production --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.holdSet = cmd.Flags().Changed("hold-for-review")
			opts.configExplicit = cmd.Flags().Changed("file")
			ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
			defer cancel()
			return runPublish(ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.AABPath, "aab", "", "path to the .aab file (required)")
	cmd.Flags().StringVarP(&opts.PackageName, "package-name", "p", "", "Android package name")
	cmd.Flags().StringVarP(&opts.Track, "track", "t", "", "release track (internal, alpha, beta, production)")
	cmd.Flags().StringVar(&opts.ReleaseName, "release-name", "", "release name shown in the Play Console")
	cmd.Flags().StringVarP(&opts.ConfigFile, "file", "f", defaultConfigFile, "project configuration file")
	cmd.Flags().BoolVar(&opts.HoldForReview, "hold-for-review", false, "hold the committed changes for manual review (default: only for production)")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip confirmation prompt")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "show what would be published without calling the API")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 15*time.Minute, "overall timeout for the publish run")

	_ = cmd.MarkFlagRequired("aab")

	return cmd
}

func runPublish(ctx context.Context, opts *PublishOptions) error {
	cfg, err := loadProjectConfig(opts.ConfigFile, opts.configExplicit)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags win over file values.
	packageName := opts.PackageName
	if packageName == "" {
		packageName = cfg.Package
	}
	if packageName == "" {
		return fmt.Errorf("package name is required (--package-name or 'package' in %s)", opts.ConfigFile)
	}

	trackName := opts.Track
	if trackName == "" {
		trackName = cfg.Track
	}
	track, err := publish.ParseTrack(trackName)
	if err != nil {
		return err
	}

	releaseName := opts.ReleaseName
	if releaseName == "" {
		releaseName = cfg.ReleaseName
	}

	// The bundle must exist before any credential or network work happens.
	if info, err := os.Stat(opts.AABPath); err != nil {
		return fmt.Errorf("bundle not found: %s", opts.AABPath)
	} else if info.IsDir() {
		return fmt.Errorf("bundle path is a directory: %s", opts.AABPath)
	}

	req := publish.Request{
		PackageName: packageName,
		BundlePath:  opts.AABPath,
		Track:       track,
		ReleaseName: releaseName,
	}
	if opts.holdSet {
		req.HoldForReview = &opts.HoldForReview
	}

	Info("Publishing %s to Google Play", opts.AABPath)
	fmt.Fprintf(colorOutput, "  Package: %s\n", packageName)
	fmt.Fprintf(colorOutput, "  Track:   %s\n", track)

	if opts.DryRun {
		displayPublishPlan(req)
		return nil
	}

	if track == publish.TrackProduction && !opts.Yes {
		if !promptConfirm(fmt.Sprintf("Publish to the production track of %s?", packageName), false) {
			return fmt.Errorf("publish cancelled")
		}
	}

	svc, err := newEditService(ctx)
	if err != nil {
		return err
	}

	publisher := publish.New(svc, &stepPrinter{})
	result, err := publisher.Publish(ctx, req)
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	fmt.Fprintln(colorOutput)
	Success("Published version code %d to %s (edit %s)", result.VersionCode, result.Track, result.EditID)
	if result.HeldForReview {
		Warn("Changes committed but held for manual review; release them in the Play Console")
	} else {
		Info("Changes sent for automatic review")
	}

	return nil
}

func displayPublishPlan(req publish.Request) {
	fmt.Fprintln(colorOutput)
	Info("Dry run - no changes will be made")
	fmt.Fprintln(colorOutput, "  Would perform:")
	fmt.Fprintf(colorOutput, "  1. Create edit transaction for %s\n", req.PackageName)
	fmt.Fprintf(colorOutput, "  2. Upload bundle %s\n", req.BundlePath)
	fmt.Fprintf(colorOutput, "  3. Assign uploaded version code to track %q\n", req.Track)
	if req.Hold() {
		fmt.Fprintln(colorOutput, "  4. Commit edit, holding changes for manual review")
	} else {
		fmt.Fprintln(colorOutput, "  4. Commit edit, sending changes for automatic review")
	}
}

func promptConfirm(message string, defaultYes bool) bool {
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultYes,
	}

	var result bool
	if err := survey.AskOne(prompt, &result); err != nil {
		return false
	}

	return result
}

// stepPrinter reports publish progress on the console. The upload and commit
// steps get a spinner since they can take a while on large bundles.
type stepPrinter struct {
	sp *spinner.Spinner
}

func (p *stepPrinter) StepStarted(step publish.Step) {
	switch step {
	case publish.StepUploadBundle, publish.StepCommitEdit:
		p.sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		p.sp.Suffix = fmt.Sprintf(" %s...", step)
		p.sp.Start()
	default:
		Debug("%s...", step)
	}
}

func (p *stepPrinter) StepDone(step publish.Step, detail string) {
	if p.sp != nil {
		p.sp.Stop()
		p.sp = nil
	}
	if detail != "" {
		Success("%s (%s)", step, detail)
	} else {
		Success("%s", step)
	}
}
