package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/playforge/playpub/internal/publish"
)

// TracksOptions holds options for the tracks command
type TracksOptions struct {
	PackageName string
	ConfigFile  string
	Output      string
	Timeout     time.Duration

	configExplicit bool
}

func newTracksCmd() *cobra.Command {
	opts := &TracksOptions{}

	cmd := &cobra.Command{
		Use:   "tracks [flags]",
		Short: "List release tracks and their current releases",
		Long: `List the release tracks of a package and the releases currently
assigned to them. A throwaway edit transaction is opened for the read and
deleted afterwards; nothing is modified.

Example:
  playpub tracks --package-name com.example.app
  playpub tracks --package-name com.example.app -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configExplicit = cmd.Flags().Changed("file")
			ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
			defer cancel()
			return runTracks(ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.PackageName, "package-name", "p", "", "Android package name")
	cmd.Flags().StringVarP(&opts.ConfigFile, "file", "f", defaultConfigFile, "project configuration file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "table", "output format (table, json)")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", time.Minute, "timeout for the listing")

	return cmd
}

func runTracks(ctx context.Context, opts *TracksOptions) error {
	cfg, err := loadProjectConfig(opts.ConfigFile, opts.configExplicit)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	packageName := opts.PackageName
	if packageName == "" {
		packageName = cfg.Package
	}
	if packageName == "" {
		return fmt.Errorf("package name is required (--package-name or 'package' in %s)", opts.ConfigFile)
	}

	svc, err := newEditService(ctx)
	if err != nil {
		return err
	}

	publisher := publish.New(svc, nil)
	infos, err := publisher.ListTracks(ctx, packageName)
	if err != nil {
		return fmt.Errorf("failed to list tracks: %w", err)
	}

	return displayTracks(infos, opts.Output)
}

func displayTracks(infos []publish.TrackInfo, format string) error {
	dw := NewDataWriter(colorOutput, format)
	if OutputFormat(format) == OutputFormatJSON {
		return dw.WriteStruct(infos)
	}

	tb := NewTableBuilder("TRACK", "RELEASE", "STATUS", "VERSION CODES")
	for _, info := range infos {
		if len(info.Releases) == 0 {
			tb.AddRow(info.Track.String(), "-", "-", "-")
			continue
		}
		for _, r := range info.Releases {
			name := r.Name
			if name == "" {
				name = "-"
			}
			tb.AddRow(info.Track.String(), name, r.Status, joinVersionCodes(r.VersionCodes))
		}
	}
	return tb.Write(dw)
}

func joinVersionCodes(codes []int64) string {
	if len(codes) == 0 {
		return "-"
	}
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.FormatInt(c, 10)
	}
	return strings.Join(parts, ", ")
}
