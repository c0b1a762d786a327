// Package cli contains the picarc command-line surface.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"picarc/internal/app"
	"picarc/internal/config"
	appErrors "picarc/internal/errors"
	"picarc/internal/infra/exif"
	"picarc/internal/infra/fs"
	zipinfra "picarc/internal/infra/zip"
	"picarc/internal/logging"
	"picarc/internal/presentation"
)

// Version is set via -ldflags at release time.
var Version = "dev"

var (
	sources            []string
	includedExtensions []string
	nameMonths         bool
	recursive          bool
	orderedMonths      bool
	debug              bool

	rootCmd = &cobra.Command{
		Use:   "picarc OUTPUT_FILE",
		Short: "Archive photos into a ZIP sorted by capture date",
		Long: `picarc collects image files from one or more sources, reads the
capture date from their embedded EXIF metadata, and writes them into a
new ZIP archive organized into Year/Month folders.

Images whose metadata cannot be read end up under unsorted/; extra
allow-listed extensions end up under extras/.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd.Context(), args[0]); err != nil {
				return errors.New(appErrors.UserMessage(err))
			}
			return nil
		},
	}
)

func init() {
	rootCmd.Flags().StringArrayVarP(&sources, "source", "s", nil, "directory or container source (repeatable)")
	rootCmd.Flags().StringArrayVarP(&includedExtensions, "include-extension", "I", nil, "additional extension routed to the extras bucket (repeatable)")
	rootCmd.Flags().BoolVarP(&nameMonths, "month-names", "m", false, "use English month names in destination paths")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "recurse into subdirectories")
	rootCmd.Flags().BoolVarP(&orderedMonths, "ordered-months", "O", false, "prefix month names with the zero-padded month number")
	rootCmd.Flags().BoolVarP(&debug, "debug", "D", false, "enable debug output")
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, outputFile string) error {
	cfg := config.Config{
		OutputFile:         outputFile,
		Sources:            sources,
		IncludedExtensions: includedExtensions,
		NameMonths:         nameMonths,
		Recursive:          recursive,
		OrderedMonths:      orderedMonths,
		Debug:              debug,
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
	}

	logger := logging.New(os.Stderr, cfg.Debug)
	filesystem := fs.OSFS{}

	exists, err := filesystem.Exists(cfg.OutputFile)
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "stat", cfg.OutputFile, err)
	}
	if exists {
		confirmed, confirmErr := confirmOverwrite(cfg.OutputFile)
		if confirmErr != nil {
			return appErrors.Wrap(appErrors.Internal, "prompt", "", confirmErr)
		}
		if !confirmed {
			return appErrors.Wrap(appErrors.Aborted, "confirm", cfg.OutputFile, errors.New("output file exists"))
		}
		if err := filesystem.Remove(cfg.OutputFile); err != nil {
			return appErrors.Wrap(appErrors.IOFailure, "remove", cfg.OutputFile, err)
		}
	}

	classifier := app.Classifier{FS: filesystem}
	dirs, archives, err := classifier.PartitionSources(cfg.Sources)
	if err != nil {
		return err
	}
	for _, archive := range archives {
		logger.Warn("skipping source", "path", archive, "reason", app.ErrArchiveSourceUnsupported)
	}

	scanner := app.Scanner{FS: filesystem, Meta: exif.Reader{}, Logger: logger}
	stop := logging.Measure(logger, "scan")
	result, err := scanner.Scan(ctx, dirs, cfg.Options())
	stop()
	if err != nil {
		return err
	}
	if result.Total() == 0 {
		return appErrors.Wrap(appErrors.NoFiles, "scan", "", errors.New("no files found to copy"))
	}
	logger.Debug("scan complete",
		"sorted", len(result.Sorted),
		"unsorted", len(result.Unsortable),
		"extras", len(result.Extras),
	)

	archive, err := zipinfra.Create(cfg.OutputFile)
	if err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "create", cfg.OutputFile, err)
	}

	bar := presentation.NewCopyBar(result.Total())
	archiver := app.Archiver{
		FS:      filesystem,
		Archive: archive,
		OnProgress: func(label string) {
			bar.Describe(presentation.TruncateLabel(label))
			bar.Add(1)
		},
	}
	warnings, err := archiver.Execute(ctx, result.Entries())
	if err != nil {
		archive.Abort()
		return appErrors.Wrap(appErrors.IOFailure, "copy", cfg.OutputFile, err)
	}
	if err := archive.Close(); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "close", cfg.OutputFile, err)
	}
	bar.Finish()

	printer := presentation.Printer{Writer: os.Stdout}
	printer.PrintSummary(cfg.OutputFile, result, warnings)
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s already exists. Overwrite? [y/N]: ", path)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}
