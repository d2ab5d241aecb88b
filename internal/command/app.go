package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/draganm/zonewriter/internal/dispatch"
	"github.com/draganm/zonewriter/internal/models"
	"github.com/draganm/zonewriter/internal/store"
)

const (
	// Name is the program name used when args carry none
	Name = "zonewriter"

	// StatusLine is printed to stdout once the command line is parsed
	StatusLine = "doing python things"

	numFilesFlag = "num-files"
	zoneFlag     = "zone"
)

// App runs the zonewriter command line against a filesystem
type App struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Run parses args (args[0] is the program name) and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	prog := Name
	if len(args) > 0 && args[0] != "" {
		prog = filepath.Base(args[0])
	}

	actionStarted := false
	err := a.newCLI(prog, &actionStarted).RunContext(ctx, args)
	if err == nil {
		return ExitOK
	}

	// urfave/cli reports missing required flags with an unexported error type,
	// so anything failing before the action is a usage error.
	if !actionStarted && !IsUsageError(err) {
		err = &UsageError{Err: err}
	}

	if IsUsageError(err) {
		fmt.Fprintf(a.Stderr, "usage: %s --%s NUM_FILES --%s ZONE\n", prog, numFilesFlag, zoneFlag)
		fmt.Fprintf(a.Stderr, "%s: error: %s\n", prog, err)
		return ExitUsage
	}

	a.logger().Error("Error running app", "error", err)
	return ExitFailure
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

func (a *App) newCLI(prog string, actionStarted *bool) *cli.App {
	numFiles := &decimalInt{}

	return &cli.App{
		Name:            prog,
		Usage:           "Append a zone label to the output files selected by --num-files",
		HideHelpCommand: true,
		Writer:          a.Stderr,
		ErrWriter:       a.Stderr,
		Flags: []cli.Flag{
			&cli.GenericFlag{
				Name:     numFilesFlag,
				Usage:    "2 appends to third_out.txt and second_out.txt, anything else to first_out.txt",
				Value:    numFiles,
				Required: true,
			},
			&cli.StringFlag{
				Name:     zoneFlag,
				Usage:    "label appended verbatim to the selected files",
				Required: true,
			},
		},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return &UsageError{Err: err}
		},
		// exit codes are decided by Run, never inside urfave/cli
		ExitErrHandler: func(c *cli.Context, err error) {},
		Action: func(c *cli.Context) error {
			*actionStarted = true

			if c.Args().Present() {
				return unrecognizedArguments(c.Args().Slice())
			}

			inv := models.Invocation{
				FileCount: numFiles.value,
				Zone:      c.String(zoneFlag),
			}

			if _, err := fmt.Fprintln(a.Stdout, StatusLine); err != nil {
				return fmt.Errorf("failed to write status line: %w", err)
			}

			d := dispatch.New(store.NewAppender(a.Fs), a.logger())
			return d.Run(c.Context, inv)
		},
	}
}
