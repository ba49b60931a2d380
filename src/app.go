package src

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime"

	"github.com/fatih/color"
	"github.com/ironsmile/brainz/src/art"
	"github.com/ironsmile/brainz/src/config"
	"github.com/ironsmile/brainz/src/gate"
	"github.com/ironsmile/brainz/src/helpers"
	"github.com/ironsmile/brainz/src/musicbrainz"
	"github.com/ironsmile/brainz/src/scaler"
	"github.com/ironsmile/brainz/src/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app holds everything the commands share. The clients are created after the
// command line is parsed since they depend on the configuration.
type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool

	cfg    config.Config
	gate   *gate.Gate
	mb     *musicbrainz.Client
	art    *art.Client
	scaler *scaler.Scaler

	// caaClient replaces the Cover Art Archive client of art when set.
	caaClient art.CAAClient
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		fs:     afero.NewOsFs(),
		stdout: stdout,
		stderr: stderr,
	}
}

// run executes the command line and returns the process exit status.
func (a *app) run(ctx context.Context, args []string) int {
	defer func() {
		if a.scaler != nil {
			a.scaler.Cancel()
		}
	}()

	root := a.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	log.Printf("Command failed: %s\n", err)

	errorColor := color.New(color.FgRed, color.Bold)
	errorColor.Fprintf(a.stderr, "%s: ", describeError(err))
	fmt.Fprintln(a.stderr, err)

	return exitCode(err)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   version.Name,
		Short: "Explore the MusicBrainz music encyclopedia from the terminal",
		Long: `brainz finds artists, releases, recordings and labels in MusicBrainz.

Every command which takes a name accepts a MusicBrainz ID (MBID) as well. Names
are resolved to the best matching entity. Requests are made at most once per
second as MusicBrainz asks.

Examples:
  brainz artist-info "Radiohead"
  brainz artist-releases "Miles Davis" --limit 20 --type album
  brainz album-info "OK Computer" --artist "Radiohead"
  brainz album-tracks "Abbey Road" --artist "The Beatles"
  brainz album-art "Kid A" --artist "Radiohead" --width 500
  brainz search recording "Paranoid Android"
  brainz identify ~/Music/Radiohead`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err: err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (default $HOME/.brainz/config.json)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log every request to stderr")

	root.AddCommand(
		a.artistInfoCommand(),
		a.artistReleasesCommand(),
		a.albumInfoCommand(),
		a.albumTracksCommand(),
		a.albumArtCommand(),
		a.labelReleasesCommand(),
		a.searchCommand(),
		a.tagCommand(),
		a.identifyCommand(),
		a.configCommand(),
		a.versionCommand(),
	)

	return root
}

// setup reads the configuration, points the logs where they belong and creates
// the clients.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(io.Discard)
	if a.verbose {
		log.SetOutput(a.stderr)
	}

	cfg, err := config.FindAndParse(a.fs, a.configPath)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	a.cfg = cfg

	if logFile := cfg.LogFilePath(); logFile != "" && !a.verbose {
		if err := helpers.SetLogsFile(a.fs, logFile); err != nil {
			return err
		}
	}

	if a.gate == nil {
		a.gate = gate.New(cfg.Interval())
	}

	useragent := musicbrainz.UserAgent(version.Name, version.Version, cfg.Contact)

	a.mb = musicbrainz.NewClient(useragent, a.gate)
	a.mb.SetAPIURL(cfg.APIURL)
	a.mb.SetHTTPClient(&http.Client{Timeout: cfg.TimeoutDuration()})

	a.art = art.NewClient(useragent, a.gate)
	if a.caaClient != nil {
		a.art.SetCAAClient(a.caaClient)
	}

	return nil
}

// imageScaler returns the scaler, starting it on first use.
func (a *app) imageScaler(ctx context.Context) *scaler.Scaler {
	if a.scaler == nil {
		a.scaler = scaler.New(ctx, runtime.NumCPU())
	}
	return a.scaler
}

// progress writes a message about what is being done. It goes to stderr so that
// the output of the commands stays clean.
func (a *app) progress(format string, args ...any) {
	color.New(color.FgHiBlack).Fprintf(a.stderr, format+"\n", args...)
}

// usageArgs turns the errors of a cobra argument validator into usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}
