// Command asciiview renders an image or a video in the terminal as colored
// ASCII art.
//
// Still images (jpg, jpeg, png, bmp, gif) are printed once. Any other file is
// treated as a video: its frames are extracted with ffmpeg and played back at
// the rate reported by ffprobe, falling back to 24 fps.
//
// # Usage
//
//	asciiview [flags] <file> [width] [mode]
//
// A mode of "hack", "-h" or "--mode=hack" selects compact rendering, which
// halves the image height and then drops every other row.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciiview/ffmpeg"
	"go.jacobcolvin.com/asciiview/log"
	"go.jacobcolvin.com/asciiview/playback"
	"go.jacobcolvin.com/asciiview/profile"
	"go.jacobcolvin.com/asciiview/render"
	"go.jacobcolvin.com/asciiview/terminal"
	"go.jacobcolvin.com/asciiview/version"
)

// errUsage is returned after usage text has been printed for missing
// arguments.
var errUsage = errors.New("missing file argument")

func main() {
	os.Exit(run0())
}

func run0() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}

		return 1
	}

	return 0
}

// app holds the configuration shared by the root command.
type app struct {
	render  *render.Config
	log     *log.Config
	profile *profile.Config
	stdout  io.Writer
	stderr  io.Writer

	fps        float64
	forceClear bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		render:  render.NewConfig(),
		log:     log.NewConfig(),
		profile: profile.NewConfig(),
		stdout:  stdout,
		stderr:  stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "asciiview [flags] <file> [width] [mode]",
		Short: "Render images and videos as colored ASCII art",
		Long: `asciiview renders an image or a video in the terminal as colored ASCII art.

Images (jpg, jpeg, png, bmp, gif) are printed once. Other files are played as
videos, which requires ffmpeg and ffprobe on PATH.`,
		Example: `  asciiview photo.png
  asciiview video.mp4 100 hack
  asciiview --width=80 --mode=compact video.mp4`,
		Args:          cobra.MaximumNArgs(3),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.SetOut(a.stdout)

				//nolint:errcheck // Best-effort usage output.
				cmd.Usage()

				return errUsage
			}

			return a.run(cmd.Context(), args)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	a.render.RegisterFlags(flags)
	// Defined before cobra adds its own, which would claim "-h".
	flags.Bool("help", false, "help for asciiview")
	flags.Float64Var(&a.fps, "fps", 0, "playback rate for videos (0 = probe the source)")
	flags.BoolVar(&a.forceClear, "force-clear", false, "clear the screen even when stdout is not a terminal")

	a.log.RegisterFlags(rootCmd.PersistentFlags())
	a.profile.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		a.render.RegisterCompletions,
		a.log.RegisterCompletions,
		a.profile.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(newVersionCmd(stdout))

	return rootCmd
}

func (a *app) run(ctx context.Context, args []string) (err error) {
	err = a.applyArgs(args)
	if err != nil {
		return err
	}

	logger, err := a.log.NewLogger(a.stderr)
	if err != nil {
		return err
	}

	p := a.profile.NewProfiler()

	err = p.Start()
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, p.Stop())
	}()

	player := &playback.Player{
		Renderer:  a.render.NewRenderer(),
		Out:       a.stdout,
		Probe:     &ffmpeg.Prober{},
		Extractor: &ffmpeg.Extractor{},
		Clearer:   terminal.NewClearer(a.stdout, a.forceClear),
		Logger:    logger,
		FPS:       a.fps,
	}

	logger.Debug("rendering",
		slog.String("path", args[0]),
		slog.Int("width", a.render.Width),
		slog.String("mode", string(a.render.Mode)),
	)

	return player.Play(ctx, args[0])
}

// applyArgs resolves flags and then the optional positional width and mode,
// which take precedence over their flag equivalents.
func (a *app) applyArgs(args []string) error {
	err := a.render.Resolve()
	if err != nil {
		return err
	}

	if len(args) > 1 {
		width, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: width %q is not an integer", render.ErrInvalidConfig, args[1])
		}

		a.render.Width = width
	}

	if len(args) > 2 {
		a.render.Mode = render.ModeFromArg(args[2])
	}

	if a.fps != 0 {
		_, err := playback.RateFromFPS(a.fps)
		if err != nil {
			return fmt.Errorf("--fps: %w", err)
		}
	}

	return a.render.Validate()
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := version.Get().Marshal(output)
			if err != nil {
				return err
			}

			_, err = stdout.Write(out)

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format, one of: [text yaml json]")

	err := cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions([]string{"text", "yaml", "json"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		panic(err)
	}

	return cmd
}
