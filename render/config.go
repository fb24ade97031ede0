package render

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultWidth is the default render width in characters.
const DefaultWidth = 100

// ErrInvalidConfig indicates a render configuration that cannot be used.
var ErrInvalidConfig = errors.New("invalid render config")

// Flags holds CLI flag names for render configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Width string
	Mode  string
	Hack  string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Width: DefaultWidth,
		Mode:  ModeNormal,
		Flags: f,
	}
}

// Config holds the per-invocation render parameters. It is not modified
// while an image or video is being rendered.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewRenderer] to create a [Renderer].
type Config struct {
	Flags Flags
	Mode  Mode
	Width int

	modeFlag string
	hack     bool
}

// NewConfig returns a new [Config] with the default width and [ModeNormal].
func NewConfig() *Config {
	f := Flags{
		Width: "width",
		Mode:  "mode",
		Hack:  "hack",
	}

	return f.NewConfig()
}

// RegisterFlags adds render flags to the given [*pflag.FlagSet]. The hack
// flag takes the "h" shorthand, so "-h" selects compact rendering rather
// than help.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&c.Width, c.Flags.Width, "w", DefaultWidth, "render width in characters")
	flags.StringVar(&c.modeFlag, c.Flags.Mode, string(ModeNormal),
		fmt.Sprintf("render mode, one of: %s", GetAllModeStrings()))
	flags.BoolVarP(&c.hack, c.Flags.Hack, "h", false, "shorthand for --mode=compact")
}

// RegisterCompletions registers shell completions for render flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Mode,
		cobra.FixedCompletions(GetAllModeStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Mode, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Width,
		cobra.FixedCompletions(nil, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Width, err)
	}

	return nil
}

// Resolve folds parsed flag values into [Config.Mode] and validates the
// result. Call it once after flag parsing.
func (c *Config) Resolve() error {
	if c.modeFlag != "" {
		mode, err := ParseMode(c.modeFlag)
		if err != nil {
			return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, err, c.modeFlag)
		}

		c.Mode = mode
	}

	if c.hack {
		c.Mode = ModeCompact
	}

	return c.Validate()
}

// Validate reports whether c can be used for rendering.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	}

	_, err := ParseMode(string(c.Mode))
	if err != nil {
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, err, c.Mode)
	}

	return nil
}

// NewRenderer creates a new [Renderer] using a copy of this [Config].
func (c *Config) NewRenderer() *Renderer {
	return &Renderer{
		Width: c.Width,
		Mode:  c.Mode,
	}
}
