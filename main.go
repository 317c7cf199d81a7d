package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Vazpera/vividry/internal/api"
	"github.com/Vazpera/vividry/internal/color"
	"github.com/Vazpera/vividry/internal/completion"
	"github.com/Vazpera/vividry/internal/config"
	"github.com/Vazpera/vividry/internal/gradient"
	"github.com/Vazpera/vividry/internal/logger"
	"github.com/Vazpera/vividry/internal/tui"
	"github.com/Vazpera/vividry/internal/types"
)

// Version is set at build time via ldflags: -X main.Version=x.y.z
var Version = "0.1.0"

var log = logger.New("main")

func main() {
	if completion.Run(paletteNames()) {
		return
	}

	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "gradient":
		err = runGradient(os.Args[2:], os.Stdout)
	case "convert":
		err = runConvert(os.Args[2:], os.Stdout)
	case "palettes":
		err = runPalettes(os.Args[2:], os.Stdout)
	case "serve":
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		err = runServe(ctx, os.Args[2:])
		stop()
	case "completion":
		err = runCompletion(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("%s %s\n", tui.BrandGradient("vividry"), Version)
	case "help", "--help", "-h":
		printUsage(os.Stdout)
	default:
		tui.PrintError(fmt.Sprintf("unknown command %q", os.Args[1]))
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		tui.PrintError(err.Error())
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `vividry - convert colors and generate gradients

Usage:
  vividry gradient [-n N] [--palette NAME] [--format F] <color>...
                                        Print N colors blended across the inputs
  vividry convert [--format F] <color>...
                                        Print each color as rgb, hex, hsv or a table
  vividry palettes                      List palettes from the config file
  vividry serve [--listen ADDR]         Serve the JSON API
  vividry completion [--install|--uninstall]
                                        Set up shell completion
  vividry version                       Show version
  vividry help                          Show this help message

Colors are hex: "#rrggbb", "rrggbb", "#rgb" or "rgb". In the 3-digit form each
digit is a 0-15 channel unless hex.expand_shorthand is set in the config.

Common Flags:
  --config string       Path to configuration file (default ~/.vividry/config.yaml)
  --log-level string    Log level: trace, debug, info, warn (or warning), error
  --no-color            Disable colored output

Gradient Flags:
  -n, --number int      Number of colors to generate (default 5)
  --palette string      Start from a named palette
  --format string       Label format: hex, rgb, hsv (default hex)

Convert Flags:
  --format string       Output format: rgb, hex, hsv, table (default rgb)

Environment Variables:
  VIVIDRY_CONFIG        Config file path
  VIVIDRY_NUMBER        Default gradient size
  VIVIDRY_LOG_LEVEL     Log level
  VIVIDRY_FOREGROUND    Swatch text color: black, white, auto
  VIVIDRY_LISTEN        API listen address
  NO_COLOR              Disable colored output

VIVIDRY_* variables may also be set in a .env file in the working directory.

Examples:
  vividry gradient "#ff5f6d" "#ffc371" -n 8
  vividry convert --format table ff0000 00ff00 0000ff
  vividry serve --listen 127.0.0.1:7878`)
}

// commonFlags are accepted by every color subcommand.
type commonFlags struct {
	configPath string
	logLevel   string
	noColor    bool
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	f := &commonFlags{}
	fs.StringVar(&f.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	return f
}

// load resolves configuration with precedence flags > environment > file >
// defaults, validates it and applies the output settings.
func (f *commonFlags) load() (*config.Config, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	path := f.configPath
	if path == "" {
		path = env.ConfigPath(config.DefaultConfigPath())
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if f.configPath != "" {
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			tui.PrintWarning(fmt.Sprintf("config file %s not found, using defaults", path))
		}
	}
	env.Apply(cfg)

	if f.logLevel != "" {
		cfg.LogLevel = types.LogLevel(f.logLevel)
	}
	cfg.LogLevel = cfg.LogLevel.Normalize()
	if f.noColor {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.NoColor {
		tui.SetPlainMode(true)
	}
	logger.SetGlobalLevelFromString(string(cfg.LogLevel))
	logger.SetColored(!tui.IsPlainMode())
	log.Debug("configuration loaded from %s", path)
	return cfg, nil
}

// parseInterspersed parses flags that may appear before, between or after
// positional arguments, returning the positional ones in order.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		// Everything after a literal "--" is positional.
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// flagGiven reports whether any of names was set on the command line.
func flagGiven(fs *flag.FlagSet, names ...string) bool {
	given := false
	fs.Visit(func(f *flag.Flag) {
		for _, n := range names {
			if f.Name == n {
				given = true
			}
		}
	})
	return given
}

func parseFormat(s string, allowTable bool) (types.Format, error) {
	f := types.Format(strings.ToLower(s))
	if !f.Valid() || (f.IsTable() && !allowTable) {
		valid := "hex, rgb, hsv"
		if allowTable {
			valid += ", table"
		}
		return "", fmt.Errorf("unknown format %q (valid: %s)", s, valid)
	}
	return f, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatColor renders c as text in the given format.
func formatColor(c color.Color, f types.Format) string {
	switch f {
	case types.FormatHex:
		return c.Hex()
	case types.FormatHSV:
		return fmt.Sprintf("hsv(%s, %s, %s)", formatFloat(c.Hue), formatFloat(c.Saturation), formatFloat(c.Value))
	default:
		r, g, b := c.RGB()
		return fmt.Sprintf("rgb(%s, %s, %s)", formatFloat(r), formatFloat(g), formatFloat(b))
	}
}

// newSwatch builds a swatch from the config. Column layouts measure raw
// cells, so they ask for one without padding.
func newSwatch(w io.Writer, cfg *config.Config, padded bool) *tui.Swatch {
	opts := tui.SwatchOptions{Foreground: cfg.Swatch.Foreground}
	if padded {
		opts.Padding = cfg.Swatch.Padding
	}
	return tui.NewSwatch(w, opts)
}

// runGradient handles the gradient subcommand
func runGradient(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)
	common := addCommonFlags(fs)
	var number int
	fs.IntVar(&number, "number", 0, "Number of colors to generate")
	fs.IntVar(&number, "n", 0, "Number of colors to generate (shorthand)")
	palette := fs.String("palette", "", "Start from a named palette")
	format := fs.String("format", "", "Label format: hex, rgb, hsv")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}

	if !flagGiven(fs, "number", "n") {
		number = cfg.Gradient.Number
	}
	f := cfg.Gradient.Format
	if *format != "" {
		if f, err = parseFormat(*format, false); err != nil {
			return err
		}
	}

	var cols []color.Color
	if *palette != "" {
		if cols, err = cfg.Palette(*palette); err != nil {
			return err
		}
	}
	parsed, err := cfg.ParseColors(positional)
	if err != nil {
		return err
	}
	cols = append(cols, parsed...)

	// Validate up front so a bad request prints nothing.
	if err := gradient.Validate(cols, number); err != nil {
		return err
	}
	log.Debug("generating %d colors across %d stops", number, len(cols))

	swatch := newSwatch(out, cfg, true)
	return gradient.Each(cols, number, func(_ int, c color.Color) error {
		return swatch.Println(c, formatColor(c, f))
	})
}

// runConvert handles the convert subcommand
func runConvert(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	common := addCommonFlags(fs)
	format := fs.String("format", "", "Output format: rgb, hex, hsv, table")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}

	f := cfg.Convert.Format
	if *format != "" {
		if f, err = parseFormat(*format, true); err != nil {
			return err
		}
	}

	cols, err := cfg.ParseColors(positional)
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return errors.New("convert needs at least one color")
	}

	if f.IsTable() {
		_, err := io.WriteString(out, convertTable(cols, newSwatch(out, cfg, false)))
		return err
	}
	swatch := newSwatch(out, cfg, true)
	for _, c := range cols {
		if err := swatch.Println(c, formatColor(c, f)); err != nil {
			return err
		}
	}
	return nil
}

// convertTable lays out every representation of each color in columns.
// The hex column is drawn as a swatch.
func convertTable(cols []color.Color, swatch *tui.Swatch) string {
	rows := [][]string{{"HEX", "RGB", "HSV"}}
	for _, c := range cols {
		rows = append(rows, []string{
			c.Hex(),
			formatColor(c, types.FormatRGB),
			formatColor(c, types.FormatHSV),
		})
	}
	return tui.AlignColumns(rows, "", 2, func(row, col int, cell string) string {
		switch {
		case row == 0:
			return tui.Faint(cell)
		case col == 0:
			return swatch.Render(cols[row-1], cell)
		default:
			return cell
		}
	})
}

// runPalettes handles the palettes subcommand
func runPalettes(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("palettes", flag.ContinueOnError)
	common := addCommonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}

	names := cfg.PaletteNames()
	if len(names) == 0 {
		tui.PrintInfo("no palettes configured")
		return nil
	}
	swatch := newSwatch(out, cfg, false)
	var rows [][]string
	stops := make([][]color.Color, len(names))
	for i, name := range names {
		cols, err := cfg.Palette(name)
		if err != nil {
			return err
		}
		stops[i] = cols
		hexes := make([]string, len(cols))
		for i, c := range cols {
			hexes[i] = c.Hex()
		}
		rows = append(rows, []string{name, strings.Join(hexes, " ")})
	}
	_, err = io.WriteString(out, tui.AlignColumns(rows, "", 2, func(row, col int, cell string) string {
		if col == 0 {
			return tui.Title(cell)
		}
		parts := strings.Fields(cell)
		for i := range parts {
			parts[i] = swatch.Render(stops[row][i], parts[i])
		}
		return strings.Join(parts, " ")
	}))
	return err
}

// runServe handles the serve subcommand
func runServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	common := addCommonFlags(fs)
	listen := fs.String("listen", "", "Address to listen on (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := common.load()
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Serve.Listen = *listen
	}

	server := api.NewServer(api.Options{
		Parse:         cfg.ParseColor,
		DefaultNumber: cfg.Gradient.Number,
		MaxNumber:     cfg.Serve.MaxNumber,
	})
	return server.ListenAndServe(ctx, cfg.Serve.Listen)
}

// runCompletion handles the completion subcommand
func runCompletion(args []string) error {
	fs := flag.NewFlagSet("completion", flag.ContinueOnError)
	doInstall := fs.Bool("install", false, "Install shell completion")
	doUninstall := fs.Bool("uninstall", false, "Remove shell completion")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *doInstall && *doUninstall:
		return errors.New("--install and --uninstall are mutually exclusive")
	case *doInstall:
		if err := completion.Install(); err != nil {
			return fmt.Errorf("failed to install completion: %w", err)
		}
		tui.PrintSuccess("shell completion installed; restart your shell to use it")
	case *doUninstall:
		if err := completion.Uninstall(); err != nil {
			return fmt.Errorf("failed to uninstall completion: %w", err)
		}
		tui.PrintSuccess("shell completion removed")
	default:
		if completion.IsInstalled() {
			tui.PrintInfo("shell completion is installed")
		} else {
			tui.PrintInfo("shell completion is not installed (run: vividry completion --install)")
		}
	}
	return nil
}

// paletteNames loads palette names for completion, ignoring any error.
func paletteNames() []string {
	env, err := config.LoadEnv()
	if err != nil {
		return nil
	}
	cfg, err := config.Load(env.ConfigPath(config.DefaultConfigPath()))
	if err != nil {
		return nil
	}
	return cfg.PaletteNames()
}
