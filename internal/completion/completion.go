// Package completion provides CLI tab-completion for vividry.
//
// The binary itself handles completions: when invoked with COMP_LINE set
// (by the shell), it outputs matching completions and exits.
// Works across bash, zsh, and fish with a one-time install.
package completion

import (
	"os"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/install"
	"github.com/posener/complete/v2/predict"

	"github.com/Vazpera/vividry/internal/types"
)

// Name is the binary name completions are registered under.
const Name = "vividry"

// common flags accepted by every color subcommand.
func commonFlags() map[string]complete.Predictor {
	return map[string]complete.Predictor{
		"config":    predict.Files("*.yaml"),
		"log-level": predict.Set{"trace", "debug", "info", "warn", "error"},
		"no-color":  predict.Nothing,
	}
}

func withFlags(base map[string]complete.Predictor, extra map[string]complete.Predictor) map[string]complete.Predictor {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

func formats(table bool) predict.Set {
	var set predict.Set
	for _, f := range types.AllFormats() {
		if f.IsTable() && !table {
			continue
		}
		set = append(set, string(f))
	}
	return set
}

// Command builds the vividry completion tree. palettes lists the configured
// palette names offered for --palette.
func Command(palettes []string) *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"gradient": {
				Flags: withFlags(commonFlags(), map[string]complete.Predictor{
					"n":       predict.Something,
					"number":  predict.Something,
					"palette": predict.Set(palettes),
					"format":  formats(false),
				}),
				Args: predict.Something,
			},
			"convert": {
				Flags: withFlags(commonFlags(), map[string]complete.Predictor{
					"format": formats(true),
				}),
				Args: predict.Something,
			},
			"serve": {
				Flags: withFlags(commonFlags(), map[string]complete.Predictor{
					"listen": predict.Something,
				}),
			},
			"palettes":   {Flags: commonFlags()},
			"version":    {},
			"help":       {},
			"completion": {Flags: map[string]complete.Predictor{"install": predict.Nothing, "uninstall": predict.Nothing}},
		},
	}
}

// Run checks if the binary was invoked for shell completion.
// If COMP_LINE is set, it outputs completions and exits (never returns).
// Otherwise it returns false and the program continues normally.
func Run(palettes []string) bool {
	if os.Getenv("COMP_LINE") != "" || os.Getenv("COMP_INSTALL") != "" || os.Getenv("COMP_UNINSTALL") != "" {
		Command(palettes).Complete(Name)
		return true
	}
	return false
}

// Install sets up shell completion for the detected shells.
// Returns nil on success. The caller handles user-facing output.
func Install() error {
	return install.Install(Name)
}

// Uninstall removes shell completion for the detected shells.
// Returns nil on success. The caller handles user-facing output.
func Uninstall() error {
	return install.Uninstall(Name)
}

// IsInstalled reports whether shell completion is already set up.
func IsInstalled() bool {
	return install.IsInstalled(Name)
}
