// Command knightpath enumerates every minimum-length knight move
// sequence between two chessboard squares and presents the result as
// text, JSON, a Graphviz file, or an interactive explorer.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knightpath/paths"
	"github.com/katalvlaran/knightpath/render"
	"github.com/katalvlaran/knightpath/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// queryFlags carries the flag state of one invocation.
type queryFlags struct {
	jsonOut     bool
	dotFile     string
	interactive bool
	ascii       bool
	verbose     bool
	configFile  string
}

func newRootCmd() *cobra.Command {
	var (
		flags  queryFlags
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "knightpath <start> <end>",
		Short: "Every shortest knight route between two squares",
		Long: `knightpath enumerates every minimum-length sequence of knight moves
between two squares of the chessboard, named in algebraic notation
(case-insensitive, e.g. "A1" or "g6").

By default it prints the sequences and a board with the first one
painted; --json, --dot and --interactive select other surfaces.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			// The explorer owns the terminal; keep the logger quiet there.
			if flags.interactive && !flags.verbose {
				logger = zap.NewNop()
				return nil
			}
			config := zap.NewProductionConfig()
			if flags.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, flags, logger)
		},
	}

	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "emit the result as JSON")
	cmd.Flags().StringVar(&flags.dotFile, "dot", "", "write a Graphviz document to this file")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "open the interactive path explorer")
	cmd.Flags().BoolVar(&flags.ascii, "ascii", false, "plain board without colours")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "config file (default ~/.knightpath.toml)")

	// cobra's Print helpers fall back to stderr unless an output stream
	// is set; results belong on stdout, diagnostics stay on stderr.
	cmd.SetOut(os.Stdout)

	return cmd
}

// runQuery executes one shortest-path query and routes the result to
// the selected surfaces.
func runQuery(cmd *cobra.Command, args []string, flags queryFlags, logger *zap.Logger) error {
	cfg, err := loadConfig(flags.configFile)
	if err != nil {
		return err
	}

	opts := make([]paths.Option, 0, 2)
	if flags.verbose {
		opts = append(opts,
			paths.WithOnEnqueue(func(p paths.Path) {
				logger.Debug("frontier", zap.Int("moves", p.Moves()), zap.String("path", p.String()))
			}),
			paths.WithOnMatch(func(p paths.Path) {
				logger.Debug("match", zap.String("path", p.String()))
			}),
		)
	}

	ps, err := paths.Between(args[0], args[1], opts...)
	if err != nil {
		return err
	}
	logger.Info("query complete",
		zap.String("start", ps.Start.Notation()),
		zap.String("end", ps.End.Notation()),
		zap.Int("paths", ps.Len()),
		zap.Int("moves", ps.Moves()),
	)

	if dot := firstNonEmpty(flags.dotFile, cfg.Output.Dot); dot != "" {
		if err := writeDOTFile(dot, ps); err != nil {
			return err
		}
		logger.Debug("dot written", zap.String("file", dot))
	}

	if flags.jsonOut {
		data, err := json.MarshalIndent(ps, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	st := render.DefaultStyles()
	if flags.ascii || cfg.Render.Theme == themeMono {
		st = render.NewStyles(render.MonoTheme())
	}
	if cfg.Render.Unicode {
		st.KnightGlyph = "♞"
	}

	if flags.interactive {
		return tui.Run(ps, st)
	}

	cmd.Println("All minimum-length sequences:")
	for _, p := range ps.Paths {
		cmd.Println(p.Notations())
	}
	if ps.Len() > 0 {
		cmd.Printf("%d paths, %d moves each\n\n", ps.Len(), ps.Moves())
		cmd.Print(render.Board(ps.Paths[0], st))
	}

	return nil
}

// firstNonEmpty returns the first non-empty value, letting flags win
// over config file entries.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}

// writeDOTFile writes the Graphviz document for ps to path.
func writeDOTFile(path string, ps *paths.PathSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render.WriteDOT(f, ps); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
