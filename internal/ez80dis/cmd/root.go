package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"ez80dis/internal/analysis"
	"ez80dis/internal/disasm"
	"ez80dis/internal/ez80dis/log"
	"ez80dis/internal/listing"
	"ez80dis/internal/loader"
	"ez80dis/internal/ui/colorize"
)

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $EZ80DIS_CONFIG)")

	rootCmd.Flags().BoolP("help", "h", false, "Help")
	rootCmd.Flags().String("base", "", "Load address of raw images (decimal or &hex, default 0)")
	rootCmd.Flags().BoolP("json", "j", false, "Output results as JSON for regression testing")
	rootCmd.Flags().BoolP("tui", "t", false, "Browse the listing interactively")
	rootCmd.Flags().Bool("no-color", false, "Disable syntax highlighting")
	rootCmd.Flags().String("cpuprofile", "", "Write CPU profile to file")
	rootCmd.Flags().String("memprofile", "", "Write memory profile to file")
}

var rootCmd = &cobra.Command{
	Use:   "ez80dis <file> <address> <length> [adl]",
	Short: "eZ80 and Z80 disassembler",
	Long: `ez80dis disassembles eZ80 and Z80 machine code from raw, ELF, Intel HEX,
gzip or zip images. Numbers are decimal or hexadecimal with a leading &.
adl selects the execution width: 0 for Z80 (16-bit words), 1 for ADL
(24-bit words, the default).`,
	Example: `
# Disassemble 64 bytes of a MOS binary loaded at &040000
ez80dis --base &040000 program.bin &040000 64

# Z80 mode
ez80dis rom.bin &0000 &100 0

# JSON output for regression testing
ez80dis -j program.hex &040000 32
  `,
	Args:          cobra.RangeArgs(3, 4),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath(cmd))
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		log.Setup(debug || cfg.Debug)
		cmd.SetContext(withConfig(cmd.Context(), cfg))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cpuprofile, _ := cmd.Flags().GetString("cpuprofile")
		if cpuprofile != "" {
			f, err := os.Create(cpuprofile)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		memprofile, _ := cmd.Flags().GetString("memprofile")
		if memprofile != "" {
			defer func() {
				f, err := os.Create(memprofile)
				if err != nil {
					slog.Error("could not create memory profile", "error", err)
					return
				}
				defer f.Close()
				if err := pprof.WriteHeapProfile(f); err != nil {
					slog.Error("could not write memory profile", "error", err)
				}
			}()
		}

		req, err := resolveRequest(cmd, args)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cmd.OutOrStdout(), req)
	},
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

// resolveRequest merges positional arguments, flags and the config file
// loaded before the command ran. Flags win over the config file.
func resolveRequest(cmd *cobra.Command, args []string) (request, error) {
	cfg := configFrom(cmd.Context())
	width, err := cfg.width()
	if err != nil {
		return request{}, fmt.Errorf("config adl: %w", err)
	}
	req, err := parseArgs(args, width)
	if err != nil {
		return req, err
	}

	if req.Base, err = cfg.base(); err != nil {
		return req, err
	}
	if cmd.Flags().Changed("base") {
		b, _ := cmd.Flags().GetString("base")
		if req.Base, err = parseAddress("base", b); err != nil {
			return req, err
		}
	}

	req.JSON, _ = cmd.Flags().GetBool("json")
	req.TUI, _ = cmd.Flags().GetBool("tui")
	noColor, _ := cmd.Flags().GetBool("no-color")
	req.Color = !noColor && !cfg.NoColor && colorize.Enabled()
	req.Theme = cfg.Theme
	return req, nil
}

// run decodes the requested range and writes it in the selected form.
// Nothing is written when decoding fails.
func run(ctx context.Context, w io.Writer, req request) error {
	f, err := loader.Load(req.Path, req.Base)
	if err != nil {
		return err
	}
	slog.Debug("Disassembling",
		"file", req.Path,
		"format", f.Format,
		"mode", req.Width,
		"start", addr(req.Start),
		"length", req.Length)

	stream, err := disasm.NewDecoder(f.Image, req.Width).Disassemble(req.Start, req.Length)
	if err != nil {
		return err
	}
	targets := analysis.Analyze(stream, req.Start, req.Start+uint32(stream.Size()), f.Symbols)

	switch {
	case req.JSON:
		return writeJSON(w, req, stream, targets)
	case req.TUI:
		return runTUI(ctx, req, stream, targets)
	}

	var decorate func(string) string
	if req.Color && isTerminal(w) {
		decorate = colorize.Line
	}
	return listing.Write(w, stream, decorate)
}

func Execute() {
	// fang renders help and errors with styling that only makes sense on a
	// terminal.
	if !term.IsTerminal(os.Stdout.Fd()) {
		if err := rootCmd.Execute(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
