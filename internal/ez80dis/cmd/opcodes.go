package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"ez80dis/internal/disasm"
	"ez80dis/internal/ez80dis/styles"
)

// cellsPerRow is the number of opcode/mnemonic pairs in one table row.
const cellsPerRow = 4

var opcodesCmd = &cobra.Command{
	Use:   "opcodes [page]",
	Short: "Print the opcode map of one or all pages",
	Long: `Print the decoder's opcode tables as markdown. Pages are base, dd, fd,
cb, ddcb, fdcb and ed. Operands are shown as n (byte), nn (word), e (relative
target) and +d (index displacement).`,
	Example: `
# All pages
ez80dis opcodes

# The ED page as plain markdown
ez80dis opcodes ed --raw
  `,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages := disasm.Pages()
		if len(args) == 1 {
			p, err := disasm.ParsePage(args[0])
			if err != nil {
				return err
			}
			pages = []disasm.Page{p}
		}
		markdown := opcodeMarkdown(pages)

		raw, _ := cmd.Flags().GetBool("raw")
		out := cmd.OutOrStdout()
		if raw || !isTerminal(out) {
			_, err := io.WriteString(out, markdown)
			return err
		}

		width := 120
		if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
			width = w
		}
		cfg, _ := LoadConfig(configPath(cmd))
		renderer := styles.GetMarkdownRenderer(cfg.Theme, width-2)
		if renderer == nil {
			_, err := io.WriteString(out, markdown)
			return err
		}
		rendered, err := renderer.Render(markdown)
		if err != nil {
			return fmt.Errorf("render opcode map: %w", err)
		}
		_, err = io.WriteString(out, rendered)
		return err
	},
}

var pageTitles = map[disasm.Page]string{
	disasm.PageBase: "Base page",
	disasm.PageIX:   "DD page (IX)",
	disasm.PageIY:   "FD page (IY)",
	disasm.PageCB:   "CB page",
	disasm.PageIXCB: "DD CB page (IX+d)",
	disasm.PageIYCB: "FD CB page (IY+d)",
	disasm.PageED:   "ED page",
}

func opcodeMarkdown(pages []disasm.Page) string {
	var sb strings.Builder
	sb.WriteString("# eZ80 opcode map\n")
	for _, p := range pages {
		cells := disasm.OpcodeMap(p)
		fmt.Fprintf(&sb, "\n## %s\n\n", pageTitles[p])

		sb.WriteString("|")
		for i := 0; i < cellsPerRow; i++ {
			sb.WriteString(" op | mnemonic |")
		}
		sb.WriteString("\n|")
		for i := 0; i < cellsPerRow; i++ {
			sb.WriteString("---|---|")
		}
		sb.WriteString("\n")

		for row := 0; row < 256/cellsPerRow; row++ {
			sb.WriteString("|")
			for col := 0; col < cellsPerRow; col++ {
				op := row + col*(256/cellsPerRow)
				text := cells[op]
				if text == "" {
					text = "~~none~~"
				}
				fmt.Fprintf(&sb, " %02X | %s |", op, text)
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

func init() {
	opcodesCmd.Flags().Bool("raw", false, "Print markdown without rendering")
	rootCmd.AddCommand(opcodesCmd)
}
