package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch a full-screen terminal interface for searching the document server.

Controls:
  Enter        - Run the search
  Tab/Esc      - Switch between the query and the results
  ↑/k, ↓/j     - Scroll results
  / or n       - New search
  Ctrl+C       - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// tuiProgramOptions is overridden in tests to run without a terminal.
var tuiProgramOptions = []tea.ProgramOption{tea.WithAltScreen()}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Restore the terminal before reporting a panic
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	out := cmd.OutOrStdout()
	search, _ := liveServices(cmd)
	app, err := tui.NewApp(&tui.Ports{Search: search}, tui.Options{
		MaxResults: clientConfig.MaxResults,
		Color:      colorEnabled(clientConfig.Color, out),
		Output:     out,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	opts := append([]tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(out),
	}, tuiProgramOptions...)

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
