package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/display"
	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/highlight"
)

// reservedLines is the height taken by title, input box and status line.
const reservedLines = 7

// Options configures the TUI.
type Options struct {
	// MaxResults caps documents fetched per search.
	MaxResults int

	// Color enables highlight markers and styled chrome.
	Color bool

	// Output is the terminal the TUI draws to. Defaults to os.Stdout.
	Output io.Writer
}

// SearchCompleted carries a finished search back to the model.
type SearchCompleted struct {
	Query   string
	Outcome domain.SearchOutcome
	Err     error
}

// App is the TUI model following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports       *Ports
	ctx         context.Context
	opts        domain.SearchOptions
	styles      *display.Styles
	highlighter highlight.Highlighter
	keymap      *keymap.KeyMap

	input    textinput.Model
	viewport viewport.Model

	width      int
	height     int
	ready      bool
	focusInput bool
	searching  bool

	query   string
	outcome domain.SearchOutcome
	err     error
	status  string
}

// NewApp creates the TUI model.
func NewApp(ports *Ports, opts Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	h := highlight.Plain()
	if opts.Color {
		h = highlight.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter search query..."
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		opts:        domain.SearchOptions{MaxResults: opts.MaxResults},
		styles:      display.NewStyles(out, nil, opts.Color),
		highlighter: h,
		keymap:      keymap.DefaultKeyMap(),
		input:       ti,
		viewport:    viewport.New(80, 24-reservedLines),
		width:       80,
		height:      24,
		focusInput:  true,
		status:      "Ready",
	}, nil
}

// WithContext sets the context used for searches.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init initialises the model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.setDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case SearchCompleted:
		a.handleSearchCompleted(msg)
		return a, nil
	}

	var cmd tea.Cmd
	if a.focusInput {
		a.input, cmd = a.input.Update(msg)
	} else {
		a.viewport, cmd = a.viewport.Update(msg)
	}
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keymap.Quit) {
		return a, tea.Quit
	}

	if a.focusInput {
		switch {
		case key.Matches(msg, a.keymap.Search):
			return a, a.submit()
		case key.Matches(msg, a.keymap.Results):
			a.focusResults()
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	if key.Matches(msg, a.keymap.NewSearch) {
		a.focusInput = true
		return a, a.input.Focus()
	}

	// The viewport's own keymap handles scrolling (up/k, down/j, pgup, pgdown).
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// submit starts a search for the input value. "quit" exits, as in the
// line-oriented prompt.
func (a *App) submit() tea.Cmd {
	query := strings.TrimSpace(a.input.Value())
	if query == "" || a.searching {
		return nil
	}
	if strings.EqualFold(query, "quit") {
		return tea.Quit
	}

	a.searching = true
	a.status = fmt.Sprintf("Searching for %q...", query)
	return a.performSearch(query)
}

// performSearch runs the search off the update loop.
func (a *App) performSearch(query string) tea.Cmd {
	search := a.ports.Search
	ctx := a.ctx
	opts := a.opts
	return func() tea.Msg {
		outcome, err := search.Search(ctx, query, opts)
		return SearchCompleted{Query: query, Outcome: outcome, Err: err}
	}
}

func (a *App) handleSearchCompleted(msg SearchCompleted) {
	a.searching = false
	a.query = msg.Query
	a.outcome = msg.Outcome
	a.err = msg.Err

	switch {
	case msg.Err != nil:
		a.status = "Search failed"
		a.viewport.SetContent(a.styles.Error.Render(display.ErrorPrefix + msg.Err.Error()))
	case msg.Outcome.NoResults():
		a.status = display.NoResultsMessage
		a.viewport.SetContent(display.NoResultsMessage)
	default:
		a.status = fmt.Sprintf("%d of %d results", len(msg.Outcome.Documents), msg.Outcome.TotalResults)
		a.viewport.SetContent(strings.TrimPrefix(
			display.RenderResults(msg.Query, msg.Outcome.Documents, a.highlighter, a.styles), "\n"))
	}
	a.viewport.GotoTop()
	a.focusResults()
}

func (a *App) focusResults() {
	a.focusInput = false
	a.input.Blur()
}

func (a *App) setDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	a.input.Width = inputWidth

	vpHeight := height - reservedLines
	if vpHeight < 1 {
		vpHeight = 1
	}
	a.viewport.Width = width
	a.viewport.Height = vpHeight
}

// View renders the model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{
		a.styles.Title.Render("docsearch"),
		a.styles.InputField.Render(a.input.View()),
		a.viewport.View(),
		a.renderStatus(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderStatus() string {
	bindings := a.keymap.ResultsHelp()
	if a.focusInput {
		bindings = a.keymap.InputHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}

	left := a.status
	right := a.styles.Muted.Render(strings.Join(hints, " • "))
	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	return a.styles.StatusBar.Render(left + strings.Repeat(" ", padding) + right)
}

// Query returns the last executed query.
func (a *App) Query() string {
	return a.query
}

// Outcome returns the last search outcome.
func (a *App) Outcome() domain.SearchOutcome {
	return a.outcome
}

// Err returns the last search error, if any.
func (a *App) Err() error {
	return a.err
}

// InputFocused returns whether the query input has focus.
func (a *App) InputFocused() bool {
	return a.focusInput
}

// Searching reports whether a search is in flight.
func (a *App) Searching() bool {
	return a.searching
}
