package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/rubytype/codetable"
	"github.com/iw2rmb/rubytype/editor"
	"github.com/iw2rmb/rubytype/engine"
	"github.com/iw2rmb/rubytype/internal/tablewatch"
)

// EditOptions holds flags for the edit command.
type EditOptions struct {
	Text  string
	Watch bool
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit text interactively with codes shown above each character",
		Long: `Open a terminal editor that re-renders the text after every edit,
showing each character's code above it.

ctrl+o starts and commits a composition; while composing, typed text is
left as is until the commit. ctrl+c quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Text, "text", "", "initial text")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "reload the code table when its file changes")

	return cmd
}

func runEdit(rootOpts *RootOptions, opts *EditOptions, cmd *cobra.Command) error {
	cfg := rootOpts.Config
	if cmd.Flags().Changed("text") {
		cfg.Editor.Text = opts.Text
	}
	if cmd.Flags().Changed("watch") {
		cfg.Table.Watch = opts.Watch
	}

	logger, err := rootOpts.newLogger(true)
	if err != nil {
		return err
	}
	defer logger.Close()

	table, _ := rootOpts.loadTable(logger.Logger)

	a := newApp(appConfig{
		Table:     table,
		TablePath: cfg.Table.Path,
		Editor: editor.Config{
			Text:         cfg.Editor.Text,
			ShowLineNums: cfg.Editor.LineNumbers,
			Wrap:         cfg.Editor.Wrap,
			Gap:          cfg.Editor.Gap,
			Style:        editor.DefaultStyle(),
			Clipboard:    editor.SystemClipboard{},
			Logger:       logger.Logger,
		},
	})

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if cfg.Editor.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(a, progOpts...)

	if cfg.Table.Watch {
		w, err := tablewatch.Watch(context.Background(), cfg.Table.Path, tablewatch.Options{
			Debounce: time.Duration(cfg.Table.DebounceMs) * time.Millisecond,
			Logger:   logger.Logger,
			OnReload: func(t *codetable.Table) { p.Send(tableMsg{table: t}) },
		})
		if err != nil {
			logger.Warn("table watch disabled", "err", err)
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

// tableMsg delivers a reloaded code table to the running app.
type tableMsg struct {
	table *codetable.Table
}

type appConfig struct {
	Table     *codetable.Table
	TablePath string
	Editor    editor.Config
}

// cycleStats is shared with the editor's OnCycle hook, which runs outside
// the app's value copies.
type cycleStats struct {
	last engine.Report
}

type app struct {
	editor editor.Model
	help   help.Model
	keys   editor.KeyMap
	quit   key.Binding

	tablePath string
	entries   int
	stats     *cycleStats

	status lipgloss.Style
	width  int
	height int
}

func newApp(cfg appConfig) app {
	stats := &cycleStats{}
	ec := cfg.Editor
	ec.Table = cfg.Table
	hook := ec.OnCycle
	ec.OnCycle = func(r engine.Report) {
		stats.last = r
		if hook != nil {
			hook(r)
		}
	}

	a := app{
		editor:    editor.New(ec),
		help:      help.New(),
		keys:      editor.DefaultKeyMap(),
		quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		tablePath: cfg.TablePath,
		stats:     stats,
		status:    lipgloss.NewStyle().Reverse(true),
	}
	if cfg.Table != nil {
		a.entries = cfg.Table.Len()
	}
	return a
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, max(0, msg.Height-2))
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.quit) {
			return a, tea.Quit
		}
	case tableMsg:
		a.entries = msg.table.Len()
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(editor.TableMsg{Table: msg.table})
		return a, cmd
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.editor.View(),
		a.statusLine(),
		a.help.View(a.keys),
	)
}

func (a app) statusLine() string {
	line, col := a.editor.LineCol()
	parts := []string{
		fmt.Sprintf("%s (%d entries)", filepath.Base(a.tablePath), a.entries),
		fmt.Sprintf("Ln %d, Col %d", line+1, col+1),
		fmt.Sprintf("%d chars", a.stats.last.Length),
		fmt.Sprintf("%d coded", a.stats.last.Annotated),
	}
	if a.editor.Composing() {
		parts = append(parts, "COMPOSING")
	}
	s := " " + strings.Join(parts, " · ") + " "
	if a.width > 0 {
		s = lipgloss.NewStyle().Width(a.width).MaxWidth(a.width).Render(s)
	}
	return a.status.Render(s)
}
