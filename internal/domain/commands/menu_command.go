package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/domain/repositories"
)

const menuTitle = "Local System Log Analyzer"

// Menu is the interface for the interactive dispatcher.
type Menu interface {
	Execute(ctx context.Context, opts MenuOptions) error
}

// MenuOptions holds the streams the dispatcher talks to.
type MenuOptions struct {
	In  io.Reader
	Out io.Writer
}

// MenuCommand reads one choice at a time and hands the terminal to the
// program bound to it until the operator picks exit.
type MenuCommand struct {
	settings  *entities.Settings
	programs  repositories.ProgramRepository
	toolchain repositories.ToolchainRepository
	host      repositories.HostRepository
}

// NewMenuCommand creates a new MenuCommand.
func NewMenuCommand(
	settings *entities.Settings,
	programs repositories.ProgramRepository,
	toolchain repositories.ToolchainRepository,
	host repositories.HostRepository,
) *MenuCommand {
	return &MenuCommand{
		settings:  settings,
		programs:  programs,
		toolchain: toolchain,
		host:      host,
	}
}

// Execute runs the menu loop. It returns nil on exit or end of input.
func (it *MenuCommand) Execute(ctx context.Context, opts MenuOptions) error {
	styles := newMenuStyles(opts.Out)

	for {
		renderMenu(opts.Out, styles)

		line, err := readChoice(opts.In)
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		item, ok := entities.ParseMenuChoice(line)
		if !ok {
			fmt.Fprintln(opts.Out, styles.warning.Render(
				fmt.Sprintf("Invalid choice %q, pick %s-%s.", trimLine(line), entities.ChoiceAnalysis, entities.ChoiceExit),
			))
			continue
		}

		if item.Action == entities.ActionExit {
			return nil
		}

		program, resolveErr := it.resolve(item.Action)
		if resolveErr != nil {
			fmt.Fprintln(opts.Out, styles.failure.Render(fmt.Sprintf("Cannot launch %s: %v", item.Label, resolveErr)))
			continue
		}

		logger.Debugf("Launching %q for action %s", program.String(), item.Action)
		fmt.Fprintf(opts.Out, "\n> %s\n\n", program.String())

		result := it.programs.Run(ctx, program)
		renderResult(opts.Out, styles, result)
	}
}

// resolve builds the single external program invoked for an action.
func (it *MenuCommand) resolve(action entities.ActionName) (entities.Program, error) {
	if action == entities.ActionInstall {
		self, err := it.host.Executable()
		if err != nil {
			return entities.Program{}, fmt.Errorf("cannot locate logpilot binary: %w", err)
		}
		return entities.Program{Command: self, Args: []string{"install"}, Dir: it.settings.Workdir}, nil
	}

	runtime := ""
	if it.settings.NeedsRuntime(action) {
		candidates := it.settings.Runtime.Candidates
		path, err := it.toolchain.LookPath(candidates...)
		if err != nil {
			// let the launch fail visibly instead of hiding the choice
			logger.Warnf("Runtime not found on PATH (%v), trying %q", err, candidates[0])
			path = candidates[0]
		}
		runtime = path
	}

	return it.settings.Program(action, runtime)
}

type menuStyles struct {
	title   lipgloss.Style
	key     lipgloss.Style
	prompt  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

// newMenuStyles binds the styles to out so that piped output stays plain.
func newMenuStyles(out io.Writer) menuStyles {
	renderer := lipgloss.NewRenderer(out)
	return menuStyles{
		title:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		key:     renderer.NewStyle().Bold(true),
		prompt:  renderer.NewStyle().Foreground(lipgloss.Color("245")),
		success: renderer.NewStyle().Foreground(lipgloss.Color("42")),
		warning: renderer.NewStyle().Foreground(lipgloss.Color("214")),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func renderMenu(out io.Writer, styles menuStyles) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.title.Render(menuTitle))
	for _, item := range entities.MenuItems() {
		fmt.Fprintf(out, "  %s. %s\n", styles.key.Render(string(item.Choice)), item.Label)
	}
	fmt.Fprint(out, styles.prompt.Render(
		fmt.Sprintf("Select an option (%s-%s): ", entities.ChoiceAnalysis, entities.ChoiceExit),
	))
}

// renderResult shows how the child ended. The status is informational only.
func renderResult(out io.Writer, styles menuStyles, result entities.ProgramResult) {
	switch {
	case result.Succeeded():
		fmt.Fprintln(out, styles.success.Render("\nexit status 0"))
	case result.ExitCode > 0:
		fmt.Fprintln(out, styles.warning.Render(fmt.Sprintf("\nexit status %d", result.ExitCode)))
	default:
		fmt.Fprintln(out, styles.failure.Render(fmt.Sprintf("\nfailed to run: %v", result.Err)))
	}
}

// readChoice reads one line without buffering, so whatever follows it stays
// in the stream for the program that is launched next.
func readChoice(in io.Reader) (string, error) {
	var line []byte
	b := make([]byte, 1)
	for {
		n, err := in.Read(b)
		if n > 0 {
			line = append(line, b[0])
			if b[0] == '\n' {
				return string(line), nil
			}
		}
		if err != nil {
			return string(line), err
		}
	}
}

func trimLine(line string) string {
	return strings.TrimRight(line, "\r\n")
}
