//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/logpilot/internal/domain/commands"
	"github.com/rios0rios0/logpilot/internal/domain/entities"
	doubles "github.com/rios0rios0/logpilot/test/infrastructure/repositorydoubles"
)

const menuPrompt = "Select an option (1-6):"

type menuFixture struct {
	programs  *doubles.SpyProgramRepository
	toolchain *doubles.StubToolchainRepository
	host      *doubles.StubHostRepository
	cmd       *commands.MenuCommand
}

func newMenuFixture() *menuFixture {
	f := &menuFixture{
		programs: &doubles.SpyProgramRepository{},
		toolchain: &doubles.StubToolchainRepository{
			Paths: map[string]string{"python3": "/usr/bin/python3"},
		},
		host: &doubles.StubHostRepository{GOOS: "linux", SelfPath: "/opt/logpilot/logpilot"},
	}
	f.cmd = commands.NewMenuCommand(entities.DefaultSettings(), f.programs, f.toolchain, f.host)
	return f
}

func runMenu(t *testing.T, cmd *commands.MenuCommand, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := cmd.Execute(context.Background(), commands.MenuOptions{
		In:  strings.NewReader(input),
		Out: &out,
	})
	return out.String(), err
}

func TestMenuCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should stop without further output when exit is chosen", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()

		// when
		out, err := runMenu(t, f.cmd, "6\n")

		// then
		require.NoError(t, err)
		assert.Empty(t, f.programs.Launched)
		assert.Equal(t, 1, strings.Count(out, menuPrompt))
		assert.True(t, strings.HasSuffix(strings.TrimSpace(out), menuPrompt))
	})

	t.Run("should re-prompt without launching anything for invalid input", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()
		input := "0\n7\nabc\n\n 12 \n6\n"

		// when
		out, err := runMenu(t, f.cmd, input)

		// then
		require.NoError(t, err)
		assert.Empty(t, f.programs.Launched)
		assert.Empty(t, f.toolchain.Lookups)
		assert.Equal(t, 6, strings.Count(out, menuPrompt))
		assert.Equal(t, 5, strings.Count(out, "Invalid choice"))
	})

	t.Run("should launch exactly one program per selection", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()

		// when
		_, err := runMenu(t, f.cmd, "1\n2\n3\n4\n5\n6\n")

		// then
		require.NoError(t, err)
		require.Len(t, f.programs.Launched, 5)
		assert.Equal(t, entities.Program{Command: "/usr/bin/python3", Args: []string{"main.py"}, Dir: "."}, f.programs.Launched[0])
		assert.Equal(t, []string{"demo.py"}, f.programs.Launched[1].Args)
		assert.Equal(t, []string{"test_system.py"}, f.programs.Launched[2].Args)
		assert.Equal(t, []string{"example.py"}, f.programs.Launched[3].Args)
		assert.Equal(t, "/opt/logpilot/logpilot", f.programs.Launched[4].Command)
		assert.Equal(t, []string{"install"}, f.programs.Launched[4].Args)
	})

	t.Run("should accept choices surrounded by whitespace", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()

		// when
		_, err := runMenu(t, f.cmd, "  2 \r\n6\n")

		// then
		require.NoError(t, err)
		require.Len(t, f.programs.Launched, 1)
		assert.Equal(t, []string{"demo.py"}, f.programs.Launched[0].Args)
	})

	t.Run("should show a non-zero exit status and return to the menu", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()
		f.programs.Result = entities.ProgramResult{ExitCode: 3, Err: errors.New("exit status 3")}

		// when
		out, err := runMenu(t, f.cmd, "1\n6\n")

		// then
		require.NoError(t, err)
		assert.Len(t, f.programs.Launched, 1)
		assert.Contains(t, out, "exit status 3")
		assert.Equal(t, 2, strings.Count(out, menuPrompt))
	})

	t.Run("should show a start failure and return to the menu", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()
		f.programs.Result = entities.ProgramResult{ExitCode: -1, Err: errors.New("executable file not found")}

		// when
		out, err := runMenu(t, f.cmd, "4\n6\n")

		// then
		require.NoError(t, err)
		assert.Contains(t, out, "failed to run: executable file not found")
	})

	t.Run("should stop at end of input", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()

		// when
		_, err := runMenu(t, f.cmd, "1\n")

		// then
		require.NoError(t, err)
		assert.Len(t, f.programs.Launched, 1)
	})

	t.Run("should process a last line without newline", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()

		// when
		_, err := runMenu(t, f.cmd, "3")

		// then
		require.NoError(t, err)
		assert.Len(t, f.programs.Launched, 1)
	})

	t.Run("should still launch the first candidate when the runtime is not on PATH", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()
		f.toolchain.Paths = nil

		// when
		_, err := runMenu(t, f.cmd, "1\n6\n")

		// then
		require.NoError(t, err)
		require.Len(t, f.programs.Launched, 1)
		assert.Equal(t, "python3", f.programs.Launched[0].Command)
	})

	t.Run("should not launch the installer when the binary cannot be located", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()
		f.host.ExecutableErr = errors.New("no /proc")

		// when
		out, err := runMenu(t, f.cmd, "5\n6\n")

		// then
		require.NoError(t, err)
		assert.Empty(t, f.programs.Launched)
		assert.Contains(t, out, "Cannot launch Install dependencies")
	})

	t.Run("should run a configured command without looking up the runtime", func(t *testing.T) {
		t.Parallel()

		// given
		f := newMenuFixture()
		settings := entities.DefaultSettings()
		settings.Programs[entities.ActionExamples] = entities.ProgramConfig{
			Command: "/usr/local/bin/examples",
			Args:    []string{"--all"},
		}
		cmd := commands.NewMenuCommand(settings, f.programs, f.toolchain, f.host)

		// when
		_, err := runMenu(t, cmd, "4\n6\n")

		// then
		require.NoError(t, err)
		require.Len(t, f.programs.Launched, 1)
		assert.Equal(t, "/usr/local/bin/examples", f.programs.Launched[0].Command)
		assert.Equal(t, []string{"--all"}, f.programs.Launched[0].Args)
		assert.Empty(t, f.toolchain.Lookups)
	})
}
