//go:build unit

package toolchain_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/logpilot/internal/domain/entities"
	"github.com/rios0rios0/logpilot/internal/infrastructure/repositories/toolchain"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	return path
}

func TestPathToolchainRepositoryLookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on executable bits")
	}

	t.Run("should prefer the first candidate found on PATH", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeExecutable(t, dir, "python")
		expected := writeExecutable(t, dir, "python3")
		t.Setenv("PATH", dir)
		repo := toolchain.NewPathToolchainRepositoryWithSearchDirs(nil)

		// when
		path, err := repo.LookPath("python3", "python")

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})

	t.Run("should fall through to later candidates", func(t *testing.T) {
		// given
		dir := t.TempDir()
		expected := writeExecutable(t, dir, "pip")
		t.Setenv("PATH", dir)
		repo := toolchain.NewPathToolchainRepositoryWithSearchDirs(nil)

		// when
		path, err := repo.LookPath("pip3", "pip")

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})

	t.Run("should probe configured search directories after PATH", func(t *testing.T) {
		// given
		fallback := t.TempDir()
		expected := writeExecutable(t, fallback, "python3")
		t.Setenv("PATH", t.TempDir())
		repo := toolchain.NewPathToolchainRepositoryWithSearchDirs([]string{fallback})

		// when
		path, err := repo.LookPath("python3", "python")

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})

	t.Run("should fail when no candidate exists", func(t *testing.T) {
		// given
		t.Setenv("PATH", t.TempDir())
		repo := toolchain.NewPathToolchainRepositoryWithSearchDirs(nil)

		// when
		_, err := repo.LookPath("python3", "python")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "none of python3, python found on PATH")
	})

	t.Run("should only consult PATH by default", func(t *testing.T) {
		// given
		t.Setenv("PATH", t.TempDir())
		repo := toolchain.NewPathToolchainRepository(entities.DefaultSettings())

		// when
		_, err := repo.LookPath("sh")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "none of sh found on PATH")
	})

	t.Run("should use search directories from the settings", func(t *testing.T) {
		// given
		dir := t.TempDir()
		expected := writeExecutable(t, dir, "pip3")
		t.Setenv("PATH", t.TempDir())
		settings := entities.DefaultSettings()
		settings.Runtime.SearchDirs = []string{dir}
		repo := toolchain.NewPathToolchainRepository(settings)

		// when
		path, err := repo.LookPath("pip3", "pip")

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, path)
	})

	t.Run("should name the search directories when nothing is found", func(t *testing.T) {
		// given
		dir := t.TempDir()
		t.Setenv("PATH", t.TempDir())
		repo := toolchain.NewPathToolchainRepositoryWithSearchDirs([]string{dir})

		// when
		_, err := repo.LookPath("python3")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "none of python3 found on PATH or in "+dir)
	})
}
