//go:build unit

package requirements_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/logpilot/internal/infrastructure/repositories/requirements"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("should read floors and platform markers", func(t *testing.T) {
		t.Parallel()

		// given
		content := `# analyzer runtime
python-docx>=0.8.11
pywin32>=306; sys_platform == "win32"
`

		// when
		manifest, err := requirements.Parse("requirements.txt", content)

		// then
		require.NoError(t, err)
		require.Len(t, manifest.Dependencies, 2)

		docx := manifest.Dependencies[0]
		assert.Equal(t, "python-docx", docx.Name)
		assert.Equal(t, "0.8.11", docx.Floor)
		assert.Equal(t, "python-docx>=0.8.11", docx.Spec)
		assert.False(t, docx.Optional)

		pywin := manifest.Dependencies[1]
		assert.Equal(t, "pywin32", pywin.Name)
		assert.Equal(t, "306", pywin.Floor)
		assert.Equal(t, "windows", pywin.Platform)
		assert.True(t, pywin.Optional)
		assert.Equal(t, `pywin32>=306; sys_platform == "win32"`, pywin.Spec)
	})

	t.Run("should understand platform_system markers", func(t *testing.T) {
		t.Parallel()

		// given
		content := "systemd-python; platform_system == 'Linux'\n"

		// when
		manifest, err := requirements.Parse("requirements.txt", content)

		// then
		require.NoError(t, err)
		require.Len(t, manifest.Dependencies, 1)
		assert.Equal(t, "linux", manifest.Dependencies[0].Platform)
		assert.Empty(t, manifest.Dependencies[0].Floor)
	})

	t.Run("should keep non-platform markers mandatory", func(t *testing.T) {
		t.Parallel()

		// given
		content := "typing-extensions>=4.0; python_version < \"3.11\"\n"

		// when
		manifest, err := requirements.Parse("requirements.txt", content)

		// then
		require.NoError(t, err)
		assert.False(t, manifest.Dependencies[0].Optional)
		assert.Equal(t, "4.0", manifest.Dependencies[0].Floor)
	})

	t.Run("should use pinned versions as floors", func(t *testing.T) {
		t.Parallel()

		// given / when
		manifest, err := requirements.Parse("requirements.txt", "lxml==5.2.1\n")

		// then
		require.NoError(t, err)
		assert.Equal(t, "5.2.1", manifest.Dependencies[0].Floor)
	})

	t.Run("should skip comments, blank lines and option lines", func(t *testing.T) {
		t.Parallel()

		// given
		content := "\n# comment\n--index-url https://pypi.org/simple\n\npython-docx>=0.8.11  # word reports\n"

		// when
		manifest, err := requirements.Parse("requirements.txt", content)

		// then
		require.NoError(t, err)
		require.Len(t, manifest.Dependencies, 1)
		assert.Equal(t, "python-docx>=0.8.11", manifest.Dependencies[0].Spec)
	})

	t.Run("should reject duplicate requirements", func(t *testing.T) {
		t.Parallel()

		// given
		content := "python-docx>=0.8.11\nPython-Docx\n"

		// when
		_, err := requirements.Parse("requirements.txt", content)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requirements.txt:2: duplicate requirement")
	})

	t.Run("should reject unknown platforms", func(t *testing.T) {
		t.Parallel()

		// given
		content := "pkg; sys_platform == \"aix\"\n"

		// when
		_, err := requirements.Parse("requirements.txt", content)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported platform")
	})

	t.Run("should reject lines without a package name", func(t *testing.T) {
		t.Parallel()

		// given / when
		_, err := requirements.Parse("requirements.txt", ">=1.0\n")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requirements.txt:1: invalid requirement")
	})
}

func TestRequirementsManifestRepositoryLoad(t *testing.T) {
	t.Parallel()

	t.Run("should read the file when it exists", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("lxml>=5.0\n"), 0o644))
		repo := requirements.NewRequirementsManifestRepository()

		// when
		manifest, err := repo.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, path, manifest.Source)
		require.Len(t, manifest.Dependencies, 1)
		assert.Equal(t, "lxml", manifest.Dependencies[0].Name)
	})

	t.Run("should fall back to the embedded manifest", func(t *testing.T) {
		t.Parallel()

		// given
		repo := requirements.NewRequirementsManifestRepository()

		// when
		manifest, err := repo.Load(filepath.Join(t.TempDir(), "missing.txt"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "<embedded>", manifest.Source)
		assert.Len(t, manifest.Mandatory(), 1)
		assert.Len(t, manifest.Optional(), 1)
	})
}
