package repl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryFilePath(t *testing.T) {
	home := func() (string, error) {
		return "/home/kal", nil
	}

	t.Run("env", func(t *testing.T) {
		getEnv := func(key string) string {
			if key == "KALEIDOSCOPE_HISTORY_FILE" {
				return "/tmp/history"
			}

			return ""
		}

		path, err := historyFilePath(getEnv, home)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/history", path)
	})

	t.Run("home directory", func(t *testing.T) {
		path, err := historyFilePath(func(string) string { return "" }, home)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/kal", ".kaleidoscope_history"), path)
	})

	t.Run("no home directory", func(t *testing.T) {
		noHome := func() (string, error) {
			return "", errors.New("$HOME is not defined")
		}

		_, err := historyFilePath(func(string) string { return "" }, noHome)
		assert.ErrorContains(t, err, "get home directory")
	})
}

func TestNewDriver(t *testing.T) {
	noEnv := func(string) string { return "" }

	t.Run("defaults", func(t *testing.T) {
		driver, err := newDriver("", noEnv)
		require.NoError(t, err)

		_, err = driver.Parse(context.Background(), sourceName, "4 / 2")
		assert.Error(t, err)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "k.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"precedence": {"/": 40}}`), 0o644))

		driver, err := newDriver(path, noEnv)
		require.NoError(t, err)

		prog, err := driver.Parse(context.Background(), sourceName, "4 / 2")
		require.NoError(t, err)
		assert.Len(t, prog.Items, 1)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := newDriver(filepath.Join(t.TempDir(), "missing.yaml"), noEnv)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
