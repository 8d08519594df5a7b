package app

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aflah02/pyqa/internal/config"
	"github.com/aflah02/pyqa/internal/fsh"
)

func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *cobra.Command {
		t.Helper()
		pathResolver := fsh.NewPathResolver()
		cmd := NewInitCmd(pathResolver)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		return cmd
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		projectDir := filepath.Join(tmpDir, "my-project")

		cmd := setup(t)
		cmd.SetArgs([]string{projectDir})

		err := cmd.Execute()
		require.NoError(t, err)

		// Verify directory exists
		info, err := os.Stat(projectDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		// Verify config file exists
		configPath := filepath.Join(projectDir, config.ConfigFile)
		data, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfigContent, string(data))
	})

	t.Run("error - configuration already exists", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, config.ConfigFile)
		err := os.WriteFile(configPath, []byte("existing"), 0o600)
		require.NoError(t, err)

		cmd := setup(t)
		cmd.SetArgs([]string{tmpDir})

		err = cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration already exists")
	})

	t.Run("error - cannot create directory", func(t *testing.T) {
		t.Parallel()
		// Use a file where a directory should be so MkdirAll fails.
		tmpDir := t.TempDir()
		filePath := filepath.Join(tmpDir, "some-file")
		err := os.WriteFile(filePath, []byte("not-a-dir"), 0o600)
		require.NoError(t, err)

		badDir := filepath.Join(filePath, "nested")

		cmd := setup(t)
		cmd.SetArgs([]string{badDir})

		err = cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create directory")
	})

	t.Run("error - missing argument", func(t *testing.T) {
		t.Parallel()
		cmd := setup(t)
		cmd.SetArgs([]string{})

		// Cobra will handle this and return an error before RunE
		err := cmd.Execute()
		require.Error(t, err)
	})

	t.Run("error - failed to write config file", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		projectDir := filepath.Join(tmpDir, "readonly-dir")
		err := os.Mkdir(projectDir, 0o555) // Read and execute but no write
		require.NoError(t, err)

		defer func() {
			_ = os.Chmod(projectDir, 0o755)
		}()

		cmd := setup(t)
		cmd.SetArgs([]string{projectDir})

		err = cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to write configuration file")
	})
}

// TestRegistration verifies the command is registered in RootCmd.
func TestRootCmd_InitRegistration(t *testing.T) {
	t.Parallel()
	lazy := &LazyGate{}
	ll := &slog.LevelVar{}
	rootCmd := NewRootCmd(lazy, ll, os.Stdout, os.Stderr, fsh.NewEnvProvider())

	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == InitCmdName {
			found = true
			break
		}
	}
	assert.True(t, found, InitCmdName+" command should be registered")
}

// TestPersistentPreRunE_Init_SkipsInitialisation verifies that init skips project init.
func TestPersistentPreRunE_Init_SkipsInitialisation(t *testing.T) {
	t.Parallel()
	lazy := &LazyGate{}
	ll := &slog.LevelVar{}
	rootCmd := NewRootCmd(lazy, ll, os.Stdout, os.Stderr, fsh.NewEnvProvider())

	// Find the init command
	var initCmd *cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == InitCmdName {
			initCmd = cmd
			break
		}
	}
	assert.NotNil(t, initCmd)

	// Call PersistentPreRunE
	if rootCmd.PersistentPreRunE != nil {
		err := rootCmd.PersistentPreRunE(initCmd, []string{"some-path"})
		require.NoError(t, err)
	}

	// Verify that the project was NOT initialised (lazy gate remains empty)
	assert.False(t, lazy.HasInner())
}

func TestAddEnvironmentVariableInstructionsForOS(t *testing.T) {
	t.Parallel()
	dir := "/tmp/some-project"
	pathResolver := fsh.NewPathResolver()

	t.Run("windows", func(t *testing.T) {
		t.Parallel()
		got := addEnvironmentVariableInstructionsForOS(pathResolver, dir, "windows")
		assert.Contains(t, got, "setx")
		assert.Contains(t, got, "PYQA_PROJECT_DIR")
	})

	t.Run("darwin", func(t *testing.T) {
		t.Parallel()
		got := addEnvironmentVariableInstructionsForOS(pathResolver, dir, "darwin")
		assert.Contains(t, got, "echo")
		assert.Contains(t, got, "&& source")
		assert.Contains(t, got, ".zshrc")
		assert.Contains(t, got, "PYQA_PROJECT_DIR")
	})

	t.Run("linux", func(t *testing.T) {
		t.Parallel()
		got := addEnvironmentVariableInstructionsForOS(pathResolver, dir, "linux")
		assert.Contains(t, got, "echo")
		assert.Contains(t, got, "&& source")
		assert.Contains(t, got, ".bashrc")
		assert.Contains(t, got, "PYQA_PROJECT_DIR")
	})

	t.Run("abs-error", func(t *testing.T) {
		t.Parallel()

		mockResolver := &mockPathResolver{
			absFn: func(_ string) (string, error) {
				return "", errors.New("mock-error")
			},
		}

		got := addEnvironmentVariableInstructionsForOS(mockResolver, dir, "linux")
		assert.Contains(t, got, dir)
	})
}
