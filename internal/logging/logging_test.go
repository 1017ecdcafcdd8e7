package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	prevOut, prevFlags := log.Writer(), log.Flags()
	defer func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}()

	path := filepath.Join(t.TempDir(), "nested", "game.log")
	file, err := Setup(path)
	require.NoError(t, err)
	log.Printf("Game: hello")
	require.NoError(t, file.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Game: hello")
}

func TestDefaultPathUsesConfigDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("HOME", root)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "pageswap.log", filepath.Base(path))
	assert.Contains(t, path, filepath.Join("pageswap", "logs"))
}
