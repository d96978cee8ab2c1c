package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/adapters/driving/tui"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_Short(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_RequiresSearchService(t *testing.T) {
	setupTestServices(t, nil, nil)

	_, err := executeRoot(t, "", "tui")

	require.Error(t, err)
	assert.ErrorIs(t, err, tui.ErrMissingSearchService)
}

func TestTUICmd_RejectsArgs(t *testing.T) {
	setupTestServices(t, &mockSearchService{}, nil)

	_, err := executeRoot(t, "", "tui", "cat")

	assert.Error(t, err)
}
