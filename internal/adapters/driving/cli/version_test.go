package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	original := version
	version = "test-version-1.0.0"
	t.Cleanup(func() { version = original })
	setupTestServices(t, &mockSearchService{}, nil)

	out, err := executeRoot(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "docsearch version test-version-1.0.0\n", out)
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	original := version
	version = "dev"
	t.Cleanup(func() { version = original })
	setupTestServices(t, &mockSearchService{}, nil)

	out, err := executeRoot(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "docsearch version dev")
}
