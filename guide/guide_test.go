package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Default(t *testing.T) {
	content, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, content, "# juris")
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("no-such-topic")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.Contains(t, names, "find")
	assert.Contains(t, names, "config")
	assert.NotContains(t, names, "guide")
}
