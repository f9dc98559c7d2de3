package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuide(t *testing.T) {
	env := newTestEnv(t)

	t.Run("main guide without an index", func(t *testing.T) {
		out := env.run("guide")
		env.contains(out, "# juris")
		env.contains(out, "juris find")
	})

	t.Run("topic", func(t *testing.T) {
		out := env.run("guide", "find", "--raw")
		env.contains(out, "# juris find")
		env.contains(out, "prefix")
	})

	t.Run("unknown topic lists available", func(t *testing.T) {
		out, err := env.runErr("guide", "nope")
		assert.Error(t, err)
		env.contains(out, "Available:")
		env.contains(out, "find")
	})

	t.Run("llm", func(t *testing.T) {
		out := env.run("llm")
		env.contains(out, "juris for LLMs")
	})
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	env.contains(out, "Build Tag:")
	env.contains(out, "Go Version:")

	var info struct {
		BuildTag string `json:"build_tag"`
	}
	out = env.stdout("version", "-o", "json")
	require.NoError(t, json.Unmarshal([]byte(out), &info), out)
	assert.Equal(t, "dev", info.BuildTag)
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newIndexEnv(t, fixtureRulings()...)

	out, err := env.runErr("find", "icms", "-o", "xml")
	assert.Error(t, err)
	env.contains(out, "invalid output format")
}
