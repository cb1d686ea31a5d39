package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/notedex/ai"
	"github.com/poiesic/notedex/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	notes string
	index string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	original := newProvider
	newProvider = func(*ai.Config) (ai.Provider, error) {
		return mock.NewMockProvider(), nil
	}
	t.Cleanup(func() { newProvider = original })

	env := &testEnv{notes: t.TempDir(), index: filepath.Join(t.TempDir(), "index")}
	for name, content := range map[string]string{
		"volcano.md": "# Volcano eruption\nLava and magma.\n",
		"birds.md":   "# Bird migration\nBirds fly south in winter.\n",
		"coast.md":   "Volcanic activity near coast\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(env.notes, name), []byte(content), 0o644))
	}
	return env
}

func (e *testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut

	argv := append([]string{"notedex", "--config", "", "--notes", e.notes, "--index", e.index}, args...)
	err := app.Run(argv)
	return out.String(), errOut.String(), err
}

func TestLogLevel(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "--log-level", "loud", "keywords", "birds.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestIndexAndSearch(t *testing.T) {
	env := newTestEnv(t)

	_, progress, err := env.run(t, "index", "--plain-progress")
	require.NoError(t, err)
	assert.Contains(t, progress, "Indexed")

	out, _, err := env.run(t, "search", "--expanded", "volcano", "eruption")
	require.NoError(t, err)
	assert.Contains(t, out, "search: volcano eruption")
	assert.Contains(t, out, "1. [1.000] Volcano eruption (volcano.md)")
	volcano := strings.Index(out, "(volcano.md)")
	coast := strings.Index(out, "(coast.md)")
	require.NotEqual(t, -1, coast)
	if birds := strings.Index(out, "(birds.md)"); birds != -1 {
		assert.Less(t, volcano, birds)
		assert.Less(t, coast, birds)
	}

	out, _, err = env.run(t, "search", "quasar")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching notes")
}

func TestIndexIncremental(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "index", "--plain-progress")
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(env.notes, "birds.md")))
	_, _, err = env.run(t, "index", "--plain-progress")
	require.NoError(t, err)

	_, _, err = env.run(t, "keywords", "birds.md")
	assert.Error(t, err)

	_, _, err = env.run(t, "index", "--full", "--plain-progress")
	require.NoError(t, err)
}

func TestSimilarAndKeywords(t *testing.T) {
	env := newTestEnv(t)
	_, _, err := env.run(t, "index", "--plain-progress")
	require.NoError(t, err)

	out, _, err := env.run(t, "similar", "--count", "1", "volcano.md")
	require.NoError(t, err)
	assert.Contains(t, out, "coast.md")
	assert.NotContains(t, out, "birds.md")

	out, _, err = env.run(t, "keywords", "-n", "2", "birds.md")
	require.NoError(t, err)
	assert.Len(t, bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n")), 2)
}

func TestMissingArguments(t *testing.T) {
	env := newTestEnv(t)

	for _, cmd := range []string{"search", "similar", "keywords"} {
		t.Run(cmd, func(t *testing.T) {
			_, _, err := env.run(t, cmd)
			assert.ErrorIs(t, err, errMissingArgument)
		})
	}
}

func TestSearchBeforeIndexWarns(t *testing.T) {
	env := newTestEnv(t)

	_, logs, err := env.run(t, "search", "volcano")
	require.NoError(t, err)
	assert.Contains(t, logs, "index is incomplete")
}
