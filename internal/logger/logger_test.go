package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesComponentLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chapters.log")
	require.NoError(t, Init(path, true))
	t.Cleanup(Close)

	ComponentLogger("chapterpanel").Debug("layout", "height", 12)
	ComponentLogger("app").Info("started")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "component=chapterpanel")
	assert.Contains(t, out, "height=12")
	assert.Contains(t, out, "component=app")
}

func TestInit_InfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapters.log")
	require.NoError(t, Init(path, false))
	t.Cleanup(Close)

	ComponentLogger("x").Debug("hidden")
	ComponentLogger("x").Info("shown")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "hidden"))
	assert.Contains(t, string(data), "shown")
}

func TestComponentLogger_BeforeInitDiscards(t *testing.T) {
	Close()
	assert.NotPanics(t, func() {
		ComponentLogger("x").Error("nowhere")
	})
}

func TestInit_BadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := Init(filepath.Join(blocker, "sub", "x.log"), false)
	assert.Error(t, err)
}

func TestComponentLogger_FollowsReinit(t *testing.T) {
	Close()
	log := ComponentLogger("store").WithGroup("sync")

	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, Init(first, false))
	t.Cleanup(Close)
	log.Info("one", "index", 1)

	require.NoError(t, Init(second, false))
	log.Info("two", "index", 2)

	Close()
	log.Info("three")

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=one component=store sync.index=1")
	assert.NotContains(t, string(data), "two")

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=two component=store sync.index=2")
	assert.NotContains(t, string(data), "three")
}
