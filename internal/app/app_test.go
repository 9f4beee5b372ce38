package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/samdwyer/roomgen/internal/descriptor"
	"github.com/samdwyer/roomgen/internal/ui"
	"github.com/samdwyer/roomgen/internal/world"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	cfg.DirPrefix = "test"
	cfg.Seed = 42
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.ManifestPath = filepath.Join(t.TempDir(), "layout.yaml")

	a, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	res, err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(42), res.Seed)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, filepath.Join(cfg.OutputDir, descriptor.RunDirName("test", os.Getpid())), res.Dir)
	require.Len(t, res.Files, world.DefaultCapacity)
	require.NoError(t, res.Layout.Verify())

	for i, room := range res.Layout.Rooms {
		content, err := os.ReadFile(res.Files[i])
		require.NoError(t, err)
		assert.Equal(t, descriptor.Render(room), string(content))
	}

	f, err := os.Open(res.ManifestPath)
	require.NoError(t, err)
	defer f.Close()
	m, err := descriptor.ParseManifest(f)
	require.NoError(t, err)
	assert.Equal(t, res.RunID, m.RunID)
	assert.Len(t, m.Rooms, world.DefaultCapacity)
}

func TestRunReproducible(t *testing.T) {
	run := func() *Result {
		a, err := New(testConfig(t), zaptest.NewLogger(t))
		require.NoError(t, err)
		res, err := a.Run(context.Background())
		require.NoError(t, err)
		return res
	}

	first, second := run(), run()
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.Layout.Rooms, second.Layout.Rooms)
}

func TestRunRandomSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed = 0

	a, err := New(cfg, nil)
	require.NoError(t, err)
	res, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.NotZero(t, res.Seed)
}

func TestRunExistingDirectory(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Mkdir(filepath.Join(cfg.OutputDir, descriptor.RunDirName("test", os.Getpid())), 0o755))

	a, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	_, err = a.Run(context.Background())
	assert.Error(t, err)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Capacity = 11

	_, err := New(cfg, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may be written for an invalid config")
}

func TestRunPreview(t *testing.T) {
	cfg := testConfig(t)
	cfg.Preview = true

	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := New(cfg, zaptest.NewLogger(t), WithScreen(func() (*ui.Screen, error) {
		screen, err := ui.NewScreenFrom(sim)
		if err != nil {
			return nil, err
		}
		sim.SetSize(80, 24)
		sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
		return screen, nil
	}))
	require.NoError(t, err)

	res, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Files, world.DefaultCapacity)
}

func TestHandleEvent(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	require.NoError(t, err)
	defer screen.Close()

	tests := []struct {
		name string
		ev   tcell.Event
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), false},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), true},
		{"resize", tcell.NewEventResize(80, 24), true},
		{"closed", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handleEvent(screen, tt.ev))
		})
	}
}
