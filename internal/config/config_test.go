//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/ritzel/internal/gear"
)

// isolateXDG points the user config directory at an empty temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	return dir
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func intPtr(v int) *int { return &v }

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs/ritzel.log",
			expected: filepath.Join(home, "logs", "ritzel.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/ritzel.log",
			expected: "/var/log/ritzel.log",
		},
		{
			name:     "relative path unchanged",
			input:    "ritzel.log",
			expected: "ritzel.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	dir := isolateXDG(t)

	paths := getConfigPaths()

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "ritzel", "config.toml"), paths[0])
	assert.Equal(t, "ritzel.toml", paths[1], "local file has the highest priority")
}

func TestLoad_NoFiles(t *testing.T) {
	isolateXDG(t)

	cfg, err := Load("")

	require.NoError(t, err)
	s, err := cfg.InitialState()
	require.NoError(t, err)
	assert.Equal(t, 10, s.LeftTeeth())
	assert.Equal(t, 15, s.RightTeeth())
	assert.Equal(t, 1.5, s.GivenRatio())
	assert.Equal(t, gear.Ratio, s.Locked())
}

func TestLoad_UserFile(t *testing.T) {
	dir := isolateXDG(t)
	writeConfig(t, dir, "ritzel/config.toml", `
[defaults]
left_teeth = 12
right_teeth = 36
given_ratio = 3.0
locked = "left"

[teeth]
step = 2
max = 200

[ratio]
precision = 3

[input]
drag_rows = 4

[log]
level = "debug"
file = "/tmp/ritzel-test.log"
`)

	cfg, err := Load("")
	require.NoError(t, err)

	s, err := cfg.InitialState()
	require.NoError(t, err)
	assert.Equal(t, 12, s.LeftTeeth())
	assert.Equal(t, 36, s.RightTeeth())
	assert.Equal(t, 3.0, s.GivenRatio())
	assert.Equal(t, gear.LeftTeeth, s.Locked())

	teeth := cfg.GetTeethConfig()
	assert.Equal(t, 2, teeth.Step)
	assert.Equal(t, 1, teeth.Min)
	assert.Equal(t, 200, teeth.Max)

	ratio := cfg.GetRatioConfig()
	assert.Equal(t, 3, *ratio.Precision)

	assert.Equal(t, 4, cfg.GetInputConfig().DragRows)
	assert.Equal(t, "debug", cfg.GetLogConfig().Level)
	assert.Equal(t, "/tmp/ritzel-test.log", cfg.GetLogConfig().File)
}

func TestLoad_ExplicitFileOverridesUserFile(t *testing.T) {
	dir := isolateXDG(t)
	writeConfig(t, dir, "ritzel/config.toml", `
[defaults]
left_teeth = 12
right_teeth = 36
`)
	explicit := writeConfig(t, t.TempDir(), "custom.toml", `
[defaults]
left_teeth = 20
`)

	cfg, err := Load(explicit)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Defaults.LeftTeeth)
	assert.Equal(t, 36, cfg.Defaults.RightTeeth, "keys not in the explicit file are kept")
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolateXDG(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedTOML(t *testing.T) {
	isolateXDG(t)
	path := writeConfig(t, t.TempDir(), "bad.toml", "[defaults\nleft_teeth = ")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_UnknownLockName(t *testing.T) {
	isolateXDG(t)
	path := writeConfig(t, t.TempDir(), "lock.toml", `
[defaults]
locked = "middle"
`)

	_, err := Load(path)

	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, gear.ErrInvalidSlot)
}

func TestInitialState_InvalidValuesUseDefaults(t *testing.T) {
	cfg := Config{
		Defaults: DefaultsConfig{
			LeftTeeth:  -3,
			RightTeeth: 0,
			GivenRatio: math.NaN(),
		},
	}

	s, err := cfg.InitialState()

	require.NoError(t, err)
	assert.Equal(t, gear.DefaultLeftTeeth, s.LeftTeeth())
	assert.Equal(t, gear.DefaultRightTeeth, s.RightTeeth())
	assert.Equal(t, gear.DefaultGivenRatio, s.GivenRatio())
}

func TestInitialState_ActualRatioFromTeeth(t *testing.T) {
	cfg := Config{
		Defaults: DefaultsConfig{LeftTeeth: 7, RightTeeth: 11, GivenRatio: 1.5, Locked: "right"},
	}

	s, err := cfg.InitialState()

	require.NoError(t, err)
	assert.InDelta(t, 11.0/7.0, s.ActualRatio(), 1e-12)
	assert.Equal(t, gear.RightTeeth, s.Locked())
}

func TestGetTeethConfig(t *testing.T) {
	tests := []struct {
		name   string
		config TeethConfig
		want   TeethConfig
	}{
		{"defaults", TeethConfig{}, TeethConfig{Step: 1, Min: 1, Max: 0}},
		{"custom", TeethConfig{Step: 5, Min: 8, Max: 120}, TeethConfig{Step: 5, Min: 8, Max: 120}},
		{"negative step", TeethConfig{Step: -2}, TeethConfig{Step: 1, Min: 1}},
		{"min below one", TeethConfig{Min: -10}, TeethConfig{Step: 1, Min: 1}},
		{"max below min is unbounded", TeethConfig{Min: 20, Max: 10}, TeethConfig{Step: 1, Min: 20, Max: 0}},
		{"negative max is unbounded", TeethConfig{Max: -1}, TeethConfig{Step: 1, Min: 1, Max: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Teeth: tt.config}
			assert.Equal(t, tt.want, cfg.GetTeethConfig())
		})
	}
}

func TestGetRatioConfig_Defaults(t *testing.T) {
	cfg := Config{}

	ratio := cfg.GetRatioConfig()

	assert.Equal(t, 0.1, ratio.Step)
	assert.Equal(t, 0.1, ratio.Min)
	assert.Equal(t, 100.0, ratio.Max)
	require.NotNil(t, ratio.Precision)
	assert.Equal(t, 2, *ratio.Precision)
}

func TestGetRatioConfig_InvalidValues(t *testing.T) {
	cfg := Config{
		Ratio: RatioConfig{
			Step:      -1,
			Min:       0,
			Max:       0.05,
			Precision: intPtr(12),
		},
	}

	ratio := cfg.GetRatioConfig()

	assert.Equal(t, 0.1, ratio.Step)
	assert.Equal(t, 0.1, ratio.Min)
	assert.Equal(t, 100.0, ratio.Max)
	assert.Equal(t, 2, *ratio.Precision)
}

func TestGetRatioConfig_ZeroPrecision(t *testing.T) {
	cfg := Config{Ratio: RatioConfig{Step: 0.1, Precision: intPtr(0)}}

	ratio := cfg.GetRatioConfig()

	assert.Equal(t, 0, *ratio.Precision)
	assert.Equal(t, 1.0, ratio.Step, "step is raised to the displayed precision")
}

func TestGetRatioConfig_DoesNotMutateConfig(t *testing.T) {
	cfg := Config{}

	_ = cfg.GetRatioConfig()

	assert.Nil(t, cfg.Ratio.Precision)
}

func TestGetInputConfig(t *testing.T) {
	assert.Equal(t, 2, (&Config{}).GetInputConfig().DragRows)
	assert.Equal(t, 2, (&Config{Input: InputConfig{DragRows: -1}}).GetInputConfig().DragRows)
	assert.Equal(t, 3, (&Config{Input: InputConfig{DragRows: 3}}).GetInputConfig().DragRows)
}

func TestGetLogConfig(t *testing.T) {
	assert.Equal(t, "info", (&Config{}).GetLogConfig().Level)
	assert.Equal(t, "warn", (&Config{Log: LogConfig{Level: "warn"}}).GetLogConfig().Level)
}
