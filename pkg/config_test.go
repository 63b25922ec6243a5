package pkg

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.Empty(t, ValidateConfig(DefaultConfig()))
}

func TestValidateConfigReportsEveryViolation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "obj"
	cfg.ColorMode = "cmyk"
	cfg.Weights = []float64{1, 1}
	cfg.Categories = []string{"wool", "marble"}
	cfg.Scale = 0
	cfg.Orientation.Rotate = 45
	cfg.Orientation.Direction = "up"
	cfg.MaxWorkers = 0

	violations := ValidateConfig(cfg)
	assert.Len(t, violations, 8)
	assert.Contains(t, violations, `unknown output format "obj"`)
	assert.Contains(t, violations, `unknown color mode "cmyk"`)
	assert.Contains(t, violations, `unknown block category "marble"`)
	assert.Contains(t, violations, "rotate must be 0, 90, 180 or 270, got 45")
}

func TestValidateConfigRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ConversionConfig)
		want   string
	}{
		{"scale NaN", func(c *ConversionConfig) { c.Scale = math.NaN() }, "scale must be a finite number greater than 0, got NaN"},
		{"scale +Inf", func(c *ConversionConfig) { c.Scale = math.Inf(1) }, "scale must be a finite number greater than 0, got +Inf"},
		{"weight NaN", func(c *ConversionConfig) { c.Weights = []float64{1, math.NaN(), 1} }, "weight 1 must be a finite number not below 0, got NaN"},
		{"weight +Inf", func(c *ConversionConfig) { c.Weights = []float64{math.Inf(1), 1, 1} }, "weight 0 must be a finite number not below 0, got +Inf"},
		{"hue NaN", func(c *ConversionConfig) { c.Filters.Hue = math.NaN() }, "hue must be between 0 and 1"},
		{"contrast +Inf", func(c *ConversionConfig) { c.Filters.Contrast = math.Inf(1) }, "contrast must be between 0 and 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Equal(t, []string{tt.want}, ValidateConfig(cfg))
		})
	}
}

func TestValidateConfigAcceptsAllCategories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories = []string{"ALL"}
	assert.Empty(t, ValidateConfig(cfg))

	r, _ := cfg.resolve()
	assert.Len(t, r.categories, 6)
}

func TestResolveAutoSkinFormat(t *testing.T) {
	cfg := DefaultConfig()
	r, violations := cfg.resolve()
	require.Empty(t, violations)
	assert.True(t, r.detectSkin)

	cfg.SkinFormat = "slim"
	r, violations = cfg.resolve()
	require.Empty(t, violations)
	assert.False(t, r.detectSkin)
	assert.Equal(t, "slim", r.skinFormat.String())
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statue.yaml")
	content := "format: litematic\nscale: 2\norientation:\n  direction: east\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Format = "litematic"
	want.Scale = 2
	want.Orientation.Direction = "east"
	assert.Equal(t, want, cfg)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, common.KindConfigRead, common.KindOf(err))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colour_mode: lab\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Equal(t, common.KindConfigParse, common.KindOf(err))
	assert.True(t, errors.Is(err, &common.ConversionError{Kind: common.KindConfigParse}))
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Format = "mcstructure"
	cfg.Categories = []string{"all"}
	cfg.Filters.Posterize = 8

	require.NoError(t, SaveConfig(path, cfg))
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigPalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories = []string{"glass"}
	p, err := cfg.Palette()
	require.NoError(t, err)
	for _, b := range p {
		assert.Equal(t, "glass", b.Category.String(), b.Name)
	}

	cfg.Categories = []string{"stone"}
	_, err = cfg.Palette()
	assert.Equal(t, common.KindConfig, common.KindOf(err))
}
