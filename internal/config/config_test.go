package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge"
	"go.uber.org/zap"
)

func clearEnv(t *testing.T) {
	t.Setenv("LEASEMERGE_ADDR", "")
	t.Setenv("LEASEMERGE_SHEET", "")
	t.Setenv("LEASEMERGE_LOG_LEVEL", "")
	t.Setenv("LEASEMERGE_MAX_UPLOAD_MB", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Merge.SheetName != "Additions and Modification" {
		t.Errorf("expected default sheet, got %q", cfg.Merge.SheetName)
	}
	if len(cfg.Merge.Columns) != 4 || len(cfg.Merge.Rules) != 4 {
		t.Errorf("expected 4 columns and 4 rules, got %d and %d", len(cfg.Merge.Columns), len(cfg.Merge.Rules))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "leasemerge.yaml")

	labels := false
	cfg := DefaultConfig()
	cfg.Merge.SheetName = "Leases"
	cfg.Merge.LabelNewColumns = &labels
	cfg.Server.Addr = "127.0.0.1:9000"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Leases", loaded.Merge.SheetName)
	require.NotNil(t, loaded.Merge.LabelNewColumns)
	assert.False(t, *loaded.Merge.LabelNewColumns)
	assert.Equal(t, "127.0.0.1:9000", loaded.Server.Addr)
	assert.Equal(t, cfg.Merge.Rules, loaded.Merge.Rules)
}

func TestConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEASEMERGE_ADDR", ":9999")
	t.Setenv("LEASEMERGE_SHEET", "Other")
	t.Setenv("LEASEMERGE_LOG_LEVEL", "debug")
	t.Setenv("LEASEMERGE_MAX_UPLOAD_MB", "5")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "Other", cfg.Merge.SheetName)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, int64(5<<20), cfg.Server.MaxUploadBytes())

	t.Setenv("LEASEMERGE_MAX_UPLOAD_MB", "lots")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "merge: [\n"},
		{"empty sheet", "merge:\n  sheet_name: \"\"\n"},
		{"duplicate header", "merge:\n  columns:\n    - {field: region, header: A}\n    - {field: siteNumber, header: A}\n"},
		{"unknown column field", "merge:\n  columns:\n    - {field: tenant, header: Tenant}\n"},
		{"unknown rule field", "merge:\n  rules:\n    - {field: tenant, label: TENANT}\n"},
		{"empty rule label", "merge:\n  rules:\n    - {field: region}\n"},
		{"partial columns", "merge:\n  columns:\n    - {field: region, header: Region}\n"},
		{"partial rules", "merge:\n  rules:\n    - {field: region, label: ATC REGION}\n"},
		{"zero upload", "server:\n  max_upload_mb: 0\n"},
		{"bad timeout", "server:\n  read_timeout: soon\n"},
		{"bad level", "logging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestMergeOptionsAndTimeouts(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.MergeOptions(zap.NewNop())
	assert.Equal(t, leasemerge.DefaultSheetName, opts.SheetName)
	assert.True(t, opts.ShouldLabelNewColumns())
	assert.Len(t, opts.Columns, 4)

	read, write, shutdown := cfg.Server.Timeouts()
	assert.Equal(t, 30*time.Second, read)
	assert.Equal(t, time.Minute, write)
	assert.Equal(t, 10*time.Second, shutdown)
}
