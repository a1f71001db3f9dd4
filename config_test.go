package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // no rc file

	config := loadConfig()
	assert.Equal(t, "", config.SaveDirectory)
	assert.True(t, config.GridEnabled)
	assert.Equal(t, defaultVehicleColor, config.VehicleColor)
	assert.Equal(t, IncompleteKeep, config.IncompleteLine)
	assert.True(t, config.Confirmations)
}

func TestLoadConfigParsesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	rc := `# wiremap settings
save_directory = ~/diagrams
grid = off
vehicle_color = #22c55e
incomplete_line = cancel
confirmations = false

not a key value line
badcolor = 22c55e
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ".wiremaprc"), []byte(rc), 0644))

	config := loadConfig()
	assert.Equal(t, filepath.Join(home, "diagrams"), config.SaveDirectory)
	assert.False(t, config.GridEnabled)
	assert.Equal(t, "#22c55e", config.VehicleColor)
	assert.Equal(t, IncompleteCancel, config.IncompleteLine)
	assert.False(t, config.Confirmations)
}

func TestLoadConfigRejectsMalformedColor(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	rc := "vehiclecolor = 3b82f6\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".wiremaprc"), []byte(rc), 0644))

	config := loadConfig()
	assert.Equal(t, defaultVehicleColor, config.VehicleColor)
}

func TestGetSavePath(t *testing.T) {
	config := &Config{}
	assert.Equal(t, "out.png", config.GetSavePath("out.png"))

	dir := filepath.Join(t.TempDir(), "exports")
	config.SaveDirectory = dir
	assert.Equal(t, filepath.Join(dir, "out.png"), config.GetSavePath("out.png"))
	_, err := os.Stat(dir)
	assert.NoError(t, err, "save directory created on demand")
}

func TestSlotDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	config := &Config{}
	assert.Equal(t, filepath.Join(home, ".wiremap", "slots"), config.SlotDirectory())

	config.SaveDirectory = "/data/wiremap"
	assert.Equal(t, filepath.Join("/data/wiremap", "slots"), config.SlotDirectory())
}
