// Package hwconfig_test validates INI device-description loading and
// the reference defaults.
package hwconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annealix/crosscut/hwconfig"
	"github.com/annealix/crosscut/xbar"
)

// writeINI drops an INI description into a fresh temp file.
func writeINI(t *testing.T, content string) string {
	t.Helper()

	var path = filepath.Join(t.TempDir(), "device.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const validINI = `
[Crossbar level]
Xbar_Size = 64, 32

[Device level]
Device_Level      = 4
Device_Resistance = 0, 3, 1.5, 1
Read_Level        = 16
`

// TestLoad_Valid parses a complete description.
func TestLoad_Valid(t *testing.T) {
	cfg, err := hwconfig.Load(writeINI(t, validINI))
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.TileRows)
	assert.Equal(t, 32, cfg.TileCols)
	assert.Equal(t, 4, cfg.Levels)
	assert.Equal(t, []float64{0, 3, 1.5, 1}, cfg.Resistance)
	assert.Equal(t, 16, cfg.ReadLevels)
	assert.NoError(t, cfg.Validate(), "loaded configs must be pre-validated")
}

// TestLoad_Errors walks the sentinel surface.
func TestLoad_Errors(t *testing.T) {
	_, err := hwconfig.Load(writeINI(t, "[Device level]\nDevice_Level = 4\n"))
	assert.ErrorIs(t, err, hwconfig.ErrMissingKey, "missing tile shape")

	_, err = hwconfig.Load(writeINI(t, `
[Crossbar level]
Xbar_Size = 64
[Device level]
Device_Level = 4
Device_Resistance = 0, 3, 1.5, 1
Read_Level = 16
`))
	assert.ErrorIs(t, err, hwconfig.ErrBadValue, "shape must be rows,cols")

	_, err = hwconfig.Load(writeINI(t, `
[Crossbar level]
Xbar_Size = 64, 32
[Device level]
Device_Level = four
Device_Resistance = 0, 3, 1.5, 1
Read_Level = 16
`))
	assert.ErrorIs(t, err, hwconfig.ErrBadValue, "non-integer level count")

	// Table length 3 vs 4 levels: the simulator's own sentinel applies.
	_, err = hwconfig.Load(writeINI(t, `
[Crossbar level]
Xbar_Size = 64, 32
[Device level]
Device_Level = 4
Device_Resistance = 0, 3, 1.5
Read_Level = 16
`))
	assert.ErrorIs(t, err, xbar.ErrResistanceTable, "inconsistent table length")

	_, err = hwconfig.Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err, "missing file surfaces the read error")
}

// TestDefault pins the reference device: normalized resistances give a
// conductance linear in the level with max exactly 1.
func TestDefault(t *testing.T) {
	var cfg = hwconfig.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 128, cfg.TileRows)
	assert.Equal(t, 128, cfg.TileCols)
	assert.Equal(t, 8, cfg.Levels)
	assert.Equal(t, 16, cfg.ReadLevels)

	require.Len(t, cfg.Resistance, 8)
	assert.Zero(t, cfg.Resistance[0], "level 0 is the open device")
	assert.Equal(t, 1.0, cfg.Resistance[7], "top level has unit resistance")
	assert.Equal(t, 7.0, cfg.Resistance[1], "conductance linear in level")
}
