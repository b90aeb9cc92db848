package hwconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/annealix/crosscut/xbar"
)

// Sentinel errors returned by Load.
var (
	// ErrMissingKey indicates a required key absent from the file.
	ErrMissingKey = errors.New("hwconfig: missing required key")

	// ErrBadValue indicates a key whose value cannot be parsed.
	ErrBadValue = errors.New("hwconfig: cannot parse value")
)

// Keys of the hardware-description file. Section and key names follow
// the historical device files so existing descriptions load unchanged.
const (
	keyXbarSize   = "Crossbar level.Xbar_Size"
	keyLevels     = "Device level.Device_Level"
	keyResistance = "Device level.Device_Resistance"
	keyReadLevels = "Device level.Read_Level"
)

// Default returns the reference device configuration: 128×128 tiles,
// 8 conductance levels, 16 read levels.
//
// The resistance table is normalized so conductance grows linearly
// with the level and tops out at 1: R[k] = (L−1)/k, R[0] = 0 (open).
func Default() xbar.DeviceConfig {
	const levels = 8

	var table = make([]float64, levels)
	for k := 1; k < levels; k++ {
		table[k] = float64(levels-1) / float64(k)
	}

	return xbar.DeviceConfig{
		TileRows:   128,
		TileCols:   128,
		Levels:     levels,
		Resistance: table,
		ReadLevels: 16,
	}
}

// Load reads the INI hardware description at path.
//
// Errors: viper read errors verbatim; ErrMissingKey / ErrBadValue with
// the offending key; xbar validation sentinels for inconsistent
// configs (e.g. table length ≠ level count).
//
// Complexity: O(levels).
func Load(path string) (xbar.DeviceConfig, error) {
	var (
		cfg xbar.DeviceConfig
		v   = viper.New()
	)
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}

	// Stage 1: tile geometry ("rows,cols").
	var err error
	if cfg.TileRows, cfg.TileCols, err = parseShape(v, keyXbarSize); err != nil {
		return cfg, err
	}

	// Stage 2: device alphabet.
	if cfg.Levels, err = parseInt(v, keyLevels); err != nil {
		return cfg, err
	}
	if cfg.Resistance, err = parseTable(v, keyResistance); err != nil {
		return cfg, err
	}
	if cfg.ReadLevels, err = parseInt(v, keyReadLevels); err != nil {
		return cfg, err
	}

	// Stage 3: reuse the simulator's own validation.
	if err = cfg.Validate(); err != nil {
		return xbar.DeviceConfig{}, err
	}

	return cfg, nil
}

// parseShape reads a "rows,cols" pair.
func parseShape(v *viper.Viper, key string) (int, int, error) {
	if !v.IsSet(key) {
		return 0, 0, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	var parts = strings.Split(v.GetString(key), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %s", ErrBadValue, key)
	}
	rows, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrBadValue, key)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrBadValue, key)
	}

	return rows, cols, nil
}

// parseInt reads a single integer value.
func parseInt(v *viper.Viper, key string) (int, error) {
	if !v.IsSet(key) {
		return 0, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrBadValue, key)
	}

	return n, nil
}

// parseTable reads a comma-separated float list.
func parseTable(v *viper.Viper, key string) ([]float64, error) {
	if !v.IsSet(key) {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
	}
	var (
		parts = strings.Split(v.GetString(key), ",")
		out   = make([]float64, len(parts))
		err   error
	)
	for i := range parts {
		if out[i], err = strconv.ParseFloat(strings.TrimSpace(parts[i]), 64); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadValue, key)
		}
	}

	return out, nil
}
