// Package hwconfig loads crossbar device descriptions.
//
// What:
//
//   - Load parses an INI hardware-description file into an
//     xbar.DeviceConfig (tile geometry, conductance level count,
//     per-level resistance table, read-voltage levels).
//   - Default returns the reference device: 128×128 tiles, 8
//     conductance levels with a normalized resistance table, 16 read
//     levels.
//
// File layout:
//
//	[Crossbar level]
//	Xbar_Size = 128,128
//
//	[Device level]
//	Device_Level      = 8
//	Device_Resistance = 0,7,3.5,2.333,1.75,1.4,1.167,1
//	Read_Level        = 16
//
// The resistance table is indexed by conductance level; level 0 holds
// the "no connection" resistance (0 ⇒ open device, clamped to zero
// conductance by the simulator's ε guard).
//
// Errors: ErrMissingKey / ErrBadValue wrapped with the offending key;
// the resulting config is additionally passed through
// xbar.DeviceConfig.Validate, so Load never returns a config the
// simulator would reject later.
package hwconfig
