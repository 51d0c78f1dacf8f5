// Package constants exposes the CODATA 2018 recommended values of
// fundamental physical constants.
//
// Common constants are Go constants (SpeedOfLight, Planck, ...). The full
// table is reachable by name:
//
//	c, err := constants.Lookup("speed of light in vacuum")
//	fmt.Println(c.Value, c.Unit, c.Exact())
//
// Names are matched case-insensitively. Find returns every name containing a
// substring; All returns the whole table sorted by name.
package constants
