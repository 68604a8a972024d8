// Package physconst provides a fixed table of physical constants together
// with conversions between temperature scales and energy units.
//
// The constants are the CODATA 2014 recommended values. Each one is
// available both as an untyped Go constant, for use in expressions,
//
//	energy := physconst.H * frequency
//
// and as a [Constant] record carrying its unit, relative standard
// uncertainty and description:
//
//	c, _ := physconst.Lookup("hbar")
//	fmt.Println(c.Value, c.Unit, c.Uncertainty)
//
// Temperature conversions refuse values below absolute zero in the input
// scale and report them with a [*RangeError], which wraps
// [ErrOutOfPhysicalRange]. Energy conversions accept any value.
//
// A command-line front end is available in cmd/physconst.
package physconst
