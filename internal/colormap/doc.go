// Package colormap maps scalar data onto colors.
//
// A mapping is a pair of pieces:
//
//   - [Norm]: scales a data value into the unit interval ([Normalize], [LogNorm])
//   - [Colormap]: a lookup table that turns a unit value into an RGBA color
//
// Built-in tables are available through [Standard]; user supplied color lists
// through [Listed].
//
// # Example
//
//	cmap, _ := colormap.Standard("viridis")
//	norm := colormap.AutoNormalize()
//	norm.Autoscale(values)
//	c := cmap.At(norm.Apply(values[0]))
package colormap
