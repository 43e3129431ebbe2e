// Package figure provides the raster canvas the plot helpers draw on.
//
// A [Figure] owns one [Axes]. The axes keep an ordered list of [Artist]
// values and redraw them on every [Figure.Render], so limits and titles set
// after a draw call still apply to it:
//
//   - [ImageArtist]: a matrix of colored cells (nearest neighbour)
//   - [Markers]: filled circles, one color per point
//   - [Arrows]: vector field arrows with triangular heads
//
// Axis ticks are not drawn; only the frame around the data area and the
// title are.
package figure
