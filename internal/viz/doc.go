// Package viz holds the terminal drawing primitives shared by the TUI and
// the headless renderer.
//
//   - [Canvas]: braille dot canvas with raster and plot helpers
//   - [Camera] and [Render3D]: wireframe projection of the band and trace line
//   - [Meter]: spring-damped level needle
//   - [Theme] and [Styles]: lipgloss colour schemes
package viz
