// Package gui is the raylib window for the seismograph: the recording drum
// and take-up roller, the band mesh textured with the belt paper, the 3D
// trace line and optional decor models, with a HUD and keyboard controls.
package gui
