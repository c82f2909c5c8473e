// Package cloth simulates the conveyor band as a grid of point masses joined
// by distance constraints.
//
// The band runs in one of two modes. SteadyState snaps every particle onto
// the racetrack path each frame, offset by a phase that advances with the
// loop speed. Dynamic keeps the edge particles at the roller contact zones
// pinned to the path and lets the rest fall under a tension-scaled gravity,
// integrating with Verlet steps and relaxing the constraints a fixed number
// of times per frame.
//
// After every Advance the particle positions are copied into a flat Mesh
// ready for upload to a renderer.
package cloth
