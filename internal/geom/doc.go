// Package geom holds the racetrack path the conveyor band follows between
// its two rollers.
package geom
