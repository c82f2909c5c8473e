// Package dynamo provides the primitives shared by the seismograph
// simulation packages.
//
// The package defines the small interfaces that glue the frame driver to
// its components and to the display shells:
//
//   - [Advancer]: anything stepped once per displayed frame
//   - [Observer]: per-frame hook receiving [FrameStats]
//   - [Configurable]: named parameters tunable at runtime
//
// It also holds the domain errors. Degenerate geometry is never an error;
// callers fall back to the limiting case instead.
//
// # Thread Safety
//
// Nothing here is synchronised. The simulation runs on one goroutine and
// the frame driver is the only writer of shared state.
package dynamo
