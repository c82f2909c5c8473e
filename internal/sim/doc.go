// Package sim drives one seismograph frame at a time.
//
// A Driver owns the configuration and every stateful part of the machine:
// the conveyor band, the drum and belt papers and the 3D trace line. Display
// shells call Step (or Advance) once per displayed frame from a single
// goroutine and read the buffers back for upload. Configuration edits go
// through Apply so that sizing changes rebuild the band atomically.
package sim
