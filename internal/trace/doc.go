// Package trace holds the three pen records of the seismograph: the drum
// paper, the belt paper and the 3D trace line strung between the rollers.
//
// Drum and belt are scrolling rasters. Each frame the content moves left by
// a whole number of pixels and the uncovered strip on the right is cleared
// and drawn. Fractional pixel advances are carried to the next frame.
package trace
