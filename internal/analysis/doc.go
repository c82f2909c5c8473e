// Package analysis characterises headless seismograph runs.
//
//   - [PowerSpectrum] and [DominantFrequency]: Hann-windowed FFT of the drum
//     signal
//   - [Sweep]: peak and RMS of the signal across a parameter range
//   - [PhasePortrait] and [ZeroCrossings]: pen displacement against its rate
//   - [BandDivergence]: growth rate of a disturbance in the band solver
//
// # Example
//
//	d, _ := sim.New(cfg)
//	rec := sim.NewRecorder(0)
//	d.AddObserver(rec)
//	_ = d.Run(ctx, 1024, 1.0/60, nil)
//	freq, _ := analysis.DominantFrequency(rec.Samples(), 60)
package analysis
