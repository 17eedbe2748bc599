// Package weighting provides A, B, C, and Z frequency weighting gains
// per IEC 61672.
//
// Frequency weighting curves shape the magnitude response of a signal to
// approximate the frequency-dependent sensitivity of human hearing.
// The standard defines four curves:
//
//   - A-weighting: approximates the 40-phon equal-loudness contour.
//     Most widely used for noise measurements (e.g., LAeq, LAmax).
//   - B-weighting: approximates the 70-phon equal-loudness contour.
//     Rarely used in modern practice.
//   - C-weighting: approximates the 100-phon equal-loudness contour.
//     Used for peak measurements and C-A difference calculations.
//   - Z-weighting (zero-weighting): unity gain at all frequencies, a flat
//     reference defined in IEC 61672:2003 to replace the unweighted "Linear"
//     designation.
//
// All gains are normalized to unity (0 dB) at the 1 kHz reference frequency.
//
// The implementation evaluates the magnitude of the analog IEC 61672
// prototype transfer functions directly, so the curves are exact at every
// frequency and carry no sample-rate dependent discretization error. This
// makes them suitable for weighting frequency-domain magnitude envelopes,
// e.g. when synthesizing perceptually weighted noise.
package weighting
