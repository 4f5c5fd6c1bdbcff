// Package signal supplies the sequences that the dtw engine aligns.
//
// Two kinds of sources are provided:
//
//   - Synthetic gait cases. Generate returns a healthy reference trace,
//     sin(t) over two full strides sampled 100 times, together with a patient
//     trace whose pace, amplitude or shape is altered by the chosen Case:
//
//     match  — same pace, light sensor noise
//     slow   — bradykinesia: 140 samples, weaker amplitude
//     severe — ataxia: distorted phase and frequency, heavy noise
//     tremor — normal pace with a fast 10× oscillation on top
//
//   - Recorded sensor data. ReadCSV and ReadCSVFile load one numeric column.
//
// Noise is drawn from an explicitly seeded source, so identical Options
// always yield identical sequences.
package signal
