// Package scenario runs the three lvnum demonstrations and reports their
// results as plain structs ready for text, JSON or YAML rendering:
//
//   - BernoulliReport: mass at a point plus mean, variance and SD.
//   - ZipReport: element-wise sum computed two ways and compared.
//   - TransposeReport: a flat-buffer matrix transposed and compared to the
//     alternate-layout matrix over the same buffer.
//
// Check runs all three against a configuration and returns every failure,
// not just the first.
package scenario
