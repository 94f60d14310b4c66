// Package matrix offers dense float64 matrices with an explicit layout tag.
//
// A Dense stores its elements in one flat buffer together with a Layout:
//
//   - Row: the buffer fills the matrix row by row.
//   - Col: the buffer fills the matrix column by column.
//
// The same buffer {1, 2, 3, 4} therefore builds two different 2×2 matrices:
//
//	New(data, 2, 2, Row)   New(data, 2, 2, Col)
//	  [1 2]                  [1 3]
//	  [3 4]                  [2 4]
//
// Transposition copies the buffer, swaps rows/cols and flips the tag, so a
// 4×1 Col matrix over {1,2,3,4} transposes into the 1×4 Row matrix over the
// same buffer. Equal compares logical contents and ignores the tag.
//
// The package also provides the usual kernels (Add, Sub, Hadamard, Scale,
// Mul, MatVec, LU, Det, Inverse), column statistics (ColMeans, ColVars,
// ColSDs, Covariance) and gonum interop (ToGonum, FromGonum).
//
// Errors are package sentinels wrapped with an operation tag; match them
// with errors.Is.
package matrix
