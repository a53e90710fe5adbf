// Package vswap reads the VSWAP page file (VSWAP.WL6 and friends).
//
// The page file holds three consecutive ranges of chunks: wall textures,
// RLE-post sprites, and digitized sound pages. The header says where each
// range begins; a table in the final chunk describes how the sound pages
// group into individual sounds.
package vswap
