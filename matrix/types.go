// SPDX-License-Identifier: MIT

// Package matrix provides a dense row-major float64 matrix used for per-run
// numeric state (pheromone levels and distance snapshots).
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At(), Set() and Add() perform bounds checking in O(1) time.
//	Data() and Scale() run in O(rows*cols).
package matrix
