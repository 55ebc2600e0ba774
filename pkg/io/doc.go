// Package io reads and writes run manifests.
//
// A manifest records everything needed to check a run after the fact: the
// seed, the page geometry, every pair with the anchors of its two boxes, and
// the documents that were written. It is written next to the documents as
// connections.toml.
//
// # Format
//
//	seed = 11
//
//	[page]
//	width = 595.0
//	height = 842.0
//	...
//
//	[[pairs]]
//	a = 7
//	b = 2
//	[pairs.from]
//	x = 475.625
//	y = 783.5
//	...
//
//	[[documents]]
//	name = "animals"
//	kind = "puzzle"
//	files = ["animals.pdf"]
//	image_pairs = 4
//	filled = 4
//
// Two runs with the same seed and the same puzzles produce identical
// manifests, so comparing them is a cheap reproducibility check.
package io
