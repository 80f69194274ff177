// Package gridpath finds shortest routes across square free/blocked grids
// using breadth-first search.
//
// 🚀 What is gridpath?
//
//	A small, focused library that answers one question well: is there a
//	4-directional route from the top-left corner of a square grid to the
//	bottom-right corner, and if so, which shortest route?
//		• grid/       — the flat row-major byte grid: validation, bounds,
//		                index↔coordinate mapping, free-cell regions
//		• pathsearch/ — BFS from (0,0) to (n-1,n-1), solved once at
//		                construction, immutable thereafter
//
// ✨ Why gridpath?
//
//   - Deterministic – a fixed neighbor order makes the returned path
//     reproducible, even when several shortest paths tie
//   - Rock-solid guarantees – immutable inputs, pure read-only queries,
//     traversal hooks (OnEnqueue, OnDequeue, OnVisit) for custom logic
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example (1 = free, 0 = blocked):
//
//	1 1 0
//	0 1 1        shortest route: (0,0)→(0,1)→(1,1)→(2,1)→(2,2)
//	0 1 1
//
// Dive into the package docs of grid and pathsearch for the full API.
//
//	go get github.com/marbello1973/gridpath
package gridpath
