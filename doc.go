// Package pathery is a shortest-path engine for Pathery-style puzzle boards:
// grids of open cells, rocks, player walls, ice, ordered checkpoints and
// one-shot teleporters.
//
// What is pathery?
//
//	A small, deterministic solver that brings together:
//		• grid/       decoding integer cell codes and map codes, rendering boards
//		• search/     multi-source breadth-first search with ice sliding
//		• teleport/   splicing teleporter jumps into a path, each used once
//		• pathfinder/ chaining Start → checkpoints → Goal into one route
//		• boundary/   the flat int32 encoding used across the C ABI
//
// Why?
//
//   - Deterministic: fixed direction preference Up, Right, Down, Left
//   - Exact: ties broken identically on every run, so scores are reproducible
//   - Embeddable: a c-shared build (cmd/libpathery) exports getShortestPath
//   - Served: cmd/pathery-server answers queries over HTTP and WebSocket
//   - Inspectable: cmd/pathery prints or interactively views a solved board
//
// Quick example (map code "3.1.0.line:,s1.1,f1."):
//
//	|S|•|G|
//	steps: 2
//
//	go get github.com/katalvlaran/pathery/pathfinder
package pathery
