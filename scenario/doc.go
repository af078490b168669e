// Package scenario reads and writes gridnav scenario files.
//
// A scenario is a YAML document:
//
//	name: corridor
//	map:
//	  - "S.#G"
//	  - "1239"
//	obstacles:
//	  - route: [[0, 1], [1, 1]]
//	    loop: true
//	occupied:
//	  - cell: [1, 2]
//	    times: [2, 3]
//
// Map legend: S start, G goal, '.' open cell of cost 1, '1'-'9' open cell of
// that cost, '#' wall. S and G are open cells of cost 1. Every row must have
// the same width.
//
// obstacles lists moving obstacles: the obstacle stands on route[t] at time t
// and either loops or parks on its last cell. occupied lists cells that are
// busy at the given times only. Both are optional; a scenario without them is
// static.
//
// Build validates a Scenario and turns it into a World ready for the searches.
package scenario
