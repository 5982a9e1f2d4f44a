// SPDX-License-Identifier: MIT

// Package campus turns a campus walkway file into a core.Graph of buildings
// and answers the questions a visitor asks of it: how big is the campus, and
// what is the quickest walk from one building to another.
//
// Input is the DOT-like edge list used by the campus map export:
//
//	graph campus {
//	    "Memorial Union" -- "Science Hall" [seconds=105.8];
//	}
//
// Every walkway is two-way, so each line inserts two directed edges with the
// same walking time. Lines without "--" are ignored.
//
// Service is safe for concurrent use. Each query and each Stats report runs
// under one read lock and sees a consistent graph. A Load is not atomic:
// it inserts segment by segment, so a concurrent query may see part of it.
package campus
