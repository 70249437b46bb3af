// Package render projects a canonical logsheet day onto the FMCSA daily-log
// grid: four status lanes over a 24-hour ruler, duty segments with inter-lane
// connectors, and a timestamped remarks ledger. Layout is a pure function of
// (day, container width); drawing emits an SVG document and the hit-tester
// inverts the same geometry for pointer tooltips.
package render
