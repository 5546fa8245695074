// Package domain models Freifunk mesh nodes and the municipal administrative
// areas they are aggregated into.
//
// # Node sources
//
// Node lists come in two community map formats, both JSON documents with a
// top-level "nodes" array:
//
//	ffmap:    { "nodes": [ { "id": "...", "geo": [lat, lng] | null, ... } ] }
//	nodelist: { "nodes": [ { "id": "...", "position": {"lat": n, "long": n} | absent, ... } ] }
//
// Nodes without position data are not an error; they are simply outside the
// scope of the map and are dropped during extraction.
//
// # Administrative type codes
//
// The reverse-geocode provider tags every candidate area with a structured
// type code whose numeric suffix encodes administrative depth, larger being
// more local:
//
//	O02  state level
//	O04  district level
//	O06  Verbandsgemeinde / collective municipality
//	O07  municipality
//	O08  city district
//
// Only the municipal range O06–O08 is aggregated; a position whose candidate
// set holds nothing in that range resolves to no area at all and is reported
// as a diagnostic, never as a count.
//
// # Distribution
//
// The Distribution is the per-area node tally. It preserves insertion order
// so that the emitted FeatureCollection is deterministic for a fixed input
// document and traversal order.
package domain
