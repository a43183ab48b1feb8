// Package dispatch records the hand-over of a waybill to a courier ("despacho").
//
// A dispatch is append-only: at most one exists per tracking number, and it is never
// edited after creation. The zone is copied from the courier when the dispatch is made so
// that later courier reassignments do not move past dispatches between settlements.
package dispatch
