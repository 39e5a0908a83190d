// Package nexus computes a seller's economic nexus exposure per state.
//
// The flow is Aggregate (orders to per-state totals over the rolling and
// calendar-year windows), Evaluate (totals against one state's threshold)
// and AssembleReport (every registry state, ranked and counted). All of it is
// pure: callers pass the reference instant explicitly.
package nexus
