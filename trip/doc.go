// Package trip wraps the raw trip-planning result consumed from the planner
// backend. The payload shape varies between planner versions, so the wrapper
// exposes duck-typed accessors over a decoded JSON object instead of a fixed
// struct; the convert package turns those loose records into canonical
// logsheet values.
package trip
