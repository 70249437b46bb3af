// Package convert turns raw trip-planning payloads into canonical logsheet
// days. The pipeline is pure and never fails on malformed input: records that
// cannot be resolved are dropped, a day with no usable events still comes out
// (empty), and an unrecognizable trip result yields an empty day list so the
// caller can substitute the sample timeline.
package convert
