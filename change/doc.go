// Package change defines the atomic, tagged-union change types that
// describe a single mutation against a change-tracking collection:
// DistinctChange (sets), KeyedChange (maps/caches), and SortedChange
// (lists). Each type carries a reason tag and typed accessors that fail
// with errs.ErrInvalidVariant when the tag doesn't match the accessor
// being called, rather than exposing the payload fields directly.
package change
