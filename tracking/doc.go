// Package tracking implements the change-tracking collection engines:
// Set, Dictionary, Cache, and List. Each wraps a plain in-memory container
// with a changeset builder of the matching family, recording every
// mutation as an atomic change while the collection's change-collection
// flag is enabled, and tracking a dirty bit independent of that flag.
//
// Open question, resolved: spec.md §3.3 calls for an injectable equality
// relation on elements (and, for keyed shapes, on keys) distinct from the
// storage type's native equality. Go's map type requires `comparable` keys
// hashed by native `==`, so Set, Dictionary, and Cache require their
// element/key type parameters to satisfy `comparable` and use the native
// map for the common case; when a caller supplies a custom equality
// function that could disagree with `==`, membership tests fall back to a
// linear scan that honours it, trading the map's O(1) lookup for semantic
// correctness only when asked to. List carries no such constraint — it is
// backed by a plain slice, and its equality relation (used only to
// suppress no-op replacements and to implement Remove-by-value) is always
// a plain function, default or supplied.
package tracking
