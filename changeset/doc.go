// Package changeset implements the change-set algebra: ChangeSetType
// classification, the immutable DistinctChangeSet / KeyedChangeSet /
// SortedChangeSet batch types, and the builders that accumulate atomic
// changes from package change and classify the resulting batch.
package changeset
