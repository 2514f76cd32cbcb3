package reactive

// Unit is the valueless signal type used by the "any change" and
// "notifications resumed" auxiliary streams described in spec.md §4.5.
type Unit struct{}

// UnitValue is the single value of type Unit.
var UnitValue = Unit{}
