package tracking

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// defaultEquals is the structural-equality fallback used by Dictionary,
// Cache, and List when the caller supplies no equality function. Plain
// cmp.Equal panics on a struct with unexported fields and no Equal method;
// cmp.Exporter here tells go-cmp to compare every field regardless of
// exportedness, so a default-constructed collection never panics on the
// shape of value its callers actually store.
func defaultEquals[V any](a, b V) bool {
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}
