package configdomain

// Map is a flat set of configuration key/value pairs loaded from one file,
// or the result of merging several of them.
type Map map[string]string

// Merge folds another map into this one. Keys present in both are
// overwritten by the other map's value (last write wins).
func (m Map) Merge(other Map) {
	for k, v := range other {
		m[k] = v
	}
}
