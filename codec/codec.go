// Package codec defines the append style JSON marshaler interface. Types that
// render their own JSON this way are accepted by the traversal in walk, which
// canonicalizes whatever they produce.
package codec

// Marshaler is a simplified json.Marshaler that appends to a caller supplied
// slice instead of allocating, and has no error.
type Marshaler interface {
	// Marshal converts the data of the type into JSON, appending it to the
	// provided slice and returning the extended slice.
	Marshal(dst []byte) (b []byte)
}
