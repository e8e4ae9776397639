// Package objspec describes how to construct pluggable components by name
// plus keyword arguments, and resolves those descriptions into live objects.
package objspec

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Spec specifies how to construct an object: the fully qualified name of a
// constructible capability plus keyword arguments for its constructor.
//
// A Spec is a value; treat it as immutable once built.
type Spec struct {
	ClassName string         `yaml:"class_name"`
	Args      map[string]any `yaml:"args"`
}

// Key returns a canonical identity string for the spec. Two specs share a
// key exactly when Equal reports them equal: the class name and every
// argument key and string value are quoted so separators cannot leak in
// from the data, and non-string values carry their Go type so an int 1 and
// a string "1" stay distinct. Keys are safe to use as map keys for
// deduplication.
func (s Spec) Key() string {
	keys := make([]string, 0, len(s.Args))
	for k := range s.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(strconv.Quote(s.ClassName))
	for _, k := range keys {
		b.WriteByte(':')
		b.WriteString(strconv.Quote(k))
		b.WriteByte('=')
		switch v := s.Args[k].(type) {
		case string:
			b.WriteString(strconv.Quote(v))
		default:
			fmt.Fprintf(&b, "%T(%v)", v, v)
		}
	}
	return b.String()
}

// Equal reports whether two specs describe the same construction: the same
// class name and structurally equal arguments. A nil argument map and an
// empty one are the same thing.
func (s Spec) Equal(other Spec) bool {
	if s.ClassName != other.ClassName || len(s.Args) != len(other.Args) {
		return false
	}
	for k, v := range s.Args {
		ov, ok := other.Args[k]
		if !ok || !reflect.DeepEqual(v, ov) {
			return false
		}
	}
	return true
}
