// SPDX-License-Identifier: MIT

package hashmap

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to a 64-bit digest. Equal keys must produce equal digests.
type Hasher[K any] func(key K) uint64

// DefaultHasher returns the xxHash64-based hasher used by New.
//
// Encoding per key kind:
//   - strings: their bytes (length-prefixed inside composite keys);
//   - signed/unsigned integers, pointers, channels: 8 bytes little-endian;
//   - floats and complex parts: IEEE-754 bits of the float64 value, with -0
//     folded into +0;
//   - bools: one byte;
//   - structs and arrays: every field or element in order;
//   - interfaces: the dynamic type name, then the dynamic value.
//
// Keys that compare equal with == therefore always share a digest.
func DefaultHasher[K comparable]() Hasher[K] {
	return func(key K) uint64 {
		return hashValue(key)
	}
}

func hashValue(v any) uint64 {
	// Fast paths for the common unnamed key types.
	switch k := v.(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(k))

		return xxhash.Sum64(buf[:])
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return xxhash.Sum64String(rv.String())
	}

	d := xxhash.New()
	writeValue(d, rv)

	return d.Sum64()
}

// writeValue feeds the canonical encoding of rv into d. Composite values are
// walked field by field so each scalar gets its own normalisation.
func writeValue(d *xxhash.Digest, rv reflect.Value) {
	var buf [8]byte
	put := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}

	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		put(uint64(len(s)))
		_, _ = d.WriteString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		put(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		put(rv.Uint())
	case reflect.Float32, reflect.Float64:
		put(floatBits(rv.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		put(floatBits(real(c)))
		put(floatBits(imag(c)))
	case reflect.Bool:
		if rv.Bool() {
			buf[0] = 1
		}
		_, _ = d.Write(buf[:1])
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		put(uint64(rv.Pointer()))
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			writeValue(d, rv.Field(i))
		}
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			writeValue(d, rv.Index(i))
		}
	case reflect.Interface:
		if rv.IsNil() {
			put(0)

			return
		}
		elem := rv.Elem()
		_, _ = d.WriteString(elem.Type().String())
		writeValue(d, elem)
	}
	// Slices, maps and funcs are not comparable and never reach here.
}

// floatBits returns the IEEE-754 bits of f with -0 mapped to +0, since the
// two compare equal as keys.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}

	return math.Float64bits(f)
}
