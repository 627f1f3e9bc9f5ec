package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// tagMode says which struct fields a binder fills.
type tagMode int

const (
	// anyField binds untagged fields under their lowercased name.
	anyField tagMode = iota
	// taggedOnly binds only fields with an explicit tag.
	taggedOnly
)

// bindValues copies values into the struct v points to. Missing keys leave
// fields untouched. Failures wrap sentinel.
func bindValues(v any, tag string, mode tagMode, values map[string][]string, sentinel error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil pointer to struct", sentinel)
	}

	return eachField(rv.Elem(), tag, mode, func(f reflect.Value, sf reflect.StructField, key string) error {
		raw := values[key]
		if len(raw) == 0 {
			return nil
		}
		if err := decode(f, raw); err != nil {
			return fmt.Errorf("%w: field %s: %v", sentinel, sf.Name, err)
		}
		return nil
	})
}

// eachField calls fn for every settable field with a key under tag,
// descending into embedded structs.
func eachField(rv reflect.Value, tag string, mode tagMode, fn func(reflect.Value, reflect.StructField, string) error) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if err := eachField(f, tag, mode, fn); err != nil {
				return err
			}
			continue
		}
		key, ok := fieldKey(sf, tag, mode)
		if !ok {
			continue
		}
		if err := fn(f, sf, key); err != nil {
			return err
		}
	}
	return nil
}

// fieldKey resolves the lookup key of sf. `tag:"-"` always skips.
func fieldKey(sf reflect.StructField, tag string, mode tagMode) (string, bool) {
	raw := sf.Tag.Get(tag)
	if raw == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(raw, ",")
	switch {
	case name != "":
		return name, true
	case mode == taggedOnly:
		return "", false
	default:
		return strings.ToLower(sf.Name), true
	}
}

// decode parses raw into f. Slices take every value, scalars the first.
func decode(f reflect.Value, raw []string) error {
	switch f.Kind() {
	case reflect.Pointer:
		if f.IsNil() {
			f.Set(reflect.New(f.Type().Elem()))
		}
		return decode(f.Elem(), raw)
	case reflect.Slice:
		out := reflect.MakeSlice(f.Type(), len(raw), len(raw))
		for i, s := range raw {
			if err := decodeScalar(out.Index(i), s); err != nil {
				return err
			}
		}
		f.Set(out)
		return nil
	default:
		return decodeScalar(f, raw[0])
	}
}

func decodeScalar(f reflect.Value, s string) error {
	bits := 0
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		bits = f.Type().Bits()
	}

	switch f.Kind() {
	case reflect.String:
		f.SetString(s)
	case reflect.Bool:
		b, ok := parseBool(s)
		if !ok {
			return fmt.Errorf("invalid bool value %q", s)
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return fmt.Errorf("invalid int value %q", s)
		}
		f.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return fmt.Errorf("invalid uint value %q", s)
		}
		f.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return fmt.Errorf("invalid float value %q", s)
		}
		f.SetFloat(n)
	default:
		return fmt.Errorf("unsupported type %s", f.Kind())
	}
	return nil
}

// parseBool also takes what checkboxes and people post: "on", "yes", "".
func parseBool(s string) (bool, bool) {
	if b, err := strconv.ParseBool(s); err == nil {
		return b, true
	}
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, true
	case "off", "no", "":
		return false, true
	}
	return false, false
}
