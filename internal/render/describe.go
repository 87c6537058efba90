package render

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// maxDescribeDepth bounds nesting of distinct collections
const maxDescribeDepth = 32

// visit identifies a slice, map or pointer on the current recursion path
type visit struct {
	ptr  uintptr
	len  int
	kind reflect.Kind
}

type describer struct {
	sb   *strings.Builder
	path map[visit]struct{}
}

// RenderPlain returns the natural description of value.
//
// Strings render unchanged at the top level and quoted inside collections.
// Slices and arrays render as [a, b], maps as [k: v] ordered by key
// description, pointers as their pointee. Stringer and error values use
// their own text. Everything else falls back to fmt.Sprint.
func RenderPlain(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	var sb strings.Builder
	d := &describer{sb: &sb, path: make(map[visit]struct{})}
	d.describe(reflect.ValueOf(value), 0, false)
	return sb.String()
}

// enter records v on the recursion path. It reports false when v is
// already being described, i.e. the value references itself.
func (d *describer) enter(v reflect.Value) (visit, bool) {
	key := visit{ptr: v.Pointer(), kind: v.Kind()}
	if v.Kind() == reflect.Slice {
		key.len = v.Len()
	}
	if _, seen := d.path[key]; seen {
		return key, false
	}
	d.path[key] = struct{}{}
	return key, true
}

func (d *describer) leave(key visit) {
	delete(d.path, key)
}

func (d *describer) describe(v reflect.Value, depth int, nested bool) {
	sb := d.sb
	if depth > maxDescribeDepth {
		sb.WriteString("...")
		return
	}

	if !v.IsValid() {
		sb.WriteString("nil")
		return
	}

	if v.CanInterface() {
		switch t := v.Interface().(type) {
		case fmt.Stringer:
			if !isNilPointer(v) {
				sb.WriteString(t.String())
				return
			}
		case error:
			if !isNilPointer(v) {
				sb.WriteString(t.Error())
				return
			}
		}
	}

	switch v.Kind() {
	case reflect.String:
		if nested {
			sb.WriteString(strconv.Quote(v.String()))
		} else {
			sb.WriteString(v.String())
		}

	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			sb.WriteString("nil")
			return
		}
		if v.Kind() == reflect.Pointer {
			key, ok := d.enter(v)
			if !ok {
				sb.WriteString("...")
				return
			}
			defer d.leave(key)
		}
		d.describe(v.Elem(), depth+1, nested)

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Len() > 0 {
			key, ok := d.enter(v)
			if !ok {
				sb.WriteString("...")
				return
			}
			defer d.leave(key)
		}

		sb.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			d.describe(v.Index(i), depth+1, true)
		}
		sb.WriteByte(']')

	case reflect.Map:
		if v.Len() > 0 {
			key, ok := d.enter(v)
			if !ok {
				sb.WriteString("...")
				return
			}
			defer d.leave(key)
		}
		d.describeMap(v, depth)

	default:
		if v.CanInterface() {
			fmt.Fprint(sb, v.Interface())
		} else {
			fmt.Fprint(sb, v)
		}
	}
}

func (d *describer) describeMap(v reflect.Value, depth int) {
	sb := d.sb
	if v.Len() == 0 {
		sb.WriteString("[:]")
		return
	}

	type pair struct {
		key, value string
	}

	pairs := make([]pair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{
			key:   d.describeTo(iter.Key(), depth+1),
			value: d.describeTo(iter.Value(), depth+1),
		})
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].key < pairs[j].key
	})

	sb.WriteByte('[')
	for i, p := range pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.key)
		sb.WriteString(": ")
		sb.WriteString(p.value)
	}
	sb.WriteByte(']')
}

// describeTo describes a nested v into its own string, sharing the path
func (d *describer) describeTo(v reflect.Value, depth int) string {
	var sb strings.Builder
	sub := &describer{sb: &sb, path: d.path}
	sub.describe(v, depth, true)
	return sb.String()
}

func isNilPointer(v reflect.Value) bool {
	return v.Kind() == reflect.Pointer && v.IsNil()
}
