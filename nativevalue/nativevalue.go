// Package nativevalue converts a live Go value into the item tree the
// layout package emits, the path jsonfmt.Serialize uses. Numbers are
// formatted with strconv rather than encoding/json's float-only
// marshaling, so integers too large for float64 round-trip exactly.
package nativevalue

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/position"
)

// defaultRecursionLimit bounds conversion depth when the caller passes 0.
// There is no cycle detection by identity, just this depth-bounded guard.
const defaultRecursionLimit = 100

// Convert turns v into an *item.Item tree, or an error if v contains a
// value that cannot be represented (a function, channel, or complex
// number) or nests deeper than limit (0 selects defaultRecursionLimit).
func Convert(v any, limit int) (*item.Item, error) {
	if limit <= 0 {
		limit = defaultRecursionLimit
	}
	return convert(v, limit)
}

func convert(v any, depthBudget int) (*item.Item, error) {
	if depthBudget < 0 {
		return nil, ferr.New(ferr.EInternal, "value nesting exceeds the serialization recursion limit")
	}

	if v == nil {
		return &item.Item{Kind: item.Null, Value: "null"}, nil
	}

	switch tv := v.(type) {
	case json.Number:
		return &item.Item{Kind: item.Number, Value: string(tv)}, nil
	case bool:
		return boolItem(tv), nil
	case string:
		return &item.Item{Kind: item.String, Value: strconv.Quote(tv)}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return &item.Item{Kind: item.Null, Value: "null"}, nil
		}
		return convert(rv.Elem().Interface(), depthBudget)

	case reflect.Bool:
		return boolItem(rv.Bool()), nil

	case reflect.String:
		return &item.Item{Kind: item.String, Value: strconv.Quote(rv.String())}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &item.Item{Kind: item.Number, Value: strconv.FormatInt(rv.Int(), 10)}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &item.Item{Kind: item.Number, Value: strconv.FormatUint(rv.Uint(), 10)}, nil

	case reflect.Float32, reflect.Float64:
		return &item.Item{Kind: item.Number, Value: strconv.FormatFloat(rv.Float(), 'g', -1, 64)}, nil

	case reflect.Slice, reflect.Array:
		return convertSlice(rv, depthBudget)

	case reflect.Map:
		return convertMap(rv, depthBudget)

	case reflect.Struct:
		return convertStruct(rv, depthBudget)

	default:
		return nil, ferr.New(ferr.EInternal, fmt.Sprintf("cannot serialize a %s value", rv.Kind()))
	}
}

func boolItem(b bool) *item.Item {
	if b {
		return &item.Item{Kind: item.True, Value: "true"}
	}
	return &item.Item{Kind: item.False, Value: "false"}
}

func convertSlice(rv reflect.Value, depthBudget int) (*item.Item, error) {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return &item.Item{Kind: item.Null, Value: "null"}, nil
	}
	arr := &item.Item{Kind: item.Array}
	maxChild := -1
	for i := 0; i < rv.Len(); i++ {
		child, err := convert(rv.Index(i).Interface(), depthBudget-1)
		if err != nil {
			return nil, err
		}
		child.Position = position.Zero
		arr.Children = append(arr.Children, child)
		if child.Complexity > maxChild {
			maxChild = child.Complexity
		}
	}
	if maxChild >= 0 {
		arr.Complexity = 1 + maxChild
	}
	return arr, nil
}

func convertMap(rv reflect.Value, depthBudget int) (*item.Item, error) {
	if rv.IsNil() {
		return &item.Item{Kind: item.Null, Value: "null"}, nil
	}
	keys := make([]string, 0, rv.Len())
	values := map[string]reflect.Value{}
	for _, k := range rv.MapKeys() {
		ks := fmt.Sprint(k.Interface())
		keys = append(keys, ks)
		values[ks] = rv.MapIndex(k)
	}
	sort.Strings(keys)

	obj := &item.Item{Kind: item.Object}
	maxChild := -1
	for _, k := range keys {
		child, err := convert(values[k].Interface(), depthBudget-1)
		if err != nil {
			return nil, err
		}
		child.Name = strconv.Quote(k)
		child.Position = position.Zero
		obj.Children = append(obj.Children, child)
		if child.Complexity > maxChild {
			maxChild = child.Complexity
		}
	}
	if maxChild >= 0 {
		obj.Complexity = 1 + maxChild
	}
	return obj, nil
}

func convertStruct(rv reflect.Value, depthBudget int) (*item.Item, error) {
	t := rv.Type()
	obj := &item.Item{Kind: item.Object}
	maxChild := -1
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := fieldJSONName(f)
		if skip {
			continue
		}
		child, err := convert(rv.Field(i).Interface(), depthBudget-1)
		if err != nil {
			return nil, err
		}
		child.Name = strconv.Quote(name)
		child.Position = position.Zero
		obj.Children = append(obj.Children, child)
		if child.Complexity > maxChild {
			maxChild = child.Complexity
		}
	}
	if maxChild >= 0 {
		obj.Complexity = 1 + maxChild
	}
	return obj, nil
}

func fieldJSONName(f reflect.StructField) (name string, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	if tag == "" {
		return f.Name, false
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			if i == 0 {
				return f.Name, false
			}
			return tag[:i], false
		}
	}
	return tag, false
}
