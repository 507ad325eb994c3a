package mizui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// lookup 沿 path 逐层取值，缺失或 nil 时返回 false。
func lookup(data map[string]any, path []string) (any, bool) {
	var cur any = data
	for _, name := range path {
		next, ok := field(cur, name)
		if !ok || next == nil {
			return nil, false
		}
		cur = next
	}

	return cur, true
}

func field(v any, name string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		val, ok := m[name]
		return val, ok
	}

	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		return structField(rv, name)
	default:
		return nil, false
	}
}

// structField 按字段名或 json tag 查找导出字段。
func structField(rv reflect.Value, name string) (any, bool) {
	typ := rv.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if f.Name == name || (tag != "" && tag != "-" && tag == name) {
			return rv.Field(i).Interface(), true
		}
	}

	return nil, false
}

// indirect 解开指针与接口，nil 时返回 false。
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}

	return rv, rv.IsValid()
}

// formatValue 将查找结果转为文本。
//
// 标量交给 cast；切片与数组按 "," 连接各元素。
func formatValue(v any) (string, error) {
	if v == nil {
		return "", nil
	}

	// Stringer 与 error 优先于解引用
	switch v.(type) {
	case fmt.Stringer, error:
		return cast.ToStringE(v)
	}

	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return "", nil
	}

	switch rv.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return "", fmt.Errorf("cannot render value of type %T", v)
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		parts := make([]string, rv.Len())
		for i := range rv.Len() {
			s, err := formatValue(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	}

	if s, err := cast.ToStringE(rv.Interface()); err == nil {
		return s, nil
	}

	return fmt.Sprint(rv.Interface()), nil
}
