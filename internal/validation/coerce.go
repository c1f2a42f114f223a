package validation

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// coerce walks a generically decoded JSON value alongside the Go type it
// will be decoded into. Numeric strings become numbers, integral floats
// become integers and boolean words become booleans. Values that cannot be
// converted are recorded in errs with their full location, list indices
// included.
func coerce(v any, t reflect.Type, loc []string, errs *Errors) any {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if v == nil {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			errs.add(loc, "Input should be a valid dictionary or object", "model_attributes_type")
			return v
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := jsonName(f)
			if name == "" {
				continue
			}
			if fv, present := obj[name]; present {
				obj[name] = coerce(fv, f.Type, appendLoc(loc, name), errs)
			}
		}
		return obj

	case reflect.Slice:
		list, ok := v.([]any)
		if !ok {
			errs.add(loc, "Input should be a valid list", "list_type")
			return v
		}
		for i, item := range list {
			list[i] = coerce(item, t.Elem(), appendLoc(loc, strconv.Itoa(i)), errs)
		}
		return list

	case reflect.Float32, reflect.Float64:
		return coerceFloat(v, loc, errs)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return coerceInt(v, loc, errs)

	case reflect.Bool:
		return coerceBool(v, loc, errs)

	case reflect.String:
		if _, ok := v.(string); !ok {
			errs.add(loc, "Input should be a valid string", "string_type")
		}
		return v

	default:
		return v
	}
}

func coerceFloat(v any, loc []string, errs *Errors) any {
	var s string
	switch n := v.(type) {
	case json.Number:
		s = n.String()
	case string:
		s = strings.TrimSpace(n)
	default:
		errs.add(loc, "Input should be a valid number", "float_type")
		return v
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		errs.add(loc, "Input should be a valid number, unable to parse string as a number", "float_parsing")
		return v
	}
	return f
}

func coerceInt(v any, loc []string, errs *Errors) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return i
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
			errs.add(loc, "Input should be a valid integer", "int_type")
			return v
		}
		if f != math.Trunc(f) {
			errs.add(loc, "Input should be a valid integer, got a number with a fractional part", "int_from_float")
			return v
		}
		return int64(f)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			errs.add(loc, "Input should be a valid integer, unable to parse string as an integer", "int_parsing")
			return v
		}
		return i
	default:
		errs.add(loc, "Input should be a valid integer", "int_type")
		return v
	}
}

func coerceBool(v any, loc []string, errs *Errors) any {
	switch b := v.(type) {
	case bool:
		return b
	case json.Number:
		switch b.String() {
		case "0":
			return false
		case "1":
			return true
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes", "on", "t", "y":
			return true
		case "false", "0", "no", "off", "f", "n":
			return false
		}
	}
	errs.add(loc, "Input should be a valid boolean", "bool_type")
	return v
}

func (e *Errors) add(loc []string, msg, typ string) {
	*e = append(*e, FieldError{Loc: loc, Msg: msg, Type: typ})
}

func appendLoc(loc []string, seg string) []string {
	out := make([]string, len(loc), len(loc)+1)
	copy(out, loc)
	return append(out, seg)
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// kindName maps a Go kind to the JSON type name used in error messages
func kindName(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return k.String()
	}
}
