// Package validation decodes request bodies and checks them against the
// struct tags in internal/models.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected input location
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Errors is returned when a request body does not match its schema
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator wraps a go-playground validator configured to report JSON field names
type Validator struct {
	validate *validator.Validate
}

// New creates a new validator
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and returns Errors when any rule fails
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Loc:  append([]string{"body"}, namespacePath(fe.Namespace())...),
			Msg:  message(fe),
			Type: errorType(fe),
		})
	}
	return out
}

// Decode reads one JSON document from r, coerces its values to the field
// types of dst and validates the result. Trailing data after the document
// is rejected.
func (v *Validator) Decode(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return decodeError(err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Errors{{Loc: []string{"body"}, Msg: "JSON decode error: unexpected data after the JSON document", Type: "json_invalid"}}
	}

	var errs Errors
	coerced := coerce(raw, reflect.TypeOf(dst), []string{"body"}, &errs)
	if len(errs) > 0 {
		return errs
	}

	payload, err := json.Marshal(coerced)
	if err != nil {
		return fmt.Errorf("failed to re-encode request body: %w", err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return decodeError(err)
	}

	return v.Struct(dst)
}

func decodeError(err error) Errors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		kind := kindName(typeErr.Type.Kind())
		return Errors{{
			Loc:  loc,
			Msg:  "Input should be a valid " + kind,
			Type: kind + "_type",
		}}
	}

	if errors.Is(err, io.EOF) {
		return Errors{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}}
	}

	return Errors{{Loc: []string{"body"}, Msg: "JSON decode error: " + err.Error(), Type: "json_invalid"}}
}

// namespacePath turns "CreateOrderRequest.items[0].quantity" into
// ["items", "0", "quantity"]
func namespacePath(ns string) []string {
	segments := strings.Split(ns, ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}

	path := make([]string, 0, len(segments))
	for _, seg := range segments {
		for seg != "" {
			open := strings.IndexByte(seg, '[')
			if open < 0 {
				path = append(path, seg)
				break
			}
			if open > 0 {
				path = append(path, seg[:open])
			}
			end := strings.IndexByte(seg, ']')
			if end < open {
				path = append(path, seg[open:])
				break
			}
			path = append(path, seg[open+1:end])
			seg = seg[end+1:]
		}
	}
	return path
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "gte", "min":
		return "Input should be greater than or equal to " + fe.Param()
	case "lte", "max":
		return "Input should be less than or equal to " + fe.Param()
	default:
		return fe.Error()
	}
}

func errorType(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing"
	case "gte", "min":
		return "greater_than_equal"
	case "lte", "max":
		return "less_than_equal"
	default:
		return fe.Tag()
	}
}
