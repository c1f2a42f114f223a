// Package serializer turns raw stored documents into plain JSON-ready maps.
package serializer

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// IDKey is the reserved key the document store keeps identifiers under
	IDKey = "_id"
	// PublicIDKey is the key the identifier is exposed under
	PublicIDKey = "id"
)

// AuditFields are the timestamp fields stamped on every inserted document
var AuditFields = []string{"created_at", "updated_at"}

// Products serializes documents of the product collection
var Products = New(AuditFields...)

// Serializer converts documents using a declared set of timestamp fields
type Serializer struct {
	timeFields map[string]struct{}
}

// New creates a Serializer that formats the given fields as ISO-8601
func New(timeFields ...string) *Serializer {
	fields := make(map[string]struct{}, len(timeFields))
	for _, f := range timeFields {
		fields[f] = struct{}{}
	}
	return &Serializer{timeFields: fields}
}

// Serialize returns a copy of doc with "_id" moved to "id" as a string and
// declared timestamp fields rendered as RFC 3339 strings. Nil or empty
// input is returned as is.
func (s *Serializer) Serialize(doc map[string]any) map[string]any {
	if len(doc) == 0 {
		return doc
	}

	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == IDKey {
			out[PublicIDKey] = FormatID(v)
			continue
		}
		if _, ok := s.timeFields[k]; ok {
			out[k] = formatTime(v)
			continue
		}
		out[k] = v
	}
	return out
}

// SerializeAll applies Serialize to every document
func (s *Serializer) SerializeAll(docs []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, s.Serialize(d))
	}
	return out
}

// FormatID renders a store identifier as a string. ObjectIDs use their hex form.
func FormatID(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// FormatTime renders t as UTC RFC 3339 with nanoseconds
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTime(v any) any {
	switch t := v.(type) {
	case time.Time:
		return FormatTime(t)
	case *time.Time:
		if t == nil {
			return nil
		}
		return FormatTime(*t)
	case primitive.DateTime:
		return FormatTime(t.Time())
	case primitive.Timestamp:
		return FormatTime(time.Unix(int64(t.T), 0))
	default:
		return v
	}
}
