package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldType is the numeric type tag of a user-defined field.
type FieldType int

const (
	FieldText       FieldType = 10
	FieldNumber     FieldType = 20
	FieldTextList   FieldType = 30
	FieldNumberList FieldType = 40
	FieldDate       FieldType = 50
	FieldDateList   FieldType = 60
	FieldLink       FieldType = 70
	FieldLinkList   FieldType = 80
)

var fieldTypeNames = map[FieldType]string{
	FieldText:       "text",
	FieldNumber:     "number",
	FieldTextList:   "text-list",
	FieldNumberList: "number-list",
	FieldDate:       "date",
	FieldDateList:   "date-list",
	FieldLink:       "link",
	FieldLinkList:   "link-list",
}

func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return strconv.Itoa(int(t))
}

// ParseFieldType accepts a name such as "number" or a raw type tag.
func ParseFieldType(s string) (FieldType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range fieldTypeNames {
		if name == s {
			return t, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unknown field type %q", s)
	}
	return FieldType(n), nil
}

// TextValue is a field value rendered as text. The backend sends strings for
// most types but bare numbers for numeric fields; both decode to their text.
type TextValue string

func (v *TextValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = TextValue(s)
	case len(b) > 0 && (b[0] == '{' || b[0] == '['):
		return fmt.Errorf("field value must be a scalar, got %s", b)
	default:
		*v = TextValue(b)
	}
	return nil
}

// FieldValueRequest sets the named field on the session's player.
type FieldValueRequest struct {
	Name   string    `json:"name"`
	Value  any       `json:"value"`
	TypeID FieldType `json:"type_id"`
}

func (p FieldValueRequest) Check() bool { return p.Name != "" }

// FieldTypeDescriptor is the nested field definition in a value record.
type FieldTypeDescriptor struct {
	ID     int       `json:"id"`
	Name   string    `json:"name"`
	TypeID FieldType `json:"type_id"`
}

// FieldValueRecord is one element of the custom-fields response.
type FieldValueRecord struct {
	ID             int                 `json:"id"`
	FieldType      FieldTypeDescriptor `json:"field_type"`
	Value          TextValue           `json:"value"`
	TargetObjectID int                 `json:"target_object_id"`
}

func (p FieldValueRecord) Check() bool { return p.ID != 0 }

// Flatten lifts the nested field type into a FieldValue.
func (p FieldValueRecord) Flatten() FieldValue {
	return FieldValue{
		ID:             p.ID,
		Name:           p.FieldType.Name,
		TypeID:         p.FieldType.TypeID,
		TargetObjectID: p.TargetObjectID,
		Value:          string(p.Value),
	}
}

// FieldValue is the flattened value of a user-defined field.
type FieldValue struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	TypeID         FieldType `json:"type_id"`
	TargetObjectID int       `json:"target_object_id"`
	Value          string    `json:"value"`
}

func (v FieldValue) Check() bool { return v.ID != 0 }

func (v FieldValue) String() string {
	return fmt.Sprintf("%d::%s::%s::%d", v.ID, v.Name, v.Value, int(v.TypeID))
}
