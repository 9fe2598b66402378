package debugui

import "reflect"

// FieldKind selects how the resource inspector draws a field.
type FieldKind uint8

const (
	FieldScalar FieldKind = iota
	FieldStruct
	// FieldFlags is an array or slice of bool, such as the rows flagged for
	// clearing.
	FieldFlags
	// FieldMatrix is an array of arrays, such as the grid's cells.
	FieldMatrix
	// FieldList is any other array or slice: piece cells, queued intents.
	FieldList
)

// FieldInfo describes one exported struct field for the inspector.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
	Kind      FieldKind
	// Dims holds array lengths, outermost first. It is nil for slices.
	Dims []int
}

// ReflectionCache memoizes the exported fields of resource types. It is used
// from the render loop only.
type ReflectionCache struct {
	fields map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{fields: make(map[reflect.Type][]FieldInfo)}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if cached, ok := rc.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Pointer
			if isPointer {
				fieldType = fieldType.Elem()
			}

			kind, dims := classify(fieldType)
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
				Kind:      kind,
				Dims:      dims,
			})
		}
	}

	rc.fields[t] = fields
	return fields
}

func classify(t reflect.Type) (FieldKind, []int) {
	switch t.Kind() {
	case reflect.Struct:
		return FieldStruct, nil
	case reflect.Array, reflect.Slice:
	default:
		return FieldScalar, nil
	}

	var dims []int
	if t.Kind() == reflect.Array {
		dims = []int{t.Len()}
	}

	elem := t.Elem()
	switch {
	case elem.Kind() == reflect.Bool:
		return FieldFlags, dims
	case t.Kind() == reflect.Array && elem.Kind() == reflect.Array:
		return FieldMatrix, append(dims, elem.Len())
	default:
		return FieldList, dims
	}
}
