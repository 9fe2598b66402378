package debugui

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/sim"
)

// ResourceInspector lists every singleton in a Storage and edits its scalar
// fields in place.
type ResourceInspector struct {
	cache *ReflectionCache
}

func NewResourceInspector() *ResourceInspector {
	return &ResourceInspector{cache: NewReflectionCache()}
}

func (ri *ResourceInspector) Render(storage *sim.Storage) {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 360), imgui.CondOnce)

	if !imgui.BeginV("Resources", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for t, value := range storage.Singletons() {
		if imgui.TreeNodeStr(t.String()) {
			ri.renderValue(reflect.ValueOf(value).Elem())
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ri *ResourceInspector) renderValue(val reflect.Value) {
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", val.Interface()))
		return
	}

	for _, field := range ri.cache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		ri.renderField(field, fieldVal)
	}
}

func (ri *ResourceInspector) renderField(field FieldInfo, val reflect.Value) {
	name := field.Name
	label := fmt.Sprintf("##%s%p", name, val.Addr().UnsafePointer())

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(label, &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(label, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name+label, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			ri.renderValue(val)
			imgui.TreePop()
		}

	case reflect.Array, reflect.Slice:
		ri.renderCollection(field, val)

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func (ri *ResourceInspector) renderCollection(field FieldInfo, val reflect.Value) {
	switch field.Kind {
	case FieldFlags:
		imgui.Text(fmt.Sprintf("%s: %s", field.Name, flagIndices(val)))

	case FieldMatrix:
		label := fmt.Sprintf("%s [%dx%d]", field.Name, field.Dims[0], field.Dims[1])
		if imgui.TreeNodeStr(label) {
			for _, line := range matrixLines(val) {
				imgui.Text(line)
			}
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %s", field.Name, listItems(val)))
	}
}

// flagIndices lists the indices of the set entries of a bool array or slice.
func flagIndices(val reflect.Value) string {
	var set []string
	for i := range val.Len() {
		if val.Index(i).Bool() {
			set = append(set, strconv.Itoa(i))
		}
	}
	if len(set) == 0 {
		return "none"
	}
	return strings.Join(set, " ")
}

// matrixLines draws an array of arrays one row per line, '#' for non-zero
// elements and '.' for zero ones, prefixed with the row index.
func matrixLines(val reflect.Value) []string {
	lines := make([]string, val.Len())
	for y := range val.Len() {
		row := val.Index(y)
		var sb strings.Builder
		fmt.Fprintf(&sb, "%2d ", y)
		for x := range row.Len() {
			if row.Index(x).IsZero() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// listItems formats the elements of an array or slice with %v, so types with
// a String method print by name.
func listItems(val reflect.Value) string {
	if val.Len() == 0 {
		return "[]"
	}
	items := make([]string, val.Len())
	for i := range val.Len() {
		items[i] = fmt.Sprintf("%v", val.Index(i).Interface())
	}
	return "[" + strings.Join(items, " ") + "]"
}
