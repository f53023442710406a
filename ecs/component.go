package ecs

import "reflect"

// ComponentID is a unique identifier for a registered component layout.
// Ids are assigned sequentially at registration.
type ComponentID uint32

// componentInfo records the field layout of one registered component type.
// Fields keep their registration order and are addressed by index.
type componentInfo struct {
	fieldSizes []int
}

// ComponentRegistry manages component layout registration for a World.
// Each World owns its own registry, so multiple independent worlds can
// coexist without interference.
type ComponentRegistry struct {
	infos []componentInfo
}

// Register records a component layout described by its ordered field sizes
// in bytes and returns the new component id. Duplicate layouts are allowed
// and produce distinct ids. Panics if no field sizes are given.
func (r *ComponentRegistry) Register(fieldSizes ...int) ComponentID {
	if len(fieldSizes) == 0 {
		panic("ecs: component must have at least one field")
	}
	sizes := make([]int, len(fieldSizes))
	for i, s := range fieldSizes {
		if s <= 0 {
			panic("ecs: field size must be positive")
		}
		sizes[i] = s
	}
	r.infos = append(r.infos, componentInfo{fieldSizes: sizes})
	return ComponentID(len(r.infos) - 1)
}

// FieldCount returns the number of fields registered for the component.
func (r *ComponentRegistry) FieldCount(id ComponentID) int {
	return len(r.infos[id].fieldSizes)
}

// FieldSize returns the byte size of the given field of the component.
func (r *ComponentRegistry) FieldSize(id ComponentID, field int) int {
	return r.infos[id].fieldSizes[field]
}

func (r *ComponentRegistry) info(id ComponentID) *componentInfo {
	return &r.infos[id]
}

// RegisterComponentOf registers a component whose field layout is derived
// from the struct type T: one field per struct field, sized by the field's
// type. A non-struct T registers a single field of T's size.
func RegisterComponentOf[T any](w *World) ComponentID {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() != reflect.Struct {
		return w.RegisterComponent(int(t.Size()))
	}
	sizes := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sizes = append(sizes, int(t.Field(i).Type.Size()))
	}
	return w.RegisterComponent(sizes...)
}
