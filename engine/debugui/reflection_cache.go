package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported struct field shown by the inspector.
type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

// ReflectionCache remembers the exported fields of each struct type the
// inspector has walked, so a frame does not re-scan the same types.
type ReflectionCache struct {
	mu     sync.Mutex
	fields map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{fields: map[reflect.Type][]FieldInfo{}}
}

// Fields lists the exported fields of t in declaration order. Non-struct
// types have none.
func (rc *ReflectionCache) Fields(t reflect.Type) []FieldInfo {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if fields, ok := rc.fields[t]; ok {
		return fields
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			if f := t.Field(i); f.IsExported() {
				fields = append(fields, FieldInfo{
					Name:      f.Name,
					Index:     i,
					IsPointer: f.Type.Kind() == reflect.Pointer,
				})
			}
		}
	}
	rc.fields[t] = fields
	return fields
}

var fieldCache = NewReflectionCache()
