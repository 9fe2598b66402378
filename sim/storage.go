package sim

import (
	"iter"
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value // *T backing the singleton
	dataPtr unsafe.Pointer
}

// Storage holds the typed singleton resources shared by a Scheduler's systems.
// Each Go type has at most one value in a Storage.
type Storage struct {
	singletons *intmap.Map[int, *singletonEntry]
	types      []reflect.Type
}

// StorageStats summarizes the contents of a Storage.
type StorageStats struct {
	SingletonCount int
	SingletonTypes []string
}

// NewStorage creates an empty Storage.
func NewStorage() *Storage {
	return &Storage{
		singletons: intmap.New[int, *singletonEntry](32),
	}
}

// AddSingleton stores value as the singleton of its type. If a singleton of
// that type already exists it is overwritten in place, so pointers obtained
// earlier through Singleton or ReadSingleton keep observing the new value.
func (s *Storage) AddSingleton(value any) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		panic("sim: cannot add a nil singleton")
	}
	if valueType.Kind() == reflect.Ptr {
		panic("sim: singletons are stored by value, got pointer type " + valueType.String())
	}

	if entry := s.getSingletonEntry(valueType); entry != nil {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(valueType)
	ptr.Elem().Set(reflect.ValueOf(value))

	s.singletons.Put(typeId(valueType), &singletonEntry{
		typ:     valueType,
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	})
	s.types = append(s.types, valueType)
}

// ReadSingleton points *target at the stored singleton of type T, where target
// is a **T. It returns false and leaves target untouched if none exists.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("sim: ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(rv.Elem().Type().Elem())
	if entry == nil {
		return false
	}

	rv.Elem().Set(entry.value)
	return true
}

// Singletons iterates the stored singletons in insertion order, yielding each
// type with a pointer to its live value.
func (s *Storage) Singletons() iter.Seq2[reflect.Type, any] {
	return func(yield func(reflect.Type, any) bool) {
		for _, t := range s.types {
			entry := s.getSingletonEntry(t)
			if entry == nil {
				continue
			}
			if !yield(t, entry.value.Interface()) {
				return
			}
		}
	}
}

// CollectStats reports how many singletons are stored and their type names.
func (s *Storage) CollectStats() StorageStats {
	names := make([]string, 0, len(s.types))
	for _, t := range s.types {
		names = append(names, t.String())
	}
	sort.Strings(names)

	return StorageStats{
		SingletonCount: s.singletons.Len(),
		SingletonTypes: names,
	}
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	entry, ok := s.singletons.Get(typeId(t))
	if !ok {
		return nil
	}
	return entry
}
