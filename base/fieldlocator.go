package base

import (
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync"
	"github.com/relex/gotils/logger"
)

// FieldLocator is a compiled dotted field path, e.g. "metadata.source", used to read, write or
// delete one field inside a Record
//
// The zero value locates nothing: Get always reports a missing field and Set / Delete are no-ops.
// Numeric-looking segments are plain map keys, not array indices.
type FieldLocator struct {
	path     string
	segments []string
}

var locatorCache = xsync.NewMapOf[FieldLocator]()

// NewFieldLocator compiles a dotted field path
func NewFieldLocator(path string) (FieldLocator, error) {
	if len(path) == 0 {
		return FieldLocator{}, fmt.Errorf("empty field path")
	}
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		if len(segment) == 0 {
			return FieldLocator{}, fmt.Errorf("empty segment %d in field path '%s'", i, path)
		}
	}
	return FieldLocator{path: path, segments: segments}, nil
}

// MustNewFieldLocator compiles a dotted field path or panics
func MustNewFieldLocator(path string) FieldLocator {
	locator, err := NewFieldLocator(path)
	if err != nil {
		logger.Panic("failed to create field locator: ", err)
	}
	return locator
}

// LocateField compiles a dotted field path through a process-wide cache
//
// The cache is shared by concurrent batches; locators are immutable once stored
func LocateField(path string) (FieldLocator, error) {
	if cached, found := locatorCache.Load(path); found {
		return cached, nil
	}
	locator, err := NewFieldLocator(path)
	if err != nil {
		return FieldLocator{}, err
	}
	locatorCache.Store(path, locator)
	return locator, nil
}

// Name returns the original dotted path
func (locator FieldLocator) Name() string {
	return locator.path
}

// Get resolves the field value inside the record
//
// A missing or non-map intermediate yields (nil, false); Get never panics
func (locator FieldLocator) Get(record Record) (any, bool) {
	if len(locator.segments) == 0 || record == nil {
		return nil, false
	}
	current := map[string]any(record)
	for _, segment := range locator.segments[:len(locator.segments)-1] {
		child, found := current[segment]
		if !found {
			return nil, false
		}
		childMap, isMap := asMap(child)
		if !isMap {
			return nil, false
		}
		current = childMap
	}
	value, found := current[locator.segments[len(locator.segments)-1]]
	return value, found
}

// Set assigns the field value, creating intermediate maps as needed
//
// A non-map intermediate is replaced by a fresh map. The record is mutated in place.
func (locator FieldLocator) Set(record Record, value any) {
	if len(locator.segments) == 0 || record == nil {
		return
	}
	current := map[string]any(record)
	for _, segment := range locator.segments[:len(locator.segments)-1] {
		childMap, isMap := asMap(current[segment])
		if !isMap {
			childMap = make(map[string]any)
			current[segment] = childMap
		}
		current = childMap
	}
	current[locator.segments[len(locator.segments)-1]] = value
}

// Delete removes the field if its parent chain exists, and does nothing otherwise
func (locator FieldLocator) Delete(record Record) {
	if len(locator.segments) == 0 || record == nil {
		return
	}
	current := map[string]any(record)
	for _, segment := range locator.segments[:len(locator.segments)-1] {
		childMap, isMap := asMap(current[segment])
		if !isMap {
			return
		}
		current = childMap
	}
	delete(current, locator.segments[len(locator.segments)-1])
}

func asMap(value any) (map[string]any, bool) {
	switch typedValue := value.(type) {
	case map[string]any:
		return typedValue, true
	case Record:
		return typedValue, true
	default:
		return nil, false
	}
}
