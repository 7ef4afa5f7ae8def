package sift

import (
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the tags sift reads from struct fields with sentinel
	sentinel.Tag("json")
	sentinel.Tag("view")
}

// FromStruct converts a struct value into a Record. Keys follow the json
// tag name when present, the Go field name otherwise; fields tagged
// json:"-" are skipped. Values are carried by assignment, so nested
// structs, slices, and maps share storage with the input.
//
// T must be a struct type.
func FromStruct[T any](v T) Record {
	meta := sentinel.Scan[T]()
	rv := reflect.ValueOf(v)

	rec := make(Record, len(meta.Fields))
	for _, field := range meta.Fields {
		key := fieldKey(field.Name, field.Tags)
		if key == "-" {
			continue
		}
		rec[key] = rv.FieldByIndex(field.Index).Interface()
	}
	return rec
}

// ViewSpec builds a PickList for the named view from `view` struct tags.
// A field tagged view:"public,admin" belongs to the "public" and "admin"
// views; untagged fields belong to no view. Keys follow the same json
// tag naming as FromStruct, so the resulting spec projects records
// produced by it.
func ViewSpec[T any](view string) PickList {
	meta := sentinel.Scan[T]()

	var list PickList
	for _, field := range meta.Fields {
		tag, ok := field.Tags["view"]
		if !ok {
			continue
		}
		for _, name := range strings.Split(tag, ",") {
			if strings.TrimSpace(name) == view {
				list = append(list, fieldKey(field.Name, field.Tags))
				break
			}
		}
	}
	return list
}

// fieldKey resolves the record key for a struct field: the json tag name
// when present, the field name otherwise.
func fieldKey(fieldName string, tags map[string]string) string {
	tag, ok := tags["json"]
	if !ok || tag == "" {
		return fieldName
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return fieldName
	}
	return name
}
