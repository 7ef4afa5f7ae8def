package sift

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew_BuiltinDefault(t *testing.T) {
	reg := New()

	if reg.Default() != DefaultName {
		t.Errorf("Default() = %q, want %q", reg.Default(), DefaultName)
	}
	if got := reg.Names(); !reflect.DeepEqual(got, []string{DefaultName}) {
		t.Errorf("Names() = %v, want [%s]", got, DefaultName)
	}
}

func TestAdd(t *testing.T) {
	reg := New()

	if err := reg.Add("public", PickList{"id", "name"}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if got := reg.Names(); !reflect.DeepEqual(got, []string{DefaultName, "public"}) {
		t.Errorf("Names() = %v", got)
	}
	if reg.Default() != DefaultName {
		t.Error("Add() should not change the current default")
	}
}

func TestAdd_LastWriteWins(t *testing.T) {
	reg := New()

	if err := reg.Add("v", PickList{"a"}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := reg.Add("v", PickList{"b"}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	out, err := reg.SerializeOne(Record{"a": 1, "b": 2}, ByName("v"))
	if err != nil {
		t.Fatalf("SerializeOne() error: %v", err)
	}
	if !reflect.DeepEqual(out, Record{"b": 2}) {
		t.Errorf("SerializeOne() = %v, want later registration to win", out)
	}
}

func TestAdd_InvalidParameters(t *testing.T) {
	tests := []struct {
		name     string
		viewName string
		spec     Spec
	}{
		{"empty name", "", PickList{"a"}},
		{"nil spec", "x", nil},
		{"typed nil FieldSpec", "x", (*FieldSpec)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := New()
			err := reg.Add(tt.viewName, tt.spec)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Add() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestSetDefault(t *testing.T) {
	reg := New()
	reg.Add("public", PickList{"id"})

	if err := reg.SetDefault("public"); err != nil {
		t.Fatalf("SetDefault() error: %v", err)
	}
	if reg.Default() != "public" {
		t.Errorf("Default() = %q, want %q", reg.Default(), "public")
	}
}

func TestSetDefault_UnknownNameIsNoOp(t *testing.T) {
	reg := New()

	if err := reg.SetDefault("nonexistent"); err != nil {
		t.Fatalf("SetDefault() error: %v", err)
	}
	if reg.Default() != DefaultName {
		t.Errorf("Default() = %q, unknown name should not repoint", reg.Default())
	}
}

func TestSetDefault_EmptyName(t *testing.T) {
	reg := New()

	err := reg.SetDefault("")
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("SetDefault(\"\") error = %v, want ErrInvalidParameter", err)
	}
}

func TestRemove(t *testing.T) {
	reg := New()
	reg.Add("public", PickList{"id"})

	if err := reg.Remove("public"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if got := reg.Names(); !reflect.DeepEqual(got, []string{DefaultName}) {
		t.Errorf("Names() = %v after Remove()", got)
	}
}

func TestRemove_UnknownNameIsNoOp(t *testing.T) {
	reg := New()

	if err := reg.Remove("nonexistent"); err != nil {
		t.Errorf("Remove() error: %v", err)
	}
}

func TestRemove_EmptyName(t *testing.T) {
	reg := New()

	err := reg.Remove("")
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Remove(\"\") error = %v, want ErrInvalidParameter", err)
	}
}

func TestRemove_CurrentDefaultFallsBack(t *testing.T) {
	reg := New()
	reg.Add("public", PickList{"id"})
	reg.SetDefault("public")

	if err := reg.Remove("public"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if reg.Default() != DefaultName {
		t.Errorf("Default() = %q, want fallback to %q", reg.Default(), DefaultName)
	}
}

// Removing "_default" is allowed and leaves the default name dangling;
// default projections then fail at spec resolution.
func TestRemove_BuiltinDefaultLeavesDanglingName(t *testing.T) {
	reg := New()

	if err := reg.Remove(DefaultName); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if reg.Default() != DefaultName {
		t.Errorf("Default() = %q, want dangling %q", reg.Default(), DefaultName)
	}

	_, err := reg.SerializeOne(Record{"a": 1}, nil)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("SerializeOne() error = %v, want ErrInvalidParameter", err)
	}
}

func TestNames_Sorted(t *testing.T) {
	reg := New()
	reg.Add("zebra", PickList{"a"})
	reg.Add("alpha", PickList{"a"})

	want := []string{DefaultName, "alpha", "zebra"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
