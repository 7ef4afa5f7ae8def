package sift

// Spec describes one named view: which fields of a record survive
// projection and how they are transformed. Exactly two shapes exist,
// PickList and FieldSpec.
type Spec interface {
	isSpec()
}

// PickList keeps exactly the named fields. Keys missing from the record
// are simply absent from the result. A PickList never consults
// include/exclude/modify semantics.
type PickList []string

func (PickList) isSpec() {}

// FieldSpec projects a record through up to three stages, each optional:
//
//  1. Include restricts the original record to the named keys.
//  2. Exclude deletes the named keys from the running result. When
//     Include is also set, Exclude wins on overlap.
//  3. Modify replaces the running result wholesale, receiving the
//     projection so far and the untouched original.
//
// The zero FieldSpec is the identity projection: a shallow copy of the
// record with every field intact.
type FieldSpec struct {
	Include []string
	Exclude []string
	Modify  ModifyFunc
}

func (*FieldSpec) isSpec() {}

// Selector names the spec a projection should use: either a registered
// view by name, or an inline spec. A nil Selector means the registry's
// current default view.
type Selector interface {
	isSelector()
}

type byName string

func (byName) isSelector() {}

type inline struct{ spec Spec }

func (inline) isSelector() {}

// ByName selects a registered view by its name.
func ByName(name string) Selector {
	return byName(name)
}

// Inline selects an unregistered spec supplied at the call site.
func Inline(spec Spec) Selector {
	return inline{spec: spec}
}
