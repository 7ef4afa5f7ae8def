// Package sift provides a named-view registry for projecting record fields.
//
// A Registry maps view names to serializer specs. A spec describes which
// fields of a record survive projection and how they are transformed:
//
//   - PickList: a flat list of field names to keep
//   - FieldSpec: optional Include/Exclude key sets plus an optional Modify
//     function that rewrites the projection with access to the original
//
// # Basic Usage
//
//	reg := sift.New()
//	reg.Add("public", sift.PickList{"id", "name"})
//	reg.Add("admin", &sift.FieldSpec{Exclude: []string{"password"}})
//	reg.SetDefault("public")
//
//	out, _ := reg.SerializeOne(record, nil)                 // default view
//	out, _ = reg.SerializeOne(record, sift.ByName("admin")) // named view
//	out, _ = reg.SerializeOne(record, sift.Inline(sift.PickList{"id"}))
//
// # Views
//
// Every registry carries a built-in "_default" view that copies the record
// unchanged. The default view name is used whenever a nil selector is
// passed; it can be repointed with SetDefault.
//
// # Modify
//
// FieldSpec.Modify receives the projection built so far and the untouched
// original record, and returns the final record wholesale. Built-in
// modifiers cover common view transforms:
//
//	reg.Add("public", &sift.FieldSpec{
//	    Exclude: []string{"password"},
//	    Modify:  sift.Compose(sift.MaskEmail("email"), sift.Tokenize("user_id")),
//	})
//
// # Struct-Driven Views
//
// Views can be declared on struct fields via the "view" tag and extracted
// with ViewSpec:
//
//	type User struct {
//	    ID    string `json:"id" view:"public,admin"`
//	    Email string `json:"email" view:"admin"`
//	}
//
//	reg.Add("public", sift.ViewSpec[User]("public"))
//	rec := sift.FromStruct(user)
//
// # Rendering
//
// A projected view can be rendered to bytes through any Codec. The json,
// yaml, and msgpack subpackages provide codec implementations:
//
//	data, _ := reg.MarshalOne(json.New(), record, sift.ByName("public"))
//
// # Batch Projection
//
// SerializeMany projects a slice of entities that carry their own
// serialize capability. Registry.Bind wraps a plain Record into such an
// entity.
package sift

// Record is a single document instance as a flat key-value structure.
// Projection operates on the top-level keys only; nested values pass
// through untouched.
type Record = map[string]any

// ModifyFunc rewrites a projection. It receives the projection built so
// far and the untouched original record, and returns the final record
// as a full replacement. Implementations must not mutate original.
type ModifyFunc func(projected, original Record) Record

// Serializable is the capability an entity must carry to participate in
// batch projection. Entities lacking it are silently dropped by
// SerializeMany.
type Serializable interface {
	// Serialize projects the entity's record through the given selector.
	// A nil selector means the owning registry's current default view.
	Serialize(sel Selector) (Record, error)
}

// Codec provides content-type aware marshaling for rendering projected
// views to bytes.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
