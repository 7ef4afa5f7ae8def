package sift

// Document binds a record to the registry that owns its views, giving
// the record its own serialize capability for batch projection.
type Document struct {
	registry *Registry
	fields   Record
}

// Bind wraps record into a Document backed by this registry.
func (r *Registry) Bind(record Record) *Document {
	return &Document{registry: r, fields: record}
}

// Fields returns the underlying record.
func (d *Document) Fields() Record {
	return d.fields
}

// Serialize projects the bound record through the owning registry.
func (d *Document) Serialize(sel Selector) (Record, error) {
	return d.registry.SerializeOne(d.fields, sel)
}
