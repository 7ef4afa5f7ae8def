package sift

// MarshalOne projects record through the selected view and renders the
// result with the given codec.
func (r *Registry) MarshalOne(c Codec, record Record, sel Selector) ([]byte, error) {
	out, err := r.SerializeOne(record, sel)
	if err != nil {
		return nil, err
	}

	data, err := c.Marshal(out)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// MarshalMany projects a batch of entities through the selected view and
// renders the collected results as a single document.
func (r *Registry) MarshalMany(c Codec, records []any, sel Selector) ([]byte, error) {
	out, err := r.SerializeMany(records, sel)
	if err != nil {
		return nil, err
	}

	data, err := c.Marshal(out)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// UnmarshalRecord decodes data into a Record with the given codec.
func UnmarshalRecord(c Codec, data []byte) (Record, error) {
	var rec Record
	if err := c.Unmarshal(data, &rec); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return rec, nil
}
