package json

import "testing"

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestMarshal(t *testing.T) {
	c := New()

	data, err := c.Marshal(map[string]string{"id": "a"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `{"id":"a"}` {
		t.Errorf("Marshal() = %s", data)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v map[string]any
	if err := c.Unmarshal([]byte("not json"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
