package sift

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// redactedValue replaces field values hidden by Redact.
const redactedValue = "***"

// Compose chains modifiers left to right. Each modifier receives the
// output of the previous one; all receive the same untouched original.
func Compose(fns ...ModifyFunc) ModifyFunc {
	return func(projected, original Record) Record {
		out := projected
		for _, fn := range fns {
			out = fn(out, original)
		}
		return out
	}
}

// Redact replaces the named fields with "***". Fields absent from the
// projection are left absent.
func Redact(fields ...string) ModifyFunc {
	return func(projected, _ Record) Record {
		for _, f := range fields {
			if _, ok := projected[f]; ok {
				projected[f] = redactedValue
			}
		}
		return projected
	}
}

// Rename moves a field to a new key, overwriting any existing value at
// the target key. A no-op when the source field is absent.
func Rename(from, to string) ModifyFunc {
	return func(projected, _ Record) Record {
		if v, ok := projected[from]; ok {
			delete(projected, from)
			projected[to] = v
		}
		return projected
	}
}

// Tokenize replaces the named fields with a deterministic pseudonym: the
// BLAKE2b-256 hex digest of the value's string form. The same input
// value always yields the same token, so tokenized fields stay usable
// as join keys across views.
func Tokenize(fields ...string) ModifyFunc {
	return func(projected, _ Record) Record {
		for _, f := range fields {
			if v, ok := projected[f]; ok {
				sum := blake2b.Sum256([]byte(fmt.Sprint(v)))
				projected[f] = hex.EncodeToString(sum[:])
			}
		}
		return projected
	}
}

// MaskEmail masks email-shaped string values in the named fields,
// keeping the first character of the local part and the full domain:
// alice@example.com becomes a***@example.com. Values without an @ are
// masked entirely; non-string values are left untouched.
func MaskEmail(fields ...string) ModifyFunc {
	return func(projected, _ Record) Record {
		for _, f := range fields {
			v, ok := projected[f].(string)
			if !ok {
				continue
			}
			projected[f] = maskEmail(v)
		}
		return projected
	}
}

func maskEmail(value string) string {
	atIdx := strings.LastIndex(value, "@")
	if atIdx < 1 {
		return strings.Repeat("*", len(value))
	}
	return string(value[0]) + "***" + value[atIdx:]
}
