package domain

// RawInput is an untyped JSON object as received from a client.
// It never reaches business logic directly: the validate package turns it into
// one of the typed *Input structs (or a Patch) first.
type RawInput map[string]any

// Has reports whether key is present with a non-null value.
func (in RawInput) Has(key string) bool {
	v, ok := in[key]
	return ok && v != nil
}
