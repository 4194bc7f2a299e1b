// Package schema defines the closed tagged-union shape model and structured
// Path type shared across the panel pipeline. Compilation from raw JSON
// Schema payloads lives in internal/jsonschema and is surfaced through
// pkg/nodedef so consumers never touch kin-openapi types directly.
package schema
