// Package openapi embeds the API contract so the binary serves it
// regardless of the working directory.
package openapi

import _ "embed"

// Spec is the raw OpenAPI document served at /api/openapi.yaml.
//
//go:embed openapi.yaml
var Spec []byte
