// Package servers holds the HTTP contract of the service: the embedded OpenAPI document,
// the request and response models, and the echo wrapper that binds parameters before
// calling a ServerInterface. types.go and server.go are generated from openapi.yaml;
// edit the document and run go generate.
package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config types.cfg.yaml openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config server.cfg.yaml openapi.yaml

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var spec []byte

// RawSpec returns the OpenAPI document as served at /openapi.yaml.
func RawSpec() []byte {
	return spec
}

// GetSwagger parses the embedded OpenAPI document. Every call returns a fresh copy, so
// callers may mutate it.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("error loading spec: %w", err)
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating spec: %w", err)
	}
	return swagger, nil
}
