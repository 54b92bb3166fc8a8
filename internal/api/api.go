// Package api holds the OpenAPI description of the HTTP interface.
//
// The document is embedded into the binary, validated with kin-openapi on load
// and published to swag so the /swagger UI can serve it.
package api

import (
	"context"
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register publishes the document under swag.Name. swag panics on duplicate
// names, so only the first call does any work.
func Register(ctx context.Context) error {
	registerOnce.Do(func() {
		doc, err := Load(ctx)
		if err != nil {
			registerErr = err
			return
		}

		raw, err := doc.MarshalJSON()
		if err != nil {
			registerErr = err
			return
		}

		swag.Register(swag.Name, swaggerDoc(raw))
	})

	return registerErr
}

// swaggerDoc implements swag.Swagger.
type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}
