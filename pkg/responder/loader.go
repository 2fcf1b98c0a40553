package responder

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

//go:embed catalog.schema.json
var catalogSchemaJSON []byte

var (
	catalogSchema     *jsonschema.Schema
	catalogSchemaErr  error
	catalogSchemaOnce sync.Once
)

// catalogFile is the on-disk form of a Catalog.
type catalogFile struct {
	Primary   string                        `json:"primary,omitempty"`
	Languages []Language                    `json:"languages,omitempty"`
	Notices   map[string]string             `json:"notices,omitempty"`
	Responses map[string]map[Topic]Response `json:"responses"`
}

// LoadCatalogFile reads a JSON catalog from path. Omitted languages and
// notices default to the built-in ones.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog validates data against the catalog schema and builds a Catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	schema, err := loadCatalogSchema()
	if err != nil {
		return nil, err
	}
	result := schema.ValidateJSON(data)
	if !result.IsValid() {
		return nil, fmt.Errorf("catalog schema validation failed: %v", result.Errors)
	}

	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if f.Primary == "" {
		f.Primary = DefaultLanguage
	}
	if len(f.Languages) == 0 {
		f.Languages = SupportedLanguages
	}
	if f.Notices == nil {
		f.Notices = untranslatedNotices
	}
	return NewCatalog(f.Primary, f.Languages, f.Responses, f.Notices)
}

func loadCatalogSchema() (*jsonschema.Schema, error) {
	catalogSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		catalogSchema, catalogSchemaErr = compiler.Compile(catalogSchemaJSON)
		if catalogSchemaErr != nil {
			catalogSchemaErr = fmt.Errorf("compile catalog schema: %w", catalogSchemaErr)
		}
	})
	return catalogSchema, catalogSchemaErr
}
