package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the expected model output: an object whose three
// top-level arrays hold entities with nullable string fields. The prompt tells
// the model to use null for missing data, so a section may be null or absent
// as well as empty. Unknown extra fields are tolerated; wrong-typed known
// fields are not.
func BuildExtractionJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"clientes": entityArray([]string{
				"nomeCompleto", "cpfCnpj", "rg", "endereco", "telefone",
				"email", "estadoCivil", "profissao", "tipoCliente",
			}),
			"empresas": entityArray([]string{
				"razaoSocial", "nomeFantasia", "cnpj", "inscricaoEstadual",
				"inscricaoMunicipal", "dataAbertura", "enderecoCompleto",
				"telefone", "email", "ramoAtividade", "cnaePrincipal",
				"tipoEmpresa", "capitalSocial", "socios",
			}),
			"imoveis": entityArray([]string{
				"enderecoCompleto", "tipoImovel", "areaTotal", "areaConstruida",
				"numeroMatricula", "iptu", "valorVendaLocacao", "caracteristicas",
			}),
		},
	}
}

func entityArray(fields []string) map[string]any {
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		props[f] = map[string]any{"type": []string{"string", "null"}}
	}
	return map[string]any{
		"type": []string{"array", "null"},
		"items": map[string]any{
			"type":       "object",
			"properties": props,
		},
	}
}

// ValidateJSONAgainstSchema validates data against schemaMap.
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
