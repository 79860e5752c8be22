package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docbiz/internal/extractor"
)

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json untouched", `{"clientes":[]}`, `{"clientes":[]}`},
		{"json fence", "```json\n{\"clientes\":[]}\n```", `{"clientes":[]}`},
		{"plain fence", "```\n{\"clientes\":[]}\n```", `{"clientes":[]}`},
		{"fence with surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
		{"multiline body", "```json\n{\n  \"clientes\": []\n}\n```", "{\n  \"clientes\": []\n}"},
		{"unterminated fence untouched", "```json\n{}", "```json\n{}"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.StripFence(tt.in))
		})
	}
}
