package txtexport_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docbiz/internal/domain"
	"docbiz/internal/txtexport"
)

func TestRender_FullDocument(t *testing.T) {
	docs := []domain.ProcessedDocument{
		{
			ID:        "doc-1",
			FileName:  "contrato.pdf",
			FileType:  "application/pdf",
			Timestamp: "2026-08-28T13:45:30Z",
			Clientes: []domain.ClientData{
				{ID: "c-1", NomeCompleto: "João da Silva", CPFCNPJ: "123.456.789-00", TipoCliente: "Comprador"},
			},
			Empresas: []domain.CompanyData{
				{ID: "e-1", RazaoSocial: "ACME LTDA", CNPJ: "11.222.333/0001-44"},
			},
			Imoveis: []domain.PropertyData{
				{ID: "i-1", EnderecoCompleto: "Rua das Flores, 100"},
			},
		},
	}

	out := txtexport.Render(docs)

	assert.Contains(t, out, "Documento: contrato.pdf\n")
	assert.Contains(t, out, "Tipo: application/pdf\n")
	assert.Contains(t, out, "Processado em: 28/08/2026, 13:45:30\n")

	assert.Contains(t, out, "CLIENTES (Pessoas Físicas):\n")
	assert.Contains(t, out, "ID Cliente: c-1\n")
	assert.Contains(t, out, "  Nome Completo: João da Silva\n")
	assert.Contains(t, out, "  Tipo de Cliente: Comprador\n")

	assert.Contains(t, out, "EMPRESAS (Pessoas Jurídicas):\n")
	assert.Contains(t, out, "ID Empresa: e-1\n")
	assert.Contains(t, out, "  Razão Social: ACME LTDA\n")

	assert.Contains(t, out, "IMÓVEIS:\n")
	assert.Contains(t, out, "ID Imóvel: i-1\n")
	assert.Contains(t, out, "  Endereço Completo: Rua das Flores, 100\n")
}

func TestRender_EmptyFieldsRenderAsDash(t *testing.T) {
	docs := []domain.ProcessedDocument{
		{
			FileName:  "minimo.txt",
			FileType:  "text/plain",
			Timestamp: "2026-08-28T13:45:30Z",
			Clientes:  []domain.ClientData{{ID: "c-1", NomeCompleto: "Maria"}},
		},
	}

	out := txtexport.Render(docs)
	assert.Contains(t, out, "  Nome Completo: Maria\n")
	assert.Contains(t, out, "  CPF/CNPJ: -\n")
	assert.Contains(t, out, "  RG: -\n")
	assert.Contains(t, out, "  Profissão: -\n")
}

func TestRender_EmptySectionsCarryPlaceholders(t *testing.T) {
	docs := []domain.ProcessedDocument{
		{FileName: "vazio.txt", FileType: "text/plain", Timestamp: "2026-08-28T13:45:30Z"},
	}

	out := txtexport.Render(docs)
	assert.Contains(t, out, "(Nenhum cliente encontrado/adicionado)")
	assert.Contains(t, out, "(Nenhuma empresa encontrada/adicionada)")
	assert.Contains(t, out, "(Nenhum imóvel encontrado/adicionado)")
}

func TestRender_DocumentSeparator(t *testing.T) {
	docs := []domain.ProcessedDocument{
		{FileName: "a.txt", FileType: "text/plain", Timestamp: "2026-08-28T13:45:30Z"},
		{FileName: "b.txt", FileType: "text/plain", Timestamp: "2026-08-28T13:50:00Z"},
	}

	out := txtexport.Render(docs)
	assert.Equal(t, 1, strings.Count(out, "====================================\n===================================="))
	assert.Less(t, strings.Index(out, "Documento: a.txt"), strings.Index(out, "Documento: b.txt"))
}

func TestRender_UnparseableTimestampPassesThrough(t *testing.T) {
	docs := []domain.ProcessedDocument{
		{FileName: "x.txt", FileType: "text/plain", Timestamp: "ontem"},
	}
	assert.Contains(t, txtexport.Render(docs), "Processado em: ontem\n")
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "docbiz_export_2026-08-28.txt", txtexport.Filename(now))
}
