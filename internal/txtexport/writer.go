// Package txtexport renders the document collection as the deterministic,
// human-readable plain-text report offered for download.
package txtexport

import (
	"fmt"
	"strings"
	"time"

	"docbiz/internal/domain"
)

const (
	entitySeparator   = "--------------------\n"
	documentSeparator = "\n====================================\n====================================\n\n"
)

// Render produces the full export text for docs, in the given order. Empty
// fields render as "-"; empty sections carry an explanatory placeholder line.
func Render(docs []domain.ProcessedDocument) string {
	parts := make([]string, len(docs))
	for i := range docs {
		parts[i] = renderDocument(&docs[i])
	}
	return strings.Join(parts, documentSeparator)
}

// Filename returns the dated download file name for an export generated now.
func Filename(now time.Time) string {
	return fmt.Sprintf("docbiz_export_%s.txt", now.Format("2006-01-02"))
}

func renderDocument(doc *domain.ProcessedDocument) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Documento: %s\n", doc.FileName)
	fmt.Fprintf(&b, "Tipo: %s\n", doc.FileType)
	fmt.Fprintf(&b, "Processado em: %s\n\n", localizeTimestamp(doc.Timestamp))

	b.WriteString("CLIENTES (Pessoas Físicas):\n")
	b.WriteString(entitySeparator)
	if len(doc.Clientes) > 0 {
		for _, c := range doc.Clientes {
			fmt.Fprintf(&b, "ID Cliente: %s\n", c.ID)
			writeField(&b, "Nome Completo", c.NomeCompleto)
			writeField(&b, "CPF/CNPJ", c.CPFCNPJ)
			writeField(&b, "RG", c.RG)
			writeField(&b, "Endereço", c.Endereco)
			writeField(&b, "Telefone", c.Telefone)
			writeField(&b, "E-mail", c.Email)
			writeField(&b, "Estado Civil", c.EstadoCivil)
			writeField(&b, "Profissão", c.Profissao)
			writeField(&b, "Tipo de Cliente", c.TipoCliente)
			b.WriteString(entitySeparator)
		}
	} else {
		b.WriteString("(Nenhum cliente encontrado/adicionado)\n")
		b.WriteString(entitySeparator)
	}

	b.WriteString("\nEMPRESAS (Pessoas Jurídicas):\n")
	b.WriteString(entitySeparator)
	if len(doc.Empresas) > 0 {
		for _, e := range doc.Empresas {
			fmt.Fprintf(&b, "ID Empresa: %s\n", e.ID)
			writeField(&b, "Razão Social", e.RazaoSocial)
			writeField(&b, "Nome Fantasia", e.NomeFantasia)
			writeField(&b, "CNPJ", e.CNPJ)
			writeField(&b, "Inscrição Estadual", e.InscricaoEstadual)
			writeField(&b, "Inscrição Municipal", e.InscricaoMunicipal)
			writeField(&b, "Data de Abertura", e.DataAbertura)
			writeField(&b, "Endereço", e.EnderecoCompleto)
			writeField(&b, "Telefone", e.Telefone)
			writeField(&b, "E-mail", e.Email)
			writeField(&b, "Ramo de Atividade", e.RamoAtividade)
			writeField(&b, "CNAE Principal", e.CNAEPrincipal)
			writeField(&b, "Tipo de Empresa", e.TipoEmpresa)
			writeField(&b, "Capital Social", e.CapitalSocial)
			writeField(&b, "Sócios/Admin", e.Socios)
			b.WriteString(entitySeparator)
		}
	} else {
		b.WriteString("(Nenhuma empresa encontrada/adicionada)\n")
		b.WriteString(entitySeparator)
	}

	b.WriteString("\nIMÓVEIS:\n")
	b.WriteString(entitySeparator)
	if len(doc.Imoveis) > 0 {
		for _, p := range doc.Imoveis {
			fmt.Fprintf(&b, "ID Imóvel: %s\n", p.ID)
			writeField(&b, "Endereço Completo", p.EnderecoCompleto)
			writeField(&b, "Tipo de Imóvel", p.TipoImovel)
			writeField(&b, "Área Total", p.AreaTotal)
			writeField(&b, "Área Construída", p.AreaConstruida)
			writeField(&b, "Nº Matrícula", p.NumeroMatricula)
			writeField(&b, "IPTU", p.IPTU)
			writeField(&b, "Valor Venda/Locação", p.ValorVendaLocacao)
			writeField(&b, "Características", p.Caracteristicas)
			b.WriteString(entitySeparator)
		}
	} else {
		b.WriteString("(Nenhum imóvel encontrado/adicionado)\n")
		b.WriteString(entitySeparator)
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(b, "  %s: %s\n", label, value)
}

// localizeTimestamp renders an RFC 3339 timestamp in the pt-BR day-first
// convention. Unparseable timestamps pass through unchanged.
func localizeTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("02/01/2006, 15:04:05")
}
