// Package xlsxexport renders the document collection as a spreadsheet with
// one sheet per entity kind, each row tagged with its source document.
package xlsxexport

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"docbiz/internal/domain"
)

var clientColumns = []string{
	"Documento", "ID", "Nome Completo", "CPF/CNPJ", "RG", "Endereço",
	"Telefone", "E-mail", "Estado Civil", "Profissão", "Tipo de Cliente",
}

var companyColumns = []string{
	"Documento", "ID", "Razão Social", "Nome Fantasia", "CNPJ",
	"Inscrição Estadual", "Inscrição Municipal", "Data de Abertura",
	"Endereço", "Telefone", "E-mail", "Ramo de Atividade", "CNAE Principal",
	"Tipo de Empresa", "Capital Social", "Sócios/Admin",
}

var propertyColumns = []string{
	"Documento", "ID", "Endereço Completo", "Tipo de Imóvel", "Área Total",
	"Área Construída", "Nº Matrícula", "IPTU", "Valor Venda/Locação",
	"Características",
}

// Build renders docs into a new workbook. The caller owns closing the file.
func Build(docs []domain.ProcessedDocument) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSheet(f, "Clientes", clientColumns, clientRows(docs)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Empresas", companyColumns, companyRows(docs)); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Imóveis", propertyColumns, propertyRows(docs)); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}
	return f, nil
}

// Filename returns the dated download file name for an export generated now.
func Filename(now time.Time) string {
	return fmt.Sprintf("docbiz_export_%s.xlsx", now.Format("2006-01-02"))
}

func writeSheet(f *excelize.File, name string, columns []string, rows [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %s: %w", name, err)
	}
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("writing header for %s: %w", name, err)
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d in %s: %w", i+2, name, err)
		}
		if err := f.SetSheetRow(name, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d in %s: %w", i+2, name, err)
		}
	}
	return nil
}

func clientRows(docs []domain.ProcessedDocument) [][]string {
	var rows [][]string
	for _, d := range docs {
		for _, c := range d.Clientes {
			rows = append(rows, []string{
				d.FileName, c.ID, c.NomeCompleto, c.CPFCNPJ, c.RG, c.Endereco,
				c.Telefone, c.Email, c.EstadoCivil, c.Profissao, c.TipoCliente,
			})
		}
	}
	return rows
}

func companyRows(docs []domain.ProcessedDocument) [][]string {
	var rows [][]string
	for _, d := range docs {
		for _, e := range d.Empresas {
			rows = append(rows, []string{
				d.FileName, e.ID, e.RazaoSocial, e.NomeFantasia, e.CNPJ,
				e.InscricaoEstadual, e.InscricaoMunicipal, e.DataAbertura,
				e.EnderecoCompleto, e.Telefone, e.Email, e.RamoAtividade,
				e.CNAEPrincipal, e.TipoEmpresa, e.CapitalSocial, e.Socios,
			})
		}
	}
	return rows
}

func propertyRows(docs []domain.ProcessedDocument) [][]string {
	var rows [][]string
	for _, d := range docs {
		for _, p := range d.Imoveis {
			rows = append(rows, []string{
				d.FileName, p.ID, p.EnderecoCompleto, p.TipoImovel, p.AreaTotal,
				p.AreaConstruida, p.NumeroMatricula, p.IPTU, p.ValorVendaLocacao,
				p.Caracteristicas,
			})
		}
	}
	return rows
}
