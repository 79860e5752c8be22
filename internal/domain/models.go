package domain

import (
	"github.com/google/uuid"
)

// ClientData holds the fields extracted for one person (pessoa física).
// Every field except ID is optional; absent means "not found in the document".
// JSON names are the wire names the extraction model is instructed to emit.
type ClientData struct {
	ID           string `json:"id"`
	NomeCompleto string `json:"nomeCompleto,omitempty"`
	CPFCNPJ      string `json:"cpfCnpj,omitempty"`
	RG           string `json:"rg,omitempty"`
	Endereco     string `json:"endereco,omitempty"`
	Telefone     string `json:"telefone,omitempty"`
	Email        string `json:"email,omitempty"`
	EstadoCivil  string `json:"estadoCivil,omitempty"`
	Profissao    string `json:"profissao,omitempty"`
	TipoCliente  string `json:"tipoCliente,omitempty"`
}

// CompanyData holds the fields extracted for one company (pessoa jurídica).
type CompanyData struct {
	ID                 string `json:"id"`
	RazaoSocial        string `json:"razaoSocial,omitempty"`
	NomeFantasia       string `json:"nomeFantasia,omitempty"`
	CNPJ               string `json:"cnpj,omitempty"`
	InscricaoEstadual  string `json:"inscricaoEstadual,omitempty"`
	InscricaoMunicipal string `json:"inscricaoMunicipal,omitempty"`
	DataAbertura       string `json:"dataAbertura,omitempty"`
	EnderecoCompleto   string `json:"enderecoCompleto,omitempty"`
	Telefone           string `json:"telefone,omitempty"`
	Email              string `json:"email,omitempty"`
	RamoAtividade      string `json:"ramoAtividade,omitempty"`
	CNAEPrincipal      string `json:"cnaePrincipal,omitempty"`
	TipoEmpresa        string `json:"tipoEmpresa,omitempty"`
	CapitalSocial      string `json:"capitalSocial,omitempty"`
	Socios             string `json:"socios,omitempty"`
}

// PropertyData holds the fields extracted for one real-estate property.
type PropertyData struct {
	ID                string `json:"id"`
	EnderecoCompleto  string `json:"enderecoCompleto,omitempty"`
	TipoImovel        string `json:"tipoImovel,omitempty"`
	AreaTotal         string `json:"areaTotal,omitempty"`
	AreaConstruida    string `json:"areaConstruida,omitempty"`
	NumeroMatricula   string `json:"numeroMatricula,omitempty"`
	IPTU              string `json:"iptu,omitempty"`
	ValorVendaLocacao string `json:"valorVendaLocacao,omitempty"`
	Caracteristicas   string `json:"caracteristicas,omitempty"`
}

// ExtractedData bundles the three entity lists produced by one extraction call.
type ExtractedData struct {
	Clientes []ClientData   `json:"clientes"`
	Empresas []CompanyData  `json:"empresas"`
	Imoveis  []PropertyData `json:"imoveis"`
}

// ProcessedDocument represents one uploaded source file and everything
// extracted from it. Entities inside it have no identity outside it.
type ProcessedDocument struct {
	ID        string         `json:"id"`
	FileName  string         `json:"fileName"`
	FileType  string         `json:"fileType"`
	Timestamp string         `json:"timestamp"` // RFC 3339
	Clientes  []ClientData   `json:"clientes"`
	Empresas  []CompanyData  `json:"empresas"`
	Imoveis   []PropertyData `json:"imoveis"`
}

// Entity is the tagged union over the three extracted entity kinds.
type Entity interface {
	EntityID() string
	Kind() EntityKind
}

func (c ClientData) EntityID() string { return c.ID }
func (c ClientData) Kind() EntityKind { return EntityKindClient }

func (c CompanyData) EntityID() string { return c.ID }
func (c CompanyData) Kind() EntityKind { return EntityKindCompany }

func (p PropertyData) EntityID() string { return p.ID }
func (p PropertyData) Kind() EntityKind { return EntityKindProperty }

// NewID returns a fresh entity/document identifier.
func NewID() string {
	return uuid.NewString()
}

// Normalize backfills missing identifiers and replaces nil entity lists with
// empty ones. Stored payloads from older versions may lack either.
func (d *ProcessedDocument) Normalize() {
	if d.ID == "" {
		d.ID = NewID()
	}
	if d.Clientes == nil {
		d.Clientes = []ClientData{}
	}
	if d.Empresas == nil {
		d.Empresas = []CompanyData{}
	}
	if d.Imoveis == nil {
		d.Imoveis = []PropertyData{}
	}
	for i := range d.Clientes {
		if d.Clientes[i].ID == "" {
			d.Clientes[i].ID = NewID()
		}
	}
	for i := range d.Empresas {
		if d.Empresas[i].ID == "" {
			d.Empresas[i].ID = NewID()
		}
	}
	for i := range d.Imoveis {
		if d.Imoveis[i].ID == "" {
			d.Imoveis[i].ID = NewID()
		}
	}
}
