package domain

// ClientType classifies a person's role in the document or transaction.
type ClientType string

const (
	ClientTypeComprador           ClientType = "Comprador"
	ClientTypeVendedor            ClientType = "Vendedor"
	ClientTypeLocador             ClientType = "Locador"
	ClientTypeLocatario           ClientType = "Locatário"
	ClientTypeTestemunha          ClientType = "Testemunha"
	ClientTypeConjuge             ClientType = "Cônjuge"
	ClientTypeInteressado         ClientType = "Interessado"
	ClientTypeProcurador          ClientType = "Procurador"
	ClientTypeFiador              ClientType = "Fiador"
	ClientTypeRepresentanteLegal  ClientType = "Representante Legal"
	ClientTypeProprietario        ClientType = "Proprietário"
	ClientTypeProfissionalLiberal ClientType = "Profissional Liberal"
	ClientTypePrestadorServico    ClientType = "Prestador de Serviço"
	ClientTypeOutro               ClientType = "Outro"
)

// ClientTypes lists every valid client classification, in display order.
var ClientTypes = []ClientType{
	ClientTypeComprador,
	ClientTypeVendedor,
	ClientTypeLocador,
	ClientTypeLocatario,
	ClientTypeTestemunha,
	ClientTypeConjuge,
	ClientTypeInteressado,
	ClientTypeProcurador,
	ClientTypeFiador,
	ClientTypeRepresentanteLegal,
	ClientTypeProprietario,
	ClientTypeProfissionalLiberal,
	ClientTypePrestadorServico,
	ClientTypeOutro,
}

// CompanyType classifies a company's legal form or nature.
type CompanyType string

const (
	CompanyTypeMatriz              CompanyType = "Matriz"
	CompanyTypeFilial              CompanyType = "Filial"
	CompanyTypeMEI                 CompanyType = "MEI"
	CompanyTypeLTDA                CompanyType = "LTDA"
	CompanyTypeSA                  CompanyType = "S/A"
	CompanyTypeEIRELI              CompanyType = "EIRELI"
	CompanyTypeSLU                 CompanyType = "SLU"
	CompanyTypeAssociacao          CompanyType = "Associação"
	CompanyTypeCooperativa         CompanyType = "Cooperativa"
	CompanyTypeFundacao            CompanyType = "Fundação"
	CompanyTypeHolding             CompanyType = "Holding"
	CompanyTypeEscritorioAdvocacia CompanyType = "Escritório de Advocacia"
	CompanyTypeConsultoria         CompanyType = "Consultoria"
	CompanyTypePrestadorServicos   CompanyType = "Prestador de Serviços Gerais"
	CompanyTypeOutro               CompanyType = "Outro"
)

// CompanyTypes lists every valid company classification, in display order.
var CompanyTypes = []CompanyType{
	CompanyTypeMatriz,
	CompanyTypeFilial,
	CompanyTypeMEI,
	CompanyTypeLTDA,
	CompanyTypeSA,
	CompanyTypeEIRELI,
	CompanyTypeSLU,
	CompanyTypeAssociacao,
	CompanyTypeCooperativa,
	CompanyTypeFundacao,
	CompanyTypeHolding,
	CompanyTypeEscritorioAdvocacia,
	CompanyTypeConsultoria,
	CompanyTypePrestadorServicos,
	CompanyTypeOutro,
}

// EntityKind discriminates the three extracted entity families.
type EntityKind string

const (
	EntityKindClient   EntityKind = "client"
	EntityKindCompany  EntityKind = "company"
	EntityKindProperty EntityKind = "property"
)

// MaxFileSizeMB is the per-file upload ceiling.
const MaxFileSizeMB = 10

// MaxFileSizeBytes is MaxFileSizeMB expressed in bytes.
const MaxFileSizeBytes = MaxFileSizeMB * 1024 * 1024

// AcceptedContentTypes is the allow-list of declared media types for intake.
var AcceptedContentTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/xml":   true,
	"text/plain": true,
	"text/csv":   true,
}

// Theme is the UI theme preference persisted on behalf of the frontend.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ValidTheme reports whether s is one of the persistable theme values.
func ValidTheme(s string) bool {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
