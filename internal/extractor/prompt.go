package extractor

import (
	"strings"

	"docbiz/internal/domain"
)

// BuildExtractionPrompt returns the fixed instruction block sent with every
// document. It defines the strict three-array JSON output contract; entity
// identifiers are never requested from the model and are assigned locally.
func BuildExtractionPrompt() string {
	clientTypes := joinClientTypes()
	companyTypes := joinCompanyTypes()

	return `Você é um assistente de IA especializado em analisar documentos para extrair informações sobre clientes (pessoas físicas), empresas (pessoas jurídicas) e imóveis. O documento fornecido pode ser uma imagem (JPEG, PNG), PDF, DOC, DOCX, XML, TXT ou CSV; se for uma imagem ou PDF escaneado, realize OCR antes de analisar o texto.

Identifique e extraia os seguintes dados, estruturando-os OBRIGATORIAMENTE no formato JSON especificado abaixo.

Dados do Cliente (pessoa física), campos opcionais, preencher se encontrados:
- nomeCompleto: nome completo do cliente.
- cpfCnpj: CPF no formato XXX.XXX.XXX-XX.
- rg: número do RG.
- endereco: endereço residencial completo (rua, número, complemento, bairro, cidade, estado, CEP).
- telefone: telefone pessoal com DDD.
- email: e-mail pessoal.
- estadoCivil: estado civil (ex: Solteiro(a), Casado(a), Divorciado(a), Viúvo(a)).
- profissao: profissão.
- tipoCliente: relação do cliente com o documento. Valores possíveis: ` + clientTypes + `. Se não puder determinar, use "Outro" ou null.

Dados da Empresa (pessoa jurídica), campos opcionais, preencher se encontrados:
- razaoSocial: razão social completa.
- nomeFantasia: nome fantasia, se houver.
- cnpj: CNPJ no formato XX.XXX.XXX/XXXX-XX.
- inscricaoEstadual: inscrição estadual, se aplicável.
- inscricaoMunicipal: inscrição municipal, se aplicável.
- dataAbertura: data de abertura no formato DD/MM/AAAA.
- enderecoCompleto: endereço comercial completo.
- telefone: telefone comercial com DDD.
- email: e-mail comercial.
- ramoAtividade: descrição do ramo de atividade.
- cnaePrincipal: código CNAE principal.
- tipoEmpresa: natureza jurídica. Valores possíveis: ` + companyTypes + `. Se não puder determinar, use "Outro" ou null.
- capitalSocial: capital social (ex: "R$ 100.000,00").
- socios: nomes dos sócios ou administradores, se mencionados.

Dados do Imóvel, campos opcionais, preencher se encontrados:
- enderecoCompleto: endereço completo do imóvel.
- tipoImovel: tipo (ex: Casa, Apartamento, Terreno, Sala Comercial, Galpão, Sítio, Fazenda).
- areaTotal: área total (ex: "120 m²", "1.000 ha").
- areaConstruida: área construída (ex: "80 m²"); omitir se não aplicável.
- numeroMatricula: matrícula no Cartório de Registro de Imóveis.
- iptu: inscrição ou valor do IPTU.
- valorVendaLocacao: valor de venda ou locação (ex: "R$ 500.000,00", "R$ 2.500,00/mês").
- caracteristicas: outras características relevantes (ex: "3 quartos, 2 banheiros, piscina").

Formato de saída JSON ESTRITO (não inclua comentários e NÃO envolva a saída em cercas de código; apenas o JSON puro):
{
  "clientes": [
    {
      "nomeCompleto": "string | null",
      "cpfCnpj": "string | null",
      "rg": "string | null",
      "endereco": "string | null",
      "telefone": "string | null",
      "email": "string | null",
      "estadoCivil": "string | null",
      "profissao": "string | null",
      "tipoCliente": "string | null"
    }
  ],
  "empresas": [
    {
      "razaoSocial": "string | null",
      "nomeFantasia": "string | null",
      "cnpj": "string | null",
      "inscricaoEstadual": "string | null",
      "inscricaoMunicipal": "string | null",
      "dataAbertura": "string | null",
      "enderecoCompleto": "string | null",
      "telefone": "string | null",
      "email": "string | null",
      "ramoAtividade": "string | null",
      "cnaePrincipal": "string | null",
      "tipoEmpresa": "string | null",
      "capitalSocial": "string | null",
      "socios": "string | null"
    }
  ],
  "imoveis": [
    {
      "enderecoCompleto": "string | null",
      "tipoImovel": "string | null",
      "areaTotal": "string | null",
      "areaConstruida": "string | null",
      "numeroMatricula": "string | null",
      "iptu": "string | null",
      "valorVendaLocacao": "string | null",
      "caracteristicas": "string | null"
    }
  ]
}

Considerações importantes:
- Se uma informação não for encontrada, omita o campo ou use null.
- Se nenhuma entidade de um tipo for identificada, o array correspondente deve ser vazio ([]).
- Extraia os dados exatamente como aparecem no documento, normalizando datas e valores monetários de forma inteligente.
- Se o documento contiver múltiplas entidades do mesmo tipo, crie um objeto para cada uma no array correspondente.

Analise o documento fornecido e retorne APENAS o objeto JSON, sem texto explicativo antes ou depois.`
}

func joinClientTypes() string {
	parts := make([]string, len(domain.ClientTypes))
	for i, t := range domain.ClientTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func joinCompanyTypes() string {
	parts := make([]string, len(domain.CompanyTypes))
	for i, t := range domain.CompanyTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
