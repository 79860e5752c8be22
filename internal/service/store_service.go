package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"docbiz/internal/domain"
	"docbiz/internal/port"
)

// StoreService owns the collection of processed documents. It is the only
// writer; every mutation is mirrored to durable local storage before it
// returns. Entities have no identity outside the document that owns them.
type StoreService interface {
	Load(ctx context.Context) error
	Append(ctx context.Context, doc domain.ProcessedDocument) error
	List(query string) []domain.ProcessedDocument
	Count() int
	RemoveDocument(ctx context.Context, docID string) error
	UpdateEntity(ctx context.Context, docID string, entity domain.Entity) error
	DeleteEntity(ctx context.Context, docID string, kind domain.EntityKind, entityID string) error
	AddEntity(ctx context.Context, docID string, kind domain.EntityKind) (domain.Entity, error)
	ClearAll(ctx context.Context) error
}

type storeService struct {
	repo port.StateRepository

	mu   sync.Mutex
	docs []domain.ProcessedDocument
}

// NewStoreService creates a StoreService backed by repo. Call Load once at
// startup before serving requests.
func NewStoreService(repo port.StateRepository) StoreService {
	return &storeService{repo: repo, docs: []domain.ProcessedDocument{}}
}

// Load restores the persisted collection, backfilling identifiers and
// missing entity lists left behind by older stored payloads.
func (s *storeService) Load(ctx context.Context) error {
	docs, err := s.repo.LoadDocuments(ctx)
	if err != nil {
		return fmt.Errorf("restoring document store: %w", err)
	}
	for i := range docs {
		docs[i].Normalize()
	}
	s.mu.Lock()
	s.docs = docs
	s.mu.Unlock()
	log.Printf("storeService.Load: restored %d document(s)", len(docs))
	return nil
}

// Append inserts doc at the head of the collection.
func (s *storeService) Append(ctx context.Context, doc domain.ProcessedDocument) error {
	doc.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append([]domain.ProcessedDocument{doc}, s.docs...)
	return s.persistLocked(ctx)
}

// List returns a copy of the collection in stored order. A non-empty query
// filters documents to those with any field matching it case-insensitively.
func (s *storeService) List(query string) []domain.ProcessedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.ProcessedDocument, 0, len(s.docs))
	for i := range s.docs {
		if query == "" || strings.Contains(strings.ToLower(searchText(&s.docs[i])), query) {
			out = append(out, cloneDocument(&s.docs[i]))
		}
	}
	return out
}

// Count returns the number of stored documents.
func (s *storeService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// RemoveDocument deletes the document and every entity it owns.
// Unknown IDs are a no-op.
func (s *storeService) RemoveDocument(ctx context.Context, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.docs[:0]
	removed := false
	for i := range s.docs {
		if s.docs[i].ID == docID {
			removed = true
			continue
		}
		kept = append(kept, s.docs[i])
	}
	if !removed {
		return nil
	}
	s.docs = kept
	return s.persistLocked(ctx)
}

// UpdateEntity replaces the entity whose ID matches entity's ID in the
// matching document's list for that kind. Unknown IDs are a no-op.
func (s *storeService) UpdateEntity(ctx context.Context, docID string, entity domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findLocked(docID)
	if doc == nil {
		return nil
	}

	replaced := false
	switch e := entity.(type) {
	case domain.ClientData:
		for i := range doc.Clientes {
			if doc.Clientes[i].ID == e.ID {
				doc.Clientes[i] = e
				replaced = true
			}
		}
	case domain.CompanyData:
		for i := range doc.Empresas {
			if doc.Empresas[i].ID == e.ID {
				doc.Empresas[i] = e
				replaced = true
			}
		}
	case domain.PropertyData:
		for i := range doc.Imoveis {
			if doc.Imoveis[i].ID == e.ID {
				doc.Imoveis[i] = e
				replaced = true
			}
		}
	default:
		return domain.ErrInvalidEntityKind
	}
	if !replaced {
		return nil
	}
	return s.persistLocked(ctx)
}

// DeleteEntity removes the matching entity from its list. Unknown IDs are a no-op.
func (s *storeService) DeleteEntity(ctx context.Context, docID string, kind domain.EntityKind, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findLocked(docID)
	if doc == nil {
		return nil
	}

	removed := false
	switch kind {
	case domain.EntityKindClient:
		kept := doc.Clientes[:0]
		for i := range doc.Clientes {
			if doc.Clientes[i].ID == entityID {
				removed = true
				continue
			}
			kept = append(kept, doc.Clientes[i])
		}
		doc.Clientes = kept
	case domain.EntityKindCompany:
		kept := doc.Empresas[:0]
		for i := range doc.Empresas {
			if doc.Empresas[i].ID == entityID {
				removed = true
				continue
			}
			kept = append(kept, doc.Empresas[i])
		}
		doc.Empresas = kept
	case domain.EntityKindProperty:
		kept := doc.Imoveis[:0]
		for i := range doc.Imoveis {
			if doc.Imoveis[i].ID == entityID {
				removed = true
				continue
			}
			kept = append(kept, doc.Imoveis[i])
		}
		doc.Imoveis = kept
	default:
		return domain.ErrInvalidEntityKind
	}
	if !removed {
		return nil
	}
	return s.persistLocked(ctx)
}

// AddEntity appends a mostly-blank entity of the given kind to the document,
// with a fresh identifier and the default "Outro" classification where one
// applies. Returns the created entity.
func (s *storeService) AddEntity(ctx context.Context, docID string, kind domain.EntityKind) (domain.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.findLocked(docID)
	if doc == nil {
		return nil, domain.ErrDocumentNotFound
	}

	var entity domain.Entity
	switch kind {
	case domain.EntityKindClient:
		c := domain.ClientData{ID: domain.NewID(), TipoCliente: string(domain.ClientTypeOutro)}
		doc.Clientes = append(doc.Clientes, c)
		entity = c
	case domain.EntityKindCompany:
		c := domain.CompanyData{ID: domain.NewID(), TipoEmpresa: string(domain.CompanyTypeOutro)}
		doc.Empresas = append(doc.Empresas, c)
		entity = c
	case domain.EntityKindProperty:
		p := domain.PropertyData{ID: domain.NewID()}
		doc.Imoveis = append(doc.Imoveis, p)
		entity = p
	default:
		return nil, domain.ErrInvalidEntityKind
	}

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return entity, nil
}

// ClearAll empties the collection and its persisted representation.
func (s *storeService) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = []domain.ProcessedDocument{}
	if err := s.repo.ClearDocuments(ctx); err != nil {
		return fmt.Errorf("clearing document store: %w", err)
	}
	return nil
}

func (s *storeService) findLocked(docID string) *domain.ProcessedDocument {
	for i := range s.docs {
		if s.docs[i].ID == docID {
			return &s.docs[i]
		}
	}
	return nil
}

func (s *storeService) persistLocked(ctx context.Context) error {
	if err := s.repo.SaveDocuments(ctx, s.docs); err != nil {
		return fmt.Errorf("persisting document store: %w", err)
	}
	return nil
}

// cloneDocument copies a document deeply enough that callers cannot alias
// the store's entity lists.
func cloneDocument(d *domain.ProcessedDocument) domain.ProcessedDocument {
	out := *d
	out.Clientes = append([]domain.ClientData{}, d.Clientes...)
	out.Empresas = append([]domain.CompanyData{}, d.Empresas...)
	out.Imoveis = append([]domain.PropertyData{}, d.Imoveis...)
	return out
}

// searchText flattens a document's searchable field values into one string.
func searchText(d *domain.ProcessedDocument) string {
	var b strings.Builder
	b.WriteString(d.FileName)
	for _, c := range d.Clientes {
		join(&b, c.NomeCompleto, c.CPFCNPJ, c.RG, c.Endereco, c.Telefone,
			c.Email, c.EstadoCivil, c.Profissao, c.TipoCliente)
	}
	for _, e := range d.Empresas {
		join(&b, e.RazaoSocial, e.NomeFantasia, e.CNPJ, e.InscricaoEstadual,
			e.InscricaoMunicipal, e.DataAbertura, e.EnderecoCompleto, e.Telefone,
			e.Email, e.RamoAtividade, e.CNAEPrincipal, e.TipoEmpresa,
			e.CapitalSocial, e.Socios)
	}
	for _, p := range d.Imoveis {
		join(&b, p.EnderecoCompleto, p.TipoImovel, p.AreaTotal, p.AreaConstruida,
			p.NumeroMatricula, p.IPTU, p.ValorVendaLocacao, p.Caracteristicas)
	}
	return b.String()
}

func join(b *strings.Builder, fields ...string) {
	for _, f := range fields {
		if f != "" {
			b.WriteByte('\n')
			b.WriteString(f)
		}
	}
}
