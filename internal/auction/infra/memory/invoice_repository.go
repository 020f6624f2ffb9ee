package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cristianortiz/invoiceAuction/internal/auction/domain"
)

// InvoiceRepository is a concurrency-safe in-memory implementation of domain.InvoiceRepository.
// it stores the aggregates themselves, callers that hand them outside the engine must Clone
type InvoiceRepository struct {
	mu       sync.RWMutex
	lastID   int64
	invoices map[int64]*domain.Invoice
}

// NewInvoiceRepository creates a new in-memory repository instance
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{
		invoices: make(map[int64]*domain.Invoice),
	}
}

// NextID reserves the next invoice id, ids start at 1 and are never reused
func (r *InvoiceRepository) NextID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	return r.lastID
}

// Save stores or replaces an invoice
func (r *InvoiceRepository) Save(inv *domain.Invoice) error {
	if inv == nil || inv.ID <= 0 {
		return fmt.Errorf("save invoice: %w - invoice must have a positive id", domain.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.invoices[inv.ID] = inv
	if inv.ID > r.lastID {
		r.lastID = inv.ID
	}
	return nil
}

// GetByID returns the stored invoice
func (r *InvoiceRepository) GetByID(id int64) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.invoices[id]
	if !ok {
		return nil, fmt.Errorf("get invoice %d: %w", id, domain.ErrInvoiceNotFound)
	}
	return inv, nil
}

// List returns every invoice ordered by id
func (r *InvoiceRepository) List() []*domain.Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	sortByID(out)
	return out
}

// ListByStatus returns the invoices in the given state ordered by id
func (r *InvoiceRepository) ListByStatus(status domain.InvoiceStatus) []*domain.Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Invoice, 0)
	for _, inv := range r.invoices {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	sortByID(out)
	return out
}

func sortByID(invoices []*domain.Invoice) {
	sort.Slice(invoices, func(i, j int) bool { return invoices[i].ID < invoices[j].ID })
}
