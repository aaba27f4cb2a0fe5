// Package memory implementa los puertos de persistencia en memoria de proceso.
// Se usa con STORAGE_DRIVER=memory (demo, desarrollo) y en los tests.
package memory

import (
	"sync"

	"github.com/jhoicas/stationery-api/internal/domain/entity"
)

// state datos de la tienda. Los valores se guardan por copia.
type state struct {
	admins    map[string]entity.Admin
	retailers map[string]entity.Retailer
	products  map[string]entity.Product
	invoices  map[string]*entity.Invoice
	payments  []entity.Payment
}

func newState() *state {
	return &state{
		admins:    make(map[string]entity.Admin),
		retailers: make(map[string]entity.Retailer),
		products:  make(map[string]entity.Product),
		invoices:  make(map[string]*entity.Invoice),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.admins {
		c.admins[k] = v
	}
	for k, v := range s.retailers {
		c.retailers[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.invoices {
		c.invoices[k] = v.Clone()
	}
	c.payments = append([]entity.Payment(nil), s.payments...)
	return c
}

// Store base de datos en memoria protegida por un RWMutex.
type Store struct {
	mu   sync.RWMutex
	data *state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{data: newState()}
}

// access encapsula el bloqueo: los repos creados dentro de RunLedger ya
// corren con el lock tomado y no deben volver a tomarlo.
type access struct {
	s    *Store
	inTx bool
}

func (a access) read(fn func(st *state)) {
	if !a.inTx {
		a.s.mu.RLock()
		defer a.s.mu.RUnlock()
	}
	fn(a.s.data)
}

func (a access) write(fn func(st *state) error) error {
	if !a.inTx {
		a.s.mu.Lock()
		defer a.s.mu.Unlock()
	}
	return fn(a.s.data)
}
