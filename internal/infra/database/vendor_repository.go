package database

import (
	"fmt"
	"iter"

	"github.com/DioGolang/acme/internal/application/port/outbound"
	"github.com/DioGolang/acme/internal/domain/entity"
)

var _ outbound.VendorRepository = (*VendorRepository)(nil)

// VendorRepository serves vendors from fixed in-memory fixtures. The
// fixtures are never mutated; every call hands out fresh copies.
type VendorRepository struct {
	catalog  []entity.Vendor
	contacts []entity.Vendor
	keyed    []entity.Vendor
}

func NewVendorRepository() *VendorRepository {
	return &VendorRepository{
		catalog: []entity.Vendor{
			{VendorID: 35, CompanyName: "Car Toys", Email: "car@abc.com"},
			{VendorID: 42, CompanyName: "Toys for Fun", Email: "fun@abc.com"},
			{VendorID: 22, CompanyName: "Amalgamated Toys", Email: "a@abc.com"},
			{VendorID: 28, CompanyName: "Toy Blocks Inc", Email: "blocks@abc.com"},
		},
		contacts: []entity.Vendor{
			{VendorID: 1, CompanyName: "ABC Corp", Email: "abc@abc.com"},
			{VendorID: 2, CompanyName: "XYZ Inc", Email: "xyz@xyz.com"},
		},
		keyed: []entity.Vendor{
			{VendorID: 5, CompanyName: "ABC Corp", Email: "abc@abc.com"},
			{VendorID: 8, CompanyName: "XYZ Inc", Email: "xyz@xyz.com"},
		},
	}
}

// RetrieveAll returns the full catalog in storage order. Filtering and
// sorting are up to the caller.
func (r *VendorRepository) RetrieveAll() []*entity.Vendor {
	return clone(r.catalog)
}

func (r *VendorRepository) Retrieve() []*entity.Vendor {
	return clone(r.contacts)
}

// RetrieveWithIterator yields the Retrieve dataset lazily. The sequence can
// be ranged over any number of times.
func (r *VendorRepository) RetrieveWithIterator() iter.Seq[*entity.Vendor] {
	return func(yield func(*entity.Vendor) bool) {
		for _, v := range r.contacts {
			if !yield(&v) {
				return
			}
		}
	}
}

// RetrieveWithKeys indexes a dataset by company name.
func (r *VendorRepository) RetrieveWithKeys() map[string]*entity.Vendor {
	out := make(map[string]*entity.Vendor, len(r.keyed))
	for _, v := range clone(r.keyed) {
		out[v.CompanyName] = v
	}
	return out
}

func (r *VendorRepository) FindByID(id int) (*entity.Vendor, error) {
	for _, set := range [][]entity.Vendor{r.catalog, r.contacts} {
		for _, v := range set {
			if v.VendorID == id {
				return &v, nil
			}
		}
	}
	return nil, fmt.Errorf("vendor %d: %w", id, entity.ErrVendorNotFound)
}

// RetrieveValue returns value unchanged. query is accepted for parity with
// a real store and currently ignored.
func RetrieveValue[T any](r *VendorRepository, query string, value T) T {
	return value
}

func clone(src []entity.Vendor) []*entity.Vendor {
	out := make([]*entity.Vendor, len(src))
	for i := range src {
		v := src[i]
		out[i] = &v
	}
	return out
}
