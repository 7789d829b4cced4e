package outbound

import (
	"iter"

	"github.com/DioGolang/acme/internal/domain/entity"
)

type VendorRepository interface {
	RetrieveAll() []*entity.Vendor
	Retrieve() []*entity.Vendor
	RetrieveWithIterator() iter.Seq[*entity.Vendor]
	RetrieveWithKeys() map[string]*entity.Vendor
	FindByID(id int) (*entity.Vendor, error)
}
