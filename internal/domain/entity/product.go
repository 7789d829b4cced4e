package entity

type Product struct {
	ID          int
	Name        string
	Description string
}

func NewProduct(id int, name, description string) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
	}
}
