package product

type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
}

type CreateProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	CategoryID  int64   `json:"categoryId"`
}

type ListOptions struct {
	Filter     *string
	CategoryID *int64
	Limit      *int32
	Page       *int32
}
