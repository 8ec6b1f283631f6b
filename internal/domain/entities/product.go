package entities

// Product is a catalog item. The checkout never mutates it.
//
// Storage model (DynamoDB, optional):
//   - PK: id
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
}

// AllCategories is the catalog filter value meaning "no filter".
const AllCategories = "Todos"
