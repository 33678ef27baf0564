package comprehend

import "github.com/robbyt/go-pyprimer/lessons/containers"

// User is the record used by the lesson's list of users.
type User struct {
	Name   string
	Age    int
	Active bool
}

// Product is the record used by the lesson's practice exercises.
type Product struct {
	Name    string
	Price   int
	InStock bool
}

// SampleUsers returns the users from the lesson.
func SampleUsers() []User {
	return []User{
		{Name: "Alice", Age: 30, Active: true},
		{Name: "Bob", Age: 25, Active: false},
		{Name: "Charlie", Age: 35, Active: true},
	}
}

// SampleProducts returns the product catalogue from the practice exercises.
func SampleProducts() []Product {
	return []Product{
		{Name: "Laptop", Price: 999, InStock: true},
		{Name: "Mouse", Price: 29, InStock: true},
		{Name: "Keyboard", Price: 79, InStock: false},
		{Name: "Monitor", Price: 449, InStock: true},
		{Name: "Webcam", Price: 69, InStock: false},
	}
}

// InStockNames returns the names of products that are in stock.
func InStockNames(products []Product) []string {
	return MapFilter(products,
		func(p Product) bool { return p.InStock },
		func(p Product) string { return p.Name })
}

// PriceIndex maps each product name to its price.
func PriceIndex(products []Product) *containers.Mapping[string, int] {
	return ToMapping(products,
		func(p Product) string { return p.Name },
		func(p Product) int { return p.Price })
}

// Under returns the names of products cheaper than limit.
func Under(products []Product, limit int) []string {
	return MapFilter(products,
		func(p Product) bool { return p.Price < limit },
		func(p Product) string { return p.Name })
}
