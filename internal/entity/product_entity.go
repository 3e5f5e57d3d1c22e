package entity

// Product is the canonical product shape used everywhere downstream of the
// remote gateway. The upstream API serves the same logical fields under
// several spellings; pkg/remote resolves them into this struct once, at the
// boundary.
type Product struct {
	Id           string
	Name         string
	Price        float64
	CategoryId   string
	CategoryName string
	Image        string
	Label        string
	Description  string
}

type Category struct {
	Id    string
	Name  string
	Image string
}

// Offer is a user-targeted promotion returned by the upstream offers endpoint.
type Offer struct {
	Id          string
	Title       string
	Description string
	Discount    string
}
