package search

// Document represents a searchable item
type Document struct {
	ID   string
	Text string
}
