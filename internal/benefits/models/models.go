package models

// Status is the soft-delete state of categories and grants.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// CategoryCount pairs a category name with a count, used by the statistics
// views.
type CategoryCount struct {
	CategoryName string
	Count        int
}
