package models

// Status is the soft-delete state shared by citizens. Rows are never removed;
// they move between active and inactive.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// RegionCount is the number of active citizens registered in a region.
type RegionCount struct {
	RegionName string
	Count      int
}
