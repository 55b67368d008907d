package models

import (
	"strings"
	"time"

	id "welfare/pkg/domain"
	dErrors "welfare/pkg/domain-errors"
	"welfare/pkg/platform/validation"
)

type Region struct {
	ID        id.RegionID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRegion(regionID id.RegionID, name string, now time.Time) (*Region, error) {
	name, err := checkRegionName(name)
	if err != nil {
		return nil, err
	}
	return &Region{
		ID:        regionID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename changes the display name. Uniqueness is enforced by the store.
func (r *Region) Rename(name string, now time.Time) error {
	name, err := checkRegionName(name)
	if err != nil {
		return err
	}
	r.Name = name
	r.UpdatedAt = now
	return nil
}

func checkRegionName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", dErrors.New(dErrors.CodeValidation, "region name is required")
	}
	if err := validation.CheckStringLength("region name", name, validation.MaxNameLength); err != nil {
		return "", err
	}
	return name, nil
}
