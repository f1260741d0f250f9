package domain

import "errors"

// DefaultFacultyName is the historical placeholder stored when a society is
// created without a faculty_name. It is an "unset" sentinel carried over from
// the original data, not a meaningful business value.
const DefaultFacultyName = "random"

var ErrSocietyNotFound = errors.New("society not found")

// Society is an organizational sub-group record. Societies and events are
// independent collections with no relationship between them.
type Society struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	LogoURL     *string `json:"logo_url" db:"logo_url"`
	ChairName   string  `json:"chair_name" db:"chair_name"`
	Description string  `json:"description" db:"description"`
	FacultyName string  `json:"faculty_name" db:"faculty_name"`
}
