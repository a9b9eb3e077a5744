// Package models provides the data structures for Pulseway RMM API payloads.
//
// Entities are plain value structs decoded from API responses. Enum fields
// reject values outside their closed set at decode time; optional timestamps
// decode leniently to their zero value. Entities hold no references back to
// the client — relationships are expressed by id only.
package models

// Organization represents a Pulseway organization
type Organization struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ApplyDefaults fills fields the API is allowed to omit
func (o *Organization) ApplyDefaults() {
	if o.Name == "" {
		o.Name = "Unknown"
	}
}
