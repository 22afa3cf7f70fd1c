package model

import "github.com/migration-world/tabmigrate/pkg/domain/types"

// Group represents a Tableau group
type Group struct {
	ID   types.GroupID `json:"id,omitempty"`
	Name string        `json:"name"`
}
