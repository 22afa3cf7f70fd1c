package model

import "github.com/migration-world/tabmigrate/pkg/domain/types"

// Project represents a Tableau project
type Project struct {
	ID                 types.ProjectID `json:"id,omitempty"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	ContentPermissions string          `json:"contentPermissions,omitempty"`
}
