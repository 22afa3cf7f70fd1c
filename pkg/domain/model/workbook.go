package model

import (
	"time"

	"github.com/migration-world/tabmigrate/pkg/domain/types"
)

// Workbook represents a packaged dashboard/report artifact on the server.
// Binary content is never held here; downloads stage through the filesystem.
type Workbook struct {
	ID          types.WorkbookID `json:"id,omitempty"`
	Name        string           `json:"name"`
	OwnerID     types.UserID     `json:"ownerId,omitempty"`
	ProjectID   types.ProjectID  `json:"projectId,omitempty"`
	ProjectName string           `json:"projectName,omitempty"`
	ContentURL  string           `json:"contentUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt,omitempty"`
	UpdatedAt   time.Time        `json:"updatedAt,omitempty"`
}

// Datasource represents a published datasource on the server
type Datasource struct {
	ID          types.DatasourceID `json:"id,omitempty"`
	Name        string             `json:"name"`
	OwnerID     types.UserID       `json:"ownerId,omitempty"`
	ProjectName string             `json:"projectName,omitempty"`
	CreatedAt   time.Time          `json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty"`
}
