package interfaces

//go:generate moq -out mocks/tableau_mock.go -pkg mocks . TableauClient

import (
	"context"

	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/domain/types"
)

// TableauClient defines the REST operations this tool delegates to the
// remote server. All entity listing, creation, and file transfer happens
// behind this interface; the tool only supplies credentials, entity fields,
// and file paths.
type TableauClient interface {
	// Session operations
	SignIn(ctx context.Context, creds *model.Credentials) (*model.Session, error)
	SignOut(ctx context.Context, sess *model.Session) error

	// Entity listing
	ListUsers(ctx context.Context, sess *model.Session) ([]*model.User, error)
	ListGroups(ctx context.Context, sess *model.Session) ([]*model.Group, error)
	ListProjects(ctx context.Context, sess *model.Session) ([]*model.Project, error)
	ListWorkbooks(ctx context.Context, sess *model.Session) ([]*model.Workbook, error)
	ListDatasources(ctx context.Context, sess *model.Session) ([]*model.Datasource, error)

	// Entity creation
	AddUser(ctx context.Context, sess *model.Session, user *model.User) (*model.User, error)
	CreateGroup(ctx context.Context, sess *model.Session, name string) (*model.Group, error)
	CreateProject(ctx context.Context, sess *model.Session, project *model.Project) (*model.Project, error)

	// File transfer
	DownloadWorkbook(ctx context.Context, sess *model.Session, id types.WorkbookID) (string, []byte, error)
	PublishWorkbook(ctx context.Context, sess *model.Session, projectID types.ProjectID, name, path string, overwrite bool) (*model.Workbook, error)
}
