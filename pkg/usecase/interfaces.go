package usecase

import (
	"context"
	"io"

	"github.com/migration-world/tabmigrate/pkg/domain/model"
)

// ExportUseCase defines the interface for entity CSV exports
type ExportUseCase interface {
	Users(ctx context.Context, creds *model.Credentials) (*model.File, error)
	Groups(ctx context.Context, creds *model.Credentials) (*model.File, error)
	Projects(ctx context.Context, creds *model.Credentials) (*model.File, error)
	Workbooks(ctx context.Context, creds *model.Credentials) (*model.File, error)
	Datasources(ctx context.Context, creds *model.Credentials) (*model.File, error)
}

// ImportUseCase defines the interface for CSV-driven entity creation
type ImportUseCase interface {
	Users(ctx context.Context, creds *model.Credentials, r io.Reader) (*model.ImportReport, error)
	Groups(ctx context.Context, creds *model.Credentials, r io.Reader) (*model.ImportReport, error)
}

// ConvertUseCase defines the interface for roster spreadsheet conversion
type ConvertUseCase interface {
	Roster(filename string, r io.Reader) (*model.File, error)
}

// TransferUseCase defines the interface for workbook download/upload
type TransferUseCase interface {
	Projects(ctx context.Context, creds *model.Credentials) ([]*model.Project, error)
	ProjectWorkbooks(ctx context.Context, creds *model.Credentials, projectName string) ([]*model.Workbook, error)
	DownloadWorkbook(ctx context.Context, creds *model.Credentials, projectName, workbookName string) (*model.File, error)
	DownloadProjectArchive(ctx context.Context, creds *model.Credentials, projectName string) (*model.File, error)
	Upload(ctx context.Context, creds *model.Credentials, projectName string, newProject bool, files []UploadFile) (*model.ImportReport, error)
}
