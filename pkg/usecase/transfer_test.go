package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/migration-world/tabmigrate/pkg/domain/interfaces/mocks"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/domain/types"
	"github.com/migration-world/tabmigrate/pkg/usecase"
)

func transferMock() *mocks.TableauClientMock {
	client := sessionMock()
	client.ListProjectsFunc = func(ctx context.Context, sess *model.Session) ([]*model.Project, error) {
		return []*model.Project{
			{ID: "p-1", Name: "Finance"},
			{ID: "p-2", Name: "Sales"},
		}, nil
	}
	client.ListWorkbooksFunc = func(ctx context.Context, sess *model.Session) ([]*model.Workbook, error) {
		return []*model.Workbook{
			{ID: "w-1", Name: "Quarterly", ProjectName: "Finance"},
			{ID: "w-2", Name: "Forecast", ProjectName: "Finance"},
			{ID: "w-3", Name: "Pipeline", ProjectName: "Sales"},
		}, nil
	}
	client.DownloadWorkbookFunc = func(ctx context.Context, sess *model.Session, id types.WorkbookID) (string, []byte, error) {
		return string(id) + ".twbx", []byte("workbook-" + string(id)), nil
	}
	return client
}

func TestTransferDownload(t *testing.T) {
	ctx := context.Background()

	t.Run("Workbook is fetched by project and name", func(t *testing.T) {
		client := transferMock()
		transferUC := usecase.NewTransfer(client)

		file, err := transferUC.DownloadWorkbook(ctx, testCredentials(), "Finance", "Forecast")
		gt.NoError(t, err)
		gt.Equal(t, file.Name, "w-2.twbx")
		gt.Equal(t, file.Data, []byte("workbook-w-2"))
	})

	t.Run("Unknown workbook is an error", func(t *testing.T) {
		client := transferMock()
		transferUC := usecase.NewTransfer(client)

		_, err := transferUC.DownloadWorkbook(ctx, testCredentials(), "Finance", "Missing")
		gt.Error(t, err)
	})

	t.Run("Project listing filters by project name", func(t *testing.T) {
		client := transferMock()
		transferUC := usecase.NewTransfer(client)

		workbooks, err := transferUC.ProjectWorkbooks(ctx, testCredentials(), "Finance")
		gt.NoError(t, err)
		gt.Equal(t, len(workbooks), 2)
		gt.Equal(t, workbooks[0].Name, "Quarterly")
		gt.Equal(t, workbooks[1].Name, "Forecast")
	})
}

func TestTransferProjectArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("Archive holds every workbook of the project", func(t *testing.T) {
		client := transferMock()
		transferUC := usecase.NewTransfer(client)

		file, err := transferUC.DownloadProjectArchive(ctx, testCredentials(), "Finance")
		gt.NoError(t, err)
		gt.Equal(t, file.Name, "Finance_workbooks.zip")
		gt.Equal(t, file.ContentType, "application/zip")

		reader, err := zip.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
		gt.NoError(t, err)
		gt.Equal(t, len(reader.File), 2)
		gt.Equal(t, reader.File[0].Name, "w-1.twbx")
		gt.Equal(t, reader.File[1].Name, "w-2.twbx")
	})

	t.Run("Empty project yields an error, not an empty archive", func(t *testing.T) {
		client := transferMock()
		transferUC := usecase.NewTransfer(client)

		_, err := transferUC.DownloadProjectArchive(ctx, testCredentials(), "Marketing")
		gt.Error(t, err)
	})
}

func TestTransferUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("Files publish into an existing project", func(t *testing.T) {
		client := transferMock()
		client.PublishWorkbookFunc = func(ctx context.Context, sess *model.Session, projectID types.ProjectID, name, path string, overwrite bool) (*model.Workbook, error) {
			return &model.Workbook{Name: name}, nil
		}

		transferUC := usecase.NewTransfer(client, usecase.WithTempDir(t.TempDir()))
		report, err := transferUC.Upload(ctx, testCredentials(), "Finance", false, []usecase.UploadFile{
			{Name: "report.twbx", Data: []byte("payload")},
		})
		gt.NoError(t, err)
		gt.Equal(t, report.Created, 1)

		calls := client.PublishWorkbookCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].ProjectID.String(), "p-1")
		gt.Equal(t, calls[0].Name, "report")
		gt.True(t, calls[0].Overwrite)
	})

	t.Run("New project mode creates the project first", func(t *testing.T) {
		client := transferMock()
		client.CreateProjectFunc = func(ctx context.Context, sess *model.Session, project *model.Project) (*model.Project, error) {
			return &model.Project{ID: "p-new", Name: project.Name}, nil
		}
		client.PublishWorkbookFunc = func(ctx context.Context, sess *model.Session, projectID types.ProjectID, name, path string, overwrite bool) (*model.Workbook, error) {
			return &model.Workbook{Name: name}, nil
		}

		transferUC := usecase.NewTransfer(client, usecase.WithTempDir(t.TempDir()))
		report, err := transferUC.Upload(ctx, testCredentials(), "Migrated", true, []usecase.UploadFile{
			{Name: "report.twb", Data: []byte("payload")},
		})
		gt.NoError(t, err)
		gt.Equal(t, report.Created, 1)
		gt.Equal(t, len(client.CreateProjectCalls()), 1)
		gt.Equal(t, client.PublishWorkbookCalls()[0].ProjectID.String(), "p-new")
	})

	t.Run("Unknown project is an error before any publish", func(t *testing.T) {
		client := transferMock()
		transferUC := usecase.NewTransfer(client, usecase.WithTempDir(t.TempDir()))

		_, err := transferUC.Upload(ctx, testCredentials(), "Marketing", false, []usecase.UploadFile{
			{Name: "report.twbx", Data: []byte("payload")},
		})
		gt.Error(t, err)
		gt.Equal(t, len(client.PublishWorkbookCalls()), 0)
	})

	t.Run("Rejected file type lands in the report, batch continues", func(t *testing.T) {
		client := transferMock()
		client.PublishWorkbookFunc = func(ctx context.Context, sess *model.Session, projectID types.ProjectID, name, path string, overwrite bool) (*model.Workbook, error) {
			return &model.Workbook{Name: name}, nil
		}

		transferUC := usecase.NewTransfer(client, usecase.WithTempDir(t.TempDir()))
		report, err := transferUC.Upload(ctx, testCredentials(), "Finance", false, []usecase.UploadFile{
			{Name: "notes.txt", Data: []byte("not a workbook")},
			{Name: "report.twbx", Data: []byte("payload")},
		})
		gt.NoError(t, err)
		gt.Equal(t, report.Created, 1)
		gt.Equal(t, report.Failed, 1)
		gt.Equal(t, len(client.PublishWorkbookCalls()), 1)
	})

	t.Run("Staged temp file is removed after a successful publish", func(t *testing.T) {
		tempDir := t.TempDir()
		client := transferMock()
		var stagedPath string
		client.PublishWorkbookFunc = func(ctx context.Context, sess *model.Session, projectID types.ProjectID, name, path string, overwrite bool) (*model.Workbook, error) {
			stagedPath = path
			_, err := os.Stat(path)
			gt.NoError(t, err) // staged file must exist while publishing
			return &model.Workbook{Name: name}, nil
		}

		transferUC := usecase.NewTransfer(client, usecase.WithTempDir(tempDir))
		_, err := transferUC.Upload(ctx, testCredentials(), "Finance", false, []usecase.UploadFile{
			{Name: "report.twbx", Data: []byte("payload")},
		})
		gt.NoError(t, err)

		_, err = os.Stat(stagedPath)
		gt.True(t, os.IsNotExist(err))

		entries, err := os.ReadDir(tempDir)
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 0)
	})

	t.Run("Staged temp file is removed when the publish fails", func(t *testing.T) {
		tempDir := t.TempDir()
		client := transferMock()
		client.PublishWorkbookFunc = func(ctx context.Context, sess *model.Session, projectID types.ProjectID, name, path string, overwrite bool) (*model.Workbook, error) {
			return nil, goerr.New("publish rejected")
		}

		transferUC := usecase.NewTransfer(client, usecase.WithTempDir(tempDir))
		report, err := transferUC.Upload(ctx, testCredentials(), "Finance", false, []usecase.UploadFile{
			{Name: "report.twbx", Data: []byte("payload")},
		})
		gt.NoError(t, err)
		gt.Equal(t, report.Failed, 1)

		entries, err := os.ReadDir(tempDir)
		gt.NoError(t, err)
		gt.Equal(t, len(entries), 0)
	})
}
