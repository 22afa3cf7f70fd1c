package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/domain/interfaces"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/domain/types"
)

// UploadFile is one workbook file received from the browser
type UploadFile struct {
	Name string
	Data []byte
}

// Transfer moves workbook files between the browser and the server. Uploads
// stage through a local temp file that is always removed, success or failure.
type Transfer struct {
	client  interfaces.TableauClient
	tempDir string
}

// TransferOption configures a Transfer
type TransferOption func(*Transfer)

// WithTempDir overrides the staging directory for uploads
func WithTempDir(dir string) TransferOption {
	return func(t *Transfer) {
		t.tempDir = dir
	}
}

// NewTransfer creates a new transfer usecase
func NewTransfer(client interfaces.TableauClient, opts ...TransferOption) *Transfer {
	t := &Transfer{client: client, tempDir: os.TempDir()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Projects lists the projects of the site for the picker forms
func (t *Transfer) Projects(ctx context.Context, creds *model.Credentials) ([]*model.Project, error) {
	var projects []*model.Project
	err := withSession(ctx, t.client, creds, func(sess *model.Session) error {
		var err error
		projects, err = t.client.ListProjects(ctx, sess)
		return err
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectWorkbooks lists the workbooks contained in the named project
func (t *Transfer) ProjectWorkbooks(ctx context.Context, creds *model.Credentials, projectName string) ([]*model.Workbook, error) {
	var workbooks []*model.Workbook
	err := withSession(ctx, t.client, creds, func(sess *model.Session) error {
		all, err := t.client.ListWorkbooks(ctx, sess)
		if err != nil {
			return err
		}
		for _, w := range all {
			if w.ProjectName == projectName {
				workbooks = append(workbooks, w)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return workbooks, nil
}

// DownloadWorkbook fetches a single workbook by name from a project
func (t *Transfer) DownloadWorkbook(ctx context.Context, creds *model.Credentials, projectName, workbookName string) (*model.File, error) {
	var file *model.File
	err := withSession(ctx, t.client, creds, func(sess *model.Session) error {
		wb, err := t.findWorkbook(ctx, sess, projectName, workbookName)
		if err != nil {
			return err
		}
		filename, content, err := t.client.DownloadWorkbook(ctx, sess, wb.ID)
		if err != nil {
			return goerr.Wrap(err, "failed to download workbook", goerr.V("name", wb.Name))
		}
		file = &model.File{
			Name:        filename,
			ContentType: "application/octet-stream",
			Data:        content,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return file, nil
}

// DownloadProjectArchive fetches every workbook of a project and bundles
// them into one zip download
func (t *Transfer) DownloadProjectArchive(ctx context.Context, creds *model.Credentials, projectName string) (*model.File, error) {
	var buf bytes.Buffer
	err := withSession(ctx, t.client, creds, func(sess *model.Session) error {
		all, err := t.client.ListWorkbooks(ctx, sess)
		if err != nil {
			return err
		}

		var project []*model.Workbook
		for _, w := range all {
			if w.ProjectName == projectName {
				project = append(project, w)
			}
		}
		if len(project) == 0 {
			return goerr.Wrap(model.ErrNoWorkbooks, "nothing to download", goerr.V("project", projectName))
		}

		archive := zip.NewWriter(&buf)
		for _, wb := range project {
			filename, content, err := t.client.DownloadWorkbook(ctx, sess, wb.ID)
			if err != nil {
				return goerr.Wrap(err, "failed to download workbook", goerr.V("name", wb.Name))
			}
			entry, err := archive.Create(filename)
			if err != nil {
				return goerr.Wrap(err, "failed to create archive entry", goerr.V("name", filename))
			}
			if _, err := entry.Write(content); err != nil {
				return goerr.Wrap(err, "failed to write archive entry", goerr.V("name", filename))
			}
		}
		return archive.Close()
	})
	if err != nil {
		return nil, err
	}
	return &model.File{
		Name:        projectName + "_workbooks.zip",
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}

// Upload publishes uploaded workbook files into the named project. When
// newProject is set the project is created first. Per-file failures land in
// the report; they never abort the batch.
func (t *Transfer) Upload(ctx context.Context, creds *model.Credentials, projectName string, newProject bool, files []UploadFile) (*model.ImportReport, error) {
	report := &model.ImportReport{}
	err := withSession(ctx, t.client, creds, func(sess *model.Session) error {
		projectID, err := t.resolveProject(ctx, sess, projectName, newProject)
		if err != nil {
			return err
		}

		for _, f := range files {
			if err := t.publishOne(ctx, sess, projectID, f); err != nil {
				report.Fail("could not upload %s: %s", f.Name, err)
				continue
			}
			report.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// publishOne stages one upload to a temp file, publishes it, and removes the
// temp file on every path
func (t *Transfer) publishOne(ctx context.Context, sess *model.Session, projectID types.ProjectID, f UploadFile) error {
	ext := strings.ToLower(filepath.Ext(f.Name))
	if ext != ".twb" && ext != ".twbx" {
		return goerr.New("unsupported workbook file type", goerr.V("filename", f.Name))
	}

	tempPath := filepath.Join(t.tempDir, fmt.Sprintf("tabmigrate-%s%s", uuid.New().String(), ext))
	if err := os.WriteFile(tempPath, f.Data, 0600); err != nil {
		return goerr.Wrap(err, "failed to stage workbook file", goerr.V("path", tempPath))
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			ctxlog.From(ctx).Warn("Failed to remove staged file", "path", tempPath, "error", err)
		}
	}()

	name := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
	if _, err := t.client.PublishWorkbook(ctx, sess, projectID, name, tempPath, true); err != nil {
		return err
	}
	return nil
}

// resolveProject looks up the project ID by name, creating it when asked
func (t *Transfer) resolveProject(ctx context.Context, sess *model.Session, projectName string, create bool) (types.ProjectID, error) {
	if projectName == "" {
		return "", goerr.Wrap(model.ErrMissingField, "project name is required")
	}

	if create {
		project, err := t.client.CreateProject(ctx, sess, &model.Project{Name: projectName})
		if err != nil {
			return "", goerr.Wrap(err, "failed to create project", goerr.V("name", projectName))
		}
		return project.ID, nil
	}

	projects, err := t.client.ListProjects(ctx, sess)
	if err != nil {
		return "", err
	}
	for _, p := range projects {
		if p.Name == projectName {
			return p.ID, nil
		}
	}
	return "", goerr.Wrap(model.ErrProjectNotFound, "no such project", goerr.V("name", projectName))
}

// findWorkbook resolves a workbook by project and name
func (t *Transfer) findWorkbook(ctx context.Context, sess *model.Session, projectName, workbookName string) (*model.Workbook, error) {
	all, err := t.client.ListWorkbooks(ctx, sess)
	if err != nil {
		return nil, err
	}
	for _, w := range all {
		if w.ProjectName == projectName && w.Name == workbookName {
			return w, nil
		}
	}
	return nil, goerr.Wrap(model.ErrNoWorkbooks, "workbook not found",
		goerr.V("project", projectName), goerr.V("workbook", workbookName))
}
