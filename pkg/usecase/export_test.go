package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/usecase"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	gt.NoError(t, err)
	return rows
}

func TestExportUsers(t *testing.T) {
	ctx := context.Background()
	lastLogin := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	client := sessionMock()
	client.ListUsersFunc = func(ctx context.Context, sess *model.Session) ([]*model.User, error) {
		return []*model.User{
			{Name: "alice", FullName: "Alice Smith", Email: "alice@example.com", SiteRole: "Creator", LastLogin: lastLogin},
			{Name: "bob", FullName: "Bob Jones", Email: "bob@example.com", SiteRole: "Viewer"},
		}, nil
	}

	exportUC := usecase.NewExport(client)
	file, err := exportUC.Users(ctx, testCredentials())
	gt.NoError(t, err)
	gt.Equal(t, file.Name, "users.csv")
	gt.Equal(t, file.ContentType, "text/csv; charset=utf-8")

	rows := parseCSV(t, file.Data)
	gt.Equal(t, len(rows), 3)
	gt.Equal(t, rows[0], []string{"Name", "Full Name", "Email", "Site Role", "Last Login"})
	gt.Equal(t, rows[1], []string{"alice", "Alice Smith", "alice@example.com", "Creator", "2026-03-14T09:30:00Z"})
	gt.Equal(t, rows[2][4], "") // never-logged-in user has an empty timestamp

	gt.Equal(t, len(client.SignInCalls()), 1)
	gt.Equal(t, len(client.SignOutCalls()), 1)
}

func TestExportGroups(t *testing.T) {
	ctx := context.Background()

	client := sessionMock()
	client.ListGroupsFunc = func(ctx context.Context, sess *model.Session) ([]*model.Group, error) {
		return []*model.Group{
			{ID: "g-1", Name: "Analysts"},
			{ID: "g-2", Name: "Sales"},
		}, nil
	}

	exportUC := usecase.NewExport(client)
	file, err := exportUC.Groups(ctx, testCredentials())
	gt.NoError(t, err)
	gt.Equal(t, file.Name, "groups.csv")

	rows := parseCSV(t, file.Data)
	gt.Equal(t, rows[0], []string{"Group Name", "Group ID"})
	gt.Equal(t, rows[1], []string{"Analysts", "g-1"})
	gt.Equal(t, rows[2], []string{"Sales", "g-2"})
}

func TestExportProjects(t *testing.T) {
	ctx := context.Background()

	client := sessionMock()
	client.ListProjectsFunc = func(ctx context.Context, sess *model.Session) ([]*model.Project, error) {
		return []*model.Project{
			{ID: "p-1", Name: "Finance", Description: "Finance reports", ContentPermissions: "ManagedByOwner"},
		}, nil
	}

	exportUC := usecase.NewExport(client)
	file, err := exportUC.Projects(ctx, testCredentials())
	gt.NoError(t, err)

	rows := parseCSV(t, file.Data)
	gt.Equal(t, rows[0], []string{"Name", "Description", "Content Permissions"})
	gt.Equal(t, rows[1], []string{"Finance", "Finance reports", "ManagedByOwner"})
}

func TestExportWorkbooks(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 1, 15, 8, 45, 0, 0, time.UTC)

	client := sessionMock()
	client.ListWorkbooksFunc = func(ctx context.Context, sess *model.Session) ([]*model.Workbook, error) {
		return []*model.Workbook{
			{ID: "w-1", Name: "Quarterly Sales", OwnerID: "u-9", ProjectName: "Finance", CreatedAt: created, UpdatedAt: updated},
		}, nil
	}

	exportUC := usecase.NewExport(client)
	file, err := exportUC.Workbooks(ctx, testCredentials())
	gt.NoError(t, err)
	gt.Equal(t, file.Name, "workbooks.csv")

	rows := parseCSV(t, file.Data)
	gt.Equal(t, rows[0], []string{"Workbook Name", "Owner ID", "Project", "Created At", "Updated At"})
	gt.Equal(t, rows[1], []string{"Quarterly Sales", "u-9", "Finance", "2025-11-02T12:00:00Z", "2026-01-15T08:45:00Z"})
}

func TestExportDatasources(t *testing.T) {
	ctx := context.Background()

	client := sessionMock()
	client.ListDatasourcesFunc = func(ctx context.Context, sess *model.Session) ([]*model.Datasource, error) {
		return []*model.Datasource{
			{ID: "d-1", Name: "Warehouse", OwnerID: "u-3", ProjectName: "Data"},
		}, nil
	}

	exportUC := usecase.NewExport(client)
	file, err := exportUC.Datasources(ctx, testCredentials())
	gt.NoError(t, err)
	gt.Equal(t, file.Name, "datasources.csv")

	rows := parseCSV(t, file.Data)
	gt.Equal(t, rows[0], []string{"Datasource Name", "Owner ID", "Project", "Created At", "Updated At"})
	gt.Equal(t, rows[1][0], "Warehouse")
}

func TestExportSessionLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Sign-in failure surfaces and nothing is listed", func(t *testing.T) {
		client := sessionMock()
		client.SignInFunc = func(ctx context.Context, creds *model.Credentials) (*model.Session, error) {
			return nil, goerr.New("invalid credentials")
		}
		client.ListUsersFunc = func(ctx context.Context, sess *model.Session) ([]*model.User, error) {
			return nil, nil
		}

		exportUC := usecase.NewExport(client)
		_, err := exportUC.Users(ctx, testCredentials())
		gt.Error(t, err)
		gt.Equal(t, len(client.ListUsersCalls()), 0)
	})

	t.Run("Sign-out still happens when listing fails", func(t *testing.T) {
		client := sessionMock()
		client.ListUsersFunc = func(ctx context.Context, sess *model.Session) ([]*model.User, error) {
			return nil, goerr.New("server unavailable")
		}

		exportUC := usecase.NewExport(client)
		_, err := exportUC.Users(ctx, testCredentials())
		gt.Error(t, err)
		gt.Equal(t, len(client.SignOutCalls()), 1)
	})
}
