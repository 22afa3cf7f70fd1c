package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/domain/interfaces"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
)

// Export fetches entity lists from the server and flattens them into CSV
// downloads. Each call signs in, fetches, and signs out.
type Export struct {
	client interfaces.TableauClient
}

// NewExport creates a new export usecase
func NewExport(client interfaces.TableauClient) *Export {
	return &Export{client: client}
}

// Users exports all site users as CSV
func (x *Export) Users(ctx context.Context, creds *model.Credentials) (*model.File, error) {
	var rows [][]string
	err := withSession(ctx, x.client, creds, func(sess *model.Session) error {
		users, err := x.client.ListUsers(ctx, sess)
		if err != nil {
			return err
		}
		for _, u := range users {
			rows = append(rows, []string{u.Name, u.FullName, u.Email, u.SiteRole.String(), formatTime(u.LastLogin)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return csvFile("users.csv", []string{"Name", "Full Name", "Email", "Site Role", "Last Login"}, rows)
}

// Groups exports all site groups as CSV
func (x *Export) Groups(ctx context.Context, creds *model.Credentials) (*model.File, error) {
	var rows [][]string
	err := withSession(ctx, x.client, creds, func(sess *model.Session) error {
		groups, err := x.client.ListGroups(ctx, sess)
		if err != nil {
			return err
		}
		for _, g := range groups {
			rows = append(rows, []string{g.Name, g.ID.String()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return csvFile("groups.csv", []string{"Group Name", "Group ID"}, rows)
}

// Projects exports all site projects as CSV
func (x *Export) Projects(ctx context.Context, creds *model.Credentials) (*model.File, error) {
	var rows [][]string
	err := withSession(ctx, x.client, creds, func(sess *model.Session) error {
		projects, err := x.client.ListProjects(ctx, sess)
		if err != nil {
			return err
		}
		for _, p := range projects {
			rows = append(rows, []string{p.Name, p.Description, p.ContentPermissions})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return csvFile("projects.csv", []string{"Name", "Description", "Content Permissions"}, rows)
}

// Workbooks exports all site workbooks as CSV
func (x *Export) Workbooks(ctx context.Context, creds *model.Credentials) (*model.File, error) {
	var rows [][]string
	err := withSession(ctx, x.client, creds, func(sess *model.Session) error {
		workbooks, err := x.client.ListWorkbooks(ctx, sess)
		if err != nil {
			return err
		}
		for _, w := range workbooks {
			rows = append(rows, []string{w.Name, w.OwnerID.String(), w.ProjectName, formatTime(w.CreatedAt), formatTime(w.UpdatedAt)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return csvFile("workbooks.csv", []string{"Workbook Name", "Owner ID", "Project", "Created At", "Updated At"}, rows)
}

// Datasources exports all site datasources as CSV
func (x *Export) Datasources(ctx context.Context, creds *model.Credentials) (*model.File, error) {
	var rows [][]string
	err := withSession(ctx, x.client, creds, func(sess *model.Session) error {
		datasources, err := x.client.ListDatasources(ctx, sess)
		if err != nil {
			return err
		}
		for _, d := range datasources {
			rows = append(rows, []string{d.Name, d.OwnerID.String(), d.ProjectName, formatTime(d.CreatedAt), formatTime(d.UpdatedAt)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return csvFile("datasources.csv", []string{"Datasource Name", "Owner ID", "Project", "Created At", "Updated At"}, rows)
}

// csvFile renders a header row plus data rows into a downloadable CSV
func csvFile(name string, header []string, rows [][]string) (*model.File, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return nil, goerr.Wrap(err, "failed to write CSV header")
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, goerr.Wrap(err, "failed to write CSV row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize CSV")
	}
	return &model.File{
		Name:        name,
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
