package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/domain/interfaces"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/domain/types"
)

// userColumns is the fixed allow-list of recognized import columns. Headers
// are matched case-insensitively with spaces folded to underscores, so the
// tool's own export headers ("Site Role") round-trip as import columns.
var userColumns = map[string]bool{
	"name":                   true,
	"site_role":              true,
	"full_name":              true,
	"email":                  true,
	"auth_setting":           true,
	"external_auth_user_id":  true,
	"locale":                 true,
	"password":               true,
	"password_never_expires": true,
	"must_change_password":   true,
	"content_admin":          true,
	"server_role":            true,
	"tags":                   true,
}

// Import creates users and groups from uploaded CSV rows. Rows fail
// individually; one malformed row never aborts the batch.
type Import struct {
	client interfaces.TableauClient
}

// NewImport creates a new import usecase
func NewImport(client interfaces.TableauClient) *Import {
	return &Import{client: client}
}

// Users parses a CSV of user rows and adds each to the site
func (i *Import) Users(ctx context.Context, creds *model.Credentials, r io.Reader) (*model.ImportReport, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	report := &model.ImportReport{}
	err = withSession(ctx, i.client, creds, func(sess *model.Session) error {
		logger := ctxlog.From(ctx)
		for n, row := range rows {
			fields := mapRow(header, row, userColumns)
			if fields["name"] == "" || fields["site_role"] == "" {
				report.Skip("row %d: skipping because 'name' or 'site_role' is missing", n+2)
				continue
			}

			user := userFromFields(fields)
			if _, err := i.client.AddUser(ctx, sess, user); err != nil {
				report.Fail("row %d: could not add user %s: %s", n+2, user.Name, err)
				logger.Warn("Failed to add user", "name", user.Name, "error", err)
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

// Groups parses a CSV and creates a group per row, taking the first
// non-empty cell (trimmed) as the group name
func (i *Import) Groups(ctx context.Context, creds *model.Credentials, r io.Reader) (*model.ImportReport, error) {
	_, rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}

	report := &model.ImportReport{}
	err = withSession(ctx, i.client, creds, func(sess *model.Session) error {
		logger := ctxlog.From(ctx)
		for n, row := range rows {
			name := firstNonEmpty(row)
			if name == "" {
				report.Skip("row %d: skipping because no group name was found", n+2)
				continue
			}

			if _, err := i.client.CreateGroup(ctx, sess, name); err != nil {
				report.Fail("row %d: could not create group %s: %s", n+2, name, err)
				logger.Warn("Failed to create group", "name", name, "error", err)
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

// readCSV parses an uploaded file into a header row and data rows
func readCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to parse CSV")
	}
	if len(records) == 0 {
		return nil, nil, goerr.New("CSV file is empty")
	}
	return records[0], records[1:], nil
}

// normalizeHeader folds a column header onto the allow-list key space
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

// mapRow picks the recognized columns out of a row; everything else is
// ignored, values pass through untyped
func mapRow(header, row []string, allowed map[string]bool) map[string]string {
	fields := map[string]string{}
	for i, h := range header {
		if i >= len(row) {
			break
		}
		key := normalizeHeader(h)
		if !allowed[key] {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			fields[key] = v
		}
	}
	return fields
}

func userFromFields(fields map[string]string) *model.User {
	return &model.User{
		Name:                 fields["name"],
		SiteRole:             types.SiteRole(fields["site_role"]),
		FullName:             fields["full_name"],
		Email:                fields["email"],
		AuthSetting:          fields["auth_setting"],
		ExternalAuthUserID:   fields["external_auth_user_id"],
		Locale:               fields["locale"],
		Password:             fields["password"],
		PasswordNeverExpires: fields["password_never_expires"],
		MustChangePassword:   fields["must_change_password"],
		ContentAdmin:         fields["content_admin"],
		ServerRole:           fields["server_role"],
		Tags:                 fields["tags"],
	}
}

// firstNonEmpty returns the first cell with non-whitespace text, trimmed
func firstNonEmpty(row []string) string {
	for _, cell := range row {
		if v := strings.TrimSpace(cell); v != "" {
			return v
		}
	}
	return ""
}
