package usecase

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/xuri/excelize/v2"
)

// roleRule maps a substring of a source site-role string to its normalized
// form. Rules are checked in order; the first match wins.
type roleRule struct {
	substr  string
	role    string
	scope   string
	publish string
}

// Priority order is fixed: when a source string contains more than one
// recognized substring, the earliest rule wins.
var roleRules = []roleRule{
	{"SiteAdministratorCreator", "Creator", "site", "True"},
	{"ExplorerCanPublish", "Explorer", "None", "True"},
	{"Viewer", "Viewer", "None", "False"},
	{"SiteAdministratorExplorer", "Explorer", "site", "True"},
}

// NormalizeSiteRole reduces a source site-role string to a simplified role
// label plus administrator-scope and publish-capable flags. Unmatched roles
// pass through unchanged.
func NormalizeSiteRole(siteRole string) (role, scope, publish string) {
	for _, r := range roleRules {
		if strings.Contains(siteRole, r.substr) {
			return r.role, r.scope, r.publish
		}
	}
	return siteRole, "None", "False"
}

// Convert restructures a spreadsheet of user records into the headerless
// 6-column CSV shape the bulk-import endpoint expects
type Convert struct{}

// NewConvert creates a new conversion usecase
func NewConvert() *Convert {
	return &Convert{}
}

// Roster reads an uploaded .xlsx or .csv roster, normalizes the Site Role
// column, and emits a headerless CSV: email, -, -, role, scope, publish.
func (c *Convert) Roster(filename string, r io.Reader) (*model.File, error) {
	rows, err := readTable(filename, r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, goerr.New("uploaded file has no rows")
	}

	emailCol, roleCol := -1, -1
	for i, h := range rows[0] {
		switch normalizeHeader(h) {
		case "email":
			emailCol = i
		case "site_role":
			roleCol = i
		}
	}
	if emailCol < 0 || roleCol < 0 {
		return nil, goerr.Wrap(model.ErrColumnNotFound, "roster needs 'Email' and 'Site Role' columns")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for _, row := range rows[1:] {
		email := cellAt(row, emailCol)
		role, scope, publish := NormalizeSiteRole(cellAt(row, roleCol))
		if err := writer.Write([]string{email, "", "", role, scope, publish}); err != nil {
			return nil, goerr.Wrap(err, "failed to write CSV row")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize CSV")
	}

	return &model.File{
		Name:        "converted_users.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// readTable loads rows from a spreadsheet or CSV upload by file extension
func readTable(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return readWorkbookRows(r)
	case ".csv":
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse CSV")
		}
		return rows, nil
	default:
		return nil, goerr.New("unsupported file type, expected .xlsx or .csv",
			goerr.V("filename", filename))
	}
}

// readWorkbookRows reads the first sheet of an Excel workbook
func readWorkbookRows(r io.Reader) ([][]string, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open Excel file")
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, goerr.New("Excel file has no sheets")
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read sheet", goerr.V("sheet", sheets[0]))
	}
	return rows, nil
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
