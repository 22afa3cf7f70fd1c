package usecase_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/migration-world/tabmigrate/pkg/usecase"
	"github.com/xuri/excelize/v2"
)

func TestNormalizeSiteRole(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		role    string
		scope   string
		publish string
	}{
		{
			name:    "site administrator creator",
			input:   "SiteAdministratorCreator",
			role:    "Creator",
			scope:   "site",
			publish: "True",
		},
		{
			name:    "explorer can publish",
			input:   "ExplorerCanPublish",
			role:    "Explorer",
			scope:   "None",
			publish: "True",
		},
		{
			name:    "viewer",
			input:   "Viewer",
			role:    "Viewer",
			scope:   "None",
			publish: "False",
		},
		{
			name:    "site administrator explorer",
			input:   "SiteAdministratorExplorer",
			role:    "Explorer",
			scope:   "site",
			publish: "True",
		},
		{
			name:    "unmatched role passes through",
			input:   "ServerAdministrator",
			role:    "ServerAdministrator",
			scope:   "None",
			publish: "False",
		},
		{
			name:    "embedded substring still matches",
			input:   "LegacyViewerRole",
			role:    "Viewer",
			scope:   "None",
			publish: "False",
		},
		{
			name:    "earliest rule wins when several substrings match",
			input:   "ViewerExplorerCanPublish",
			role:    "Explorer",
			scope:   "None",
			publish: "True",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, scope, publish := usecase.NormalizeSiteRole(tc.input)
			gt.Equal(t, role, tc.role)
			gt.Equal(t, scope, tc.scope)
			gt.Equal(t, publish, tc.publish)
		})
	}
}

func TestConvertRoster(t *testing.T) {
	convertUC := usecase.NewConvert()

	t.Run("CSV roster becomes a headerless 6-column file", func(t *testing.T) {
		csvData := "Email,Site Role,Department\n" +
			"alice@example.com,SiteAdministratorCreator,Finance\n" +
			"bob@example.com,Viewer,Sales\n"

		file, err := convertUC.Roster("roster.csv", strings.NewReader(csvData))
		gt.NoError(t, err)
		gt.Equal(t, file.Name, "converted_users.csv")

		rows, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
		gt.NoError(t, err)
		gt.Equal(t, len(rows), 2)
		gt.Equal(t, rows[0], []string{"alice@example.com", "", "", "Creator", "site", "True"})
		gt.Equal(t, rows[1], []string{"bob@example.com", "", "", "Viewer", "None", "False"})
	})

	t.Run("Column headers match regardless of casing", func(t *testing.T) {
		csvData := "EMAIL,SITE_ROLE\ncarol@example.com,ExplorerCanPublish\n"

		file, err := convertUC.Roster("roster.csv", strings.NewReader(csvData))
		gt.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
		gt.NoError(t, err)
		gt.Equal(t, rows[0], []string{"carol@example.com", "", "", "Explorer", "None", "True"})
	})

	t.Run("Missing required column is rejected", func(t *testing.T) {
		csvData := "Email,Department\nalice@example.com,Finance\n"

		_, err := convertUC.Roster("roster.csv", strings.NewReader(csvData))
		gt.Error(t, err)
	})

	t.Run("Unsupported extension is rejected", func(t *testing.T) {
		_, err := convertUC.Roster("roster.xls", strings.NewReader("Email,Site Role\n"))
		gt.Error(t, err)
	})

	t.Run("Excel roster is read from the first sheet", func(t *testing.T) {
		book := excelize.NewFile()
		sheet := book.GetSheetName(0)
		gt.NoError(t, book.SetSheetRow(sheet, "A1", &[]any{"Email", "Site Role"}))
		gt.NoError(t, book.SetSheetRow(sheet, "A2", &[]any{"dave@example.com", "SiteAdministratorExplorer"}))

		var buf bytes.Buffer
		gt.NoError(t, book.Write(&buf))

		file, err := convertUC.Roster("roster.xlsx", &buf)
		gt.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
		gt.NoError(t, err)
		gt.Equal(t, len(rows), 1)
		gt.Equal(t, rows[0], []string{"dave@example.com", "", "", "Explorer", "site", "True"})
	})
}
