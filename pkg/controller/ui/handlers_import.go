package ui

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
)

// ImportPage renders the import form
func (h *Handler) ImportPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, importPage(h.Defaults))
}

// ImportSubmit parses the uploaded CSV and creates users or groups row by row
func (h *Handler) ImportSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.renderError(w, r, "Import", goerr.Wrap(err, "invalid form submission"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		renderHTML(w, http.StatusOK, warningPage("Import Users & Groups", "import",
			"Please upload a CSV file before importing."))
		return
	}
	defer file.Close()

	creds := credentialsFromForm(r)
	if err := creds.Validate(); err != nil {
		renderHTML(w, http.StatusOK, warningPage("Import Users & Groups", "import", err.Error()))
		return
	}

	importType := formString(r, "import_type")
	var report *model.ImportReport
	switch importType {
	case "groups":
		report, err = h.Import.Groups(r.Context(), creds, file)
	default:
		importType = "users"
		report, err = h.Import.Users(r.Context(), creds, file)
	}
	if err != nil {
		h.renderError(w, r, "Import", err)
		return
	}

	renderHTML(w, http.StatusOK, importResultPage(importType, report))
}
