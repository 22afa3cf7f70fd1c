package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
)

// ExportPage renders the export form
func (h *Handler) ExportPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, exportPage(h.Defaults))
}

// ExportEntity connects, exports one entity kind as CSV, and signs out
func (h *Handler) ExportEntity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "Export", goerr.Wrap(err, "invalid form submission"))
		return
	}

	creds := credentialsFromForm(r)
	if err := creds.Validate(); err != nil {
		renderHTML(w, http.StatusOK, warningPage("Export Tableau Content", "export", err.Error()))
		return
	}

	var (
		file *model.File
		err  error
	)
	switch entity := chi.URLParam(r, "entity"); entity {
	case "users":
		file, err = h.Export.Users(r.Context(), creds)
	case "groups":
		file, err = h.Export.Groups(r.Context(), creds)
	case "projects":
		file, err = h.Export.Projects(r.Context(), creds)
	case "workbooks":
		file, err = h.Export.Workbooks(r.Context(), creds)
	case "datasources":
		file, err = h.Export.Datasources(r.Context(), creds)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.renderError(w, r, "Export", err)
		return
	}

	serveFile(w, file)
}
