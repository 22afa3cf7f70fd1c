package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/migration-world/tabmigrate/pkg/domain/model"
	"github.com/migration-world/tabmigrate/pkg/usecase"

	gomponents "maragu.dev/gomponents"
)

// 10 MiB of multipart form data held in memory; larger uploads spill to disk
const maxMultipartMemory = 10 << 20

// ConnectionDefaults pre-fills the connection fieldset. The submitted form
// always wins over these values.
type ConnectionDefaults struct {
	ServerURL string
	SiteURL   string
	TokenName string
}

// Handler renders the operator UI and dispatches one operation per form
// submission
type Handler struct {
	Export   usecase.ExportUseCase
	Import   usecase.ImportUseCase
	Convert  usecase.ConvertUseCase
	Transfer usecase.TransferUseCase
	Defaults ConnectionDefaults
}

// NewHandler creates a new UI handler
func NewHandler(exportUC usecase.ExportUseCase, importUC usecase.ImportUseCase, convertUC usecase.ConvertUseCase, transferUC usecase.TransferUseCase, defaults ConnectionDefaults) *Handler {
	return &Handler{
		Export:   exportUC,
		Import:   importUC,
		Convert:  convertUC,
		Transfer: transferUC,
		Defaults: defaults,
	}
}

// MountRoutes attaches the UI routes to the router
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.HomePage)

	r.Get("/export", h.ExportPage)
	r.Post("/export/{entity}", h.ExportEntity)

	r.Get("/import", h.ImportPage)
	r.Post("/import", h.ImportSubmit)

	r.Get("/convert", h.ConvertPage)
	r.Post("/convert", h.ConvertSubmit)

	r.Get("/download", h.DownloadPage)
	r.Post("/download", h.DownloadSubmit)

	r.Get("/upload", h.UploadPage)
	r.Post("/upload", h.UploadSubmit)
}

// HomePage renders the mode selector
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, homePage())
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// serveFile streams an in-memory file as a browser download
func serveFile(w http.ResponseWriter, file *model.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}

// renderError is the coarse failure boundary of every handler: the failure
// is logged and surfaced as a user-visible message, nothing is retried
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, title string, err error) {
	ctxlog.From(r.Context()).Error("Operation failed", "op", title, "error", err)
	renderHTML(w, http.StatusOK, errorPage(title, err.Error()))
}
