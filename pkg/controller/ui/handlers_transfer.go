package ui

import (
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/usecase"
)

// DownloadPage renders the connection form for workbook downloads
func (h *Handler) DownloadPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, downloadPage(h.Defaults))
}

// DownloadSubmit drives the browse/pick/fetch flow. Credentials travel with
// each step; every step is its own sign-in and sign-out.
func (h *Handler) DownloadSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "Download", goerr.Wrap(err, "invalid form submission"))
		return
	}

	creds := credentialsFromForm(r)
	if err := creds.Validate(); err != nil {
		renderHTML(w, http.StatusOK, warningPage("Download Workbooks", "download", err.Error()))
		return
	}

	switch action := formString(r, "action"); action {
	case "browse":
		projects, err := h.Transfer.Projects(r.Context(), creds)
		if err != nil {
			h.renderError(w, r, "Download", err)
			return
		}
		renderHTML(w, http.StatusOK, downloadProjectsPage(creds, projects))

	case "workbooks":
		project := formString(r, "project")
		workbooks, err := h.Transfer.ProjectWorkbooks(r.Context(), creds, project)
		if err != nil {
			h.renderError(w, r, "Download", err)
			return
		}
		if len(workbooks) == 0 {
			renderHTML(w, http.StatusOK, warningPage("Download Workbooks", "download",
				"No workbooks found in project '"+project+"'."))
			return
		}
		renderHTML(w, http.StatusOK, downloadWorkbooksPage(creds, project, workbooks))

	case "fetch":
		file, err := h.Transfer.DownloadWorkbook(r.Context(), creds, formString(r, "project"), formString(r, "workbook"))
		if err != nil {
			h.renderError(w, r, "Download", err)
			return
		}
		serveFile(w, file)

	case "archive":
		file, err := h.Transfer.DownloadProjectArchive(r.Context(), creds, formString(r, "project"))
		if err != nil {
			h.renderError(w, r, "Download", err)
			return
		}
		serveFile(w, file)

	default:
		http.NotFound(w, r)
	}
}

// UploadPage renders the workbook upload form
func (h *Handler) UploadPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, uploadPage(h.Defaults))
}

// UploadSubmit publishes the uploaded workbook files into the chosen project
func (h *Handler) UploadSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.renderError(w, r, "Upload", goerr.Wrap(err, "invalid form submission"))
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		renderHTML(w, http.StatusOK, warningPage("Upload Workbooks", "upload",
			"Please choose one or more workbook files to upload."))
		return
	}

	creds := credentialsFromForm(r)
	if err := creds.Validate(); err != nil {
		renderHTML(w, http.StatusOK, warningPage("Upload Workbooks", "upload", err.Error()))
		return
	}

	project := formString(r, "project")
	if project == "" {
		renderHTML(w, http.StatusOK, warningPage("Upload Workbooks", "upload",
			"Please enter a project name."))
		return
	}

	var files []usecase.UploadFile
	for _, fh := range r.MultipartForm.File["files"] {
		f, err := fh.Open()
		if err != nil {
			h.renderError(w, r, "Upload", goerr.Wrap(err, "failed to open uploaded file", goerr.V("filename", fh.Filename)))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			h.renderError(w, r, "Upload", goerr.Wrap(err, "failed to read uploaded file", goerr.V("filename", fh.Filename)))
			return
		}
		files = append(files, usecase.UploadFile{Name: fh.Filename, Data: data})
	}

	newProject := formString(r, "project_mode") == "new"
	report, err := h.Transfer.Upload(r.Context(), creds, project, newProject, files)
	if err != nil {
		h.renderError(w, r, "Upload", err)
		return
	}

	renderHTML(w, http.StatusOK, uploadResultPage(report))
}
