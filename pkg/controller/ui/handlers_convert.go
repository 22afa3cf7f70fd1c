package ui

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// ConvertPage renders the roster conversion form
func (h *Handler) ConvertPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, convertPage())
}

// ConvertSubmit restructures the uploaded roster and returns the CSV.
// Conversion is purely local; no connection is made.
func (h *Handler) ConvertSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.renderError(w, r, "Convert", goerr.Wrap(err, "invalid form submission"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		renderHTML(w, http.StatusOK, warningPage("Convert User Roster to Import CSV", "convert",
			"Please upload a roster file first."))
		return
	}
	defer file.Close()

	converted, err := h.Convert.Roster(header.Filename, file)
	if err != nil {
		h.renderError(w, r, "Convert", err)
		return
	}

	serveFile(w, converted)
}
