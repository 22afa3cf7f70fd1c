package model

// File is an in-memory file handed back to the browser as a download
type File struct {
	Name        string
	ContentType string
	Data        []byte
}
