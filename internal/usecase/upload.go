package usecase

import "io"

// FileUpload carries one multipart file from the delivery layer into a
// usecase. Content is consumed exactly once by the blob store upload.
type FileUpload struct {
	Content     io.Reader
	ContentType string
	Filename    string
}
