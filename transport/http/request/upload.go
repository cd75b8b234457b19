package request

import (
	"mime/multipart"
	"net/http"
	"venuely/shared/constant"
	"venuely/shared/failure"
)

// Upload is a single file read from a multipart form. Close releases it.
type Upload struct {
	File        multipart.File
	FileName    string
	ContentType string
	Size        int64
}

func (u Upload) Close() error {
	return u.File.Close() //nolint:wrapcheck
}

// FormUpload reads the "file" part of a multipart request, buffering up to maxMemory bytes in memory.
func FormUpload(r *http.Request, maxMemory int64) (Upload, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return Upload{}, failure.BadRequestFromString("request must be multipart/form-data with a file field")
	}

	file, header, err := r.FormFile(constant.FormFile)
	if err != nil {
		return Upload{}, failure.BadRequestFromString("file is required")
	}

	contentType := header.Header.Get(constant.RequestHeaderContentType)
	if contentType == constant.Empty {
		contentType = "application/octet-stream"
	}

	return Upload{
		File:        file,
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	}, nil
}
