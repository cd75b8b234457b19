package request_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuely/shared/failure"
	"venuely/transport/http/request"
)

func multipartRequest(t *testing.T, field, contentType string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="lobby.jpg"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	r := httptest.NewRequest(http.MethodPost, "/upload", body)
	r.Header.Set("Content-Type", writer.FormDataContentType())

	return r
}

func TestFormUpload(t *testing.T) {
	upload, err := request.FormUpload(multipartRequest(t, "file", "image/jpeg", []byte("jpeg-bytes")), 1<<20)
	require.NoError(t, err)

	defer upload.Close()

	assert.Equal(t, "lobby.jpg", upload.FileName)
	assert.Equal(t, "image/jpeg", upload.ContentType)
	assert.Equal(t, int64(len("jpeg-bytes")), upload.Size)
}

func TestFormUpload_MissingFile(t *testing.T) {
	_, err := request.FormUpload(multipartRequest(t, "other", "image/jpeg", []byte("x")), 1<<20)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestFormUpload_NotMultipart(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString("{}"))
	r.Header.Set("Content-Type", "application/json")

	_, err := request.FormUpload(r, 1<<20)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
