package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/internal/storage"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_Anonymous(t *testing.T) {
	f := newFixture(t)
	data := pngBytes(2 << 20)

	f.media.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req services.UploadRequest) (types.MediaFile, error) {
		assert.Equal(t, "boat.png", req.OriginalName)
		assert.Equal(t, "image/png", req.MimeType)
		assert.Equal(t, data, req.Data)
		assert.Equal(t, "harbour at dawn", *req.Alt)
		assert.Equal(t, "blog", req.Category)
		assert.Empty(t, req.UploadedBy)
		return types.MediaFile{ID: 1, URL: "/objects/uploads/abc.png", UploadedBy: types.SystemUserID}, nil
	})

	rec := f.do(multipartRequest(t, "/api/media/upload",
		[]formFile{{field: "file", filename: "boat.png", contentType: "image/png", data: data}},
		map[string]string{"alt": "harbour at dawn", "category": "blog"},
	), nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"/objects/uploads/abc.png"`)
}

func TestUpload_AttributesAuthenticatedUser(t *testing.T) {
	f := newFixture(t)
	cookie := f.addUser("u-1", types.RoleUser, true)

	f.media.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req services.UploadRequest) (types.MediaFile, error) {
		assert.Equal(t, "u-1", req.UploadedBy)
		assert.Nil(t, req.Alt)
		return types.MediaFile{ID: 2}, nil
	})

	rec := f.do(multipartRequest(t, "/api/media/upload",
		[]formFile{{field: "file", filename: "a.jpg", contentType: "image/jpeg", data: []byte("\xff\xd8\xff")}},
		nil,
	), cookie)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpload_RejectedBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		files   []formFile
		message string
	}{
		{
			name:    "too large",
			files:   []formFile{{field: "file", filename: "big.png", contentType: "image/png", data: pngBytes(15 << 20)}},
			message: "File exceeds the 10 MiB limit",
		},
		{
			name: "two files",
			files: []formFile{
				{field: "file", filename: "a.png", contentType: "image/png", data: pngBytes(10)},
				{field: "file", filename: "b.png", contentType: "image/png", data: pngBytes(10)},
			},
			message: "Only one file can be uploaded at a time",
		},
		{
			name:    "no file",
			files:   []formFile{{field: "attachment", filename: "a.png", contentType: "image/png", data: pngBytes(10)}},
			message: "No file uploaded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.media.EXPECT().Upload(gomock.Any(), gomock.Any()).Times(0)

			rec := f.do(multipartRequest(t, "/api/media/upload", tt.files, nil), nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
		})
	}
}

func TestUpload_NotMultipart(t *testing.T) {
	f := newFixture(t)

	rec := f.do(jsonRequest(t, http.MethodPost, "/api/media/upload", map[string]string{"file": "x"}), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{name: "invalid", err: &services.UploadError{Reason: "only image files are allowed"}, status: http.StatusBadRequest, body: "only image files are allowed"},
		{name: "internal", err: fmt.Errorf("save media metadata: %w", errors.New("pq: disk full")), status: http.StatusInternalServerError, body: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.media.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(types.MediaFile{}, tt.err)

			rec := f.do(multipartRequest(t, "/api/media/upload",
				[]formFile{{field: "file", filename: "doc.txt", contentType: "text/plain", data: []byte("hello")}},
				nil,
			), nil)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestMediaManagement_RequiresAuth(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(httptest.NewRequest(http.MethodGet, "/api/media", nil), nil).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(jsonRequest(t, http.MethodPut, "/api/media/1", map[string]string{}), nil).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(httptest.NewRequest(http.MethodDelete, "/api/media/1", nil), nil).Code)
}

func TestMediaManagement(t *testing.T) {
	f := newFixture(t)
	cookie := f.addUser("u-1", types.RoleUser, true)

	f.media.EXPECT().List(gomock.Any(), "products").Return([]types.MediaFile{{ID: 1}}, nil)
	f.media.EXPECT().Update(gomock.Any(), 1, gomock.Any(), "gallery").Return(types.MediaFile{ID: 1, Category: "gallery"}, nil)
	f.media.EXPECT().Delete(gomock.Any(), 7).Return(services.ErrNotFound)

	list := f.do(httptest.NewRequest(http.MethodGet, "/api/media?category=products", nil), cookie)
	assert.Equal(t, http.StatusOK, list.Code)

	update := f.do(jsonRequest(t, http.MethodPut, "/api/media/1", map[string]string{"alt": "x", "category": "gallery"}), cookie)
	assert.Equal(t, http.StatusOK, update.Code)

	missing := f.do(httptest.NewRequest(http.MethodDelete, "/api/media/7", nil), cookie)
	assert.Equal(t, http.StatusNotFound, missing.Code)

	badID := f.do(httptest.NewRequest(http.MethodDelete, "/api/media/abc", nil), cookie)
	assert.Equal(t, http.StatusBadRequest, badID.Code)
}

func TestServeObject(t *testing.T) {
	f := newFixture(t)
	content := pngBytes(512)
	info := storage.ObjectInfo{Key: "uploads/abc.png", ContentType: "image/png", Size: int64(len(content))}

	f.objects.EXPECT().SearchPublicObject(gomock.Any(), "uploads/abc.png").Return(info, nil)
	f.objects.EXPECT().DownloadObject(gomock.Any(), "uploads/abc.png", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(content))
		return err
	})

	rec := f.do(httptest.NewRequest(http.MethodGet, "/objects/uploads/abc.png", nil), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "512", rec.Header().Get("Content-Length"))
	assert.Equal(t, "sandbox", rec.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestServeObject_Errors(t *testing.T) {
	f := newFixture(t)
	f.objects.EXPECT().SearchPublicObject(gomock.Any(), "missing.png").Return(storage.ObjectInfo{}, storage.ErrObjectNotFound)
	f.objects.EXPECT().SearchPublicObject(gomock.Any(), "logo.png").Return(storage.ObjectInfo{}, storage.ErrStorageUnavailable)

	notFound := f.do(httptest.NewRequest(http.MethodGet, "/objects/missing.png", nil), nil)
	assert.Equal(t, http.StatusNotFound, notFound.Code)

	unavailable := f.do(httptest.NewRequest(http.MethodGet, "/objects/logo.png", nil), nil)
	assert.Equal(t, http.StatusInternalServerError, unavailable.Code)
	assert.Equal(t, "Internal server error", decodeError(t, unavailable).Message)
}

func TestServeObject_DownloadFailsBeforeWrite(t *testing.T) {
	f := newFixture(t)
	f.objects.EXPECT().SearchPublicObject(gomock.Any(), "uploads/gone.png").Return(storage.ObjectInfo{Key: "uploads/gone.png", ContentType: "image/png", Size: 10}, nil)
	f.objects.EXPECT().DownloadObject(gomock.Any(), "uploads/gone.png", gomock.Any()).Return(storage.ErrObjectNotFound)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/objects/uploads/gone.png", nil), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Length"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
