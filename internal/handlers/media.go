package handlers

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/Ashupap/ShorelineVision-sub000/internal/logger"
	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/internal/storage"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	formFieldFile     = "file"
	formFieldAlt      = "alt"
	formFieldCategory = "category"
	maxFormValueBytes = 4 << 10
	// Room for the multipart framing and text fields around the file.
	multipartOverhead = 1 << 20
)

// MediaService is the media behaviour the media routes need.
type MediaService interface {
	Upload(ctx context.Context, req services.UploadRequest) (types.MediaFile, error)
	List(ctx context.Context, category string) ([]types.MediaFile, error)
	Update(ctx context.Context, id int, alt *string, category string) (types.MediaFile, error)
	Delete(ctx context.Context, id int) error
}

// ObjectStore serves stored objects back to clients.
type ObjectStore interface {
	SearchPublicObject(ctx context.Context, objectPath string) (storage.ObjectInfo, error)
	DownloadObject(ctx context.Context, key string, w io.Writer) error
}

// MediaHandler provides HTTP handlers for uploaded media.
type MediaHandler struct {
	media   MediaService
	objects ObjectStore
}

func NewMediaHandler(media MediaService, objects ObjectStore) *MediaHandler {
	return &MediaHandler{media: media, objects: objects}
}

// MediaRouter registers media routes on the given router. Uploading does
// not require a session so public forms can attach images.
func MediaRouter(r chi.Router, media MediaService, gate *Gate) {
	handler := NewMediaHandler(media, nil)

	r.Post("/upload", handler.Upload)
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAuth)
		r.Get("/", handler.List)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

// ObjectRouter registers the public object download route.
func ObjectRouter(r chi.Router, objects ObjectStore) {
	handler := NewMediaHandler(nil, objects)
	r.Get("/*", handler.ServeObject)
}

type uploadForm struct {
	filename string
	mimeType string
	data     []byte
	alt      *string
	category string
}

func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadSize+multipartOverhead)

	form, status, message := parseUploadForm(r)
	if status != 0 {
		writeError(w, status, message)
		return
	}

	media, err := h.media.Upload(r.Context(), services.UploadRequest{
		OriginalName: form.filename,
		MimeType:     form.mimeType,
		Data:         form.data,
		Alt:          form.alt,
		Category:     form.category,
		UploadedBy:   userIDFromContext(r.Context()),
	})
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, media)
}

// parseUploadForm streams the multipart body. It accepts exactly one file
// part and never buffers more than the upload limit plus one byte.
func parseUploadForm(r *http.Request) (uploadForm, int, string) {
	reader, err := r.MultipartReader()
	if err != nil {
		return uploadForm{}, http.StatusBadRequest, "Expected a multipart form"
	}

	var form uploadForm
	files := 0
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return uploadForm{}, http.StatusBadRequest, "Invalid multipart form"
		}

		status, message := readUploadPart(part, &form, &files)
		_ = part.Close()
		if status != 0 {
			return uploadForm{}, status, message
		}
	}

	if files == 0 {
		return uploadForm{}, http.StatusBadRequest, "No file uploaded"
	}
	return form, 0, ""
}

func readUploadPart(part *multipart.Part, form *uploadForm, files *int) (int, string) {
	switch part.FormName() {
	case formFieldFile:
		*files++
		if *files > 1 {
			return http.StatusBadRequest, "Only one file can be uploaded at a time"
		}
		data, tooLarge, err := readFileLimited(part, services.MaxUploadSize)
		if tooLarge {
			return http.StatusBadRequest, "File exceeds the 10 MiB limit"
		}
		if err != nil {
			return http.StatusBadRequest, "Failed to read upload"
		}
		form.filename = part.FileName()
		form.mimeType = partMimeType(part)
		form.data = data
	case formFieldAlt, formFieldCategory:
		value, tooLarge, err := readFileLimited(part, maxFormValueBytes)
		if err != nil || tooLarge {
			return http.StatusBadRequest, "Invalid form field " + part.FormName()
		}
		if part.FormName() == formFieldAlt {
			alt := string(value)
			form.alt = &alt
		} else {
			form.category = string(value)
		}
	}
	return 0, ""
}

func partMimeType(part *multipart.Part) string {
	mediaType, _, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mediaType
}

func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.media.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type mediaUpdateRequest struct {
	Alt      *string `json:"alt" validate:"omitempty,max=500"`
	Category string  `json:"category" validate:"max=100"`
}

func (h *MediaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req mediaUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	media, err := h.media.Update(r.Context(), id, req.Alt, req.Category)
	if err != nil {
		writeServiceError(w, r, err, "Media not found")
		return
	}
	writeJSON(w, http.StatusOK, media)
}

// Delete removes the media record. The stored bytes are kept.
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.media.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Media not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ServeObject streams an object from object storage.
func (h *MediaHandler) ServeObject(w http.ResponseWriter, r *http.Request) {
	objectPath := chi.URLParam(r, "*")

	info, err := h.objects.SearchPublicObject(r.Context(), objectPath)
	if err != nil {
		h.writeObjectError(w, r, objectPath, err)
		return
	}

	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	if info.ContentType != "" {
		ww.Header().Set("Content-Type", info.ContentType)
	}
	if info.Size > 0 {
		ww.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	ww.Header().Set("Cache-Control", "public, max-age=3600")
	ww.Header().Set("X-Content-Type-Options", "nosniff")
	ww.Header().Set("Content-Security-Policy", "sandbox")

	if err := h.objects.DownloadObject(r.Context(), info.Key, ww); err != nil {
		if ww.BytesWritten() > 0 {
			logger.Log.Errorw("object stream interrupted", "key", info.Key, "error", err)
			return
		}
		ww.Header().Del("Content-Length")
		ww.Header().Del("Cache-Control")
		h.writeObjectError(ww, r, objectPath, err)
	}
}

func (h *MediaHandler) writeObjectError(w http.ResponseWriter, r *http.Request, objectPath string, err error) {
	if errors.Is(err, storage.ErrObjectNotFound) {
		writeError(w, http.StatusNotFound, "Object not found")
		return
	}
	logger.Log.Errorw("failed to serve object",
		"path", strings.TrimPrefix(objectPath, "/"),
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, msgInternal)
}
