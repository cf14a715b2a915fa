package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/Ashupap/ShorelineVision-sub000/internal/handlers"
	"github.com/Ashupap/ShorelineVision-sub000/internal/services"
	"github.com/Ashupap/ShorelineVision-sub000/internal/session"
	"github.com/Ashupap/ShorelineVision-sub000/types"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testCookie = "test.sid"

// fixture wires the handlers the way the server does, with every
// collaborator mocked. Requests carrying the test cookie are resolved to
// the user registered under its value.
type fixture struct {
	ctrl      *gomock.Controller
	auth      *handlers.MockAuthService
	sessions  *handlers.MockSessionManager
	authn     *handlers.MockAuthenticator
	media     *handlers.MockMediaService
	objects   *handlers.MockObjectStore
	userRepo  *services.MockUserRepository
	blogRepo  *services.MockBlogRepository
	inqRepo   *services.MockInquiryRepository
	notifier  *services.MockInquiryNotifier
	products  *services.MockProductRepository
	reviews   *services.MockTestimonialRepository
	content   *services.MockContentRepository
	router    chi.Router
	usersByID map[string]types.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		auth:      handlers.NewMockAuthService(ctrl),
		sessions:  handlers.NewMockSessionManager(ctrl),
		authn:     handlers.NewMockAuthenticator(ctrl),
		media:     handlers.NewMockMediaService(ctrl),
		objects:   handlers.NewMockObjectStore(ctrl),
		userRepo:  services.NewMockUserRepository(ctrl),
		blogRepo:  services.NewMockBlogRepository(ctrl),
		inqRepo:   services.NewMockInquiryRepository(ctrl),
		notifier:  services.NewMockInquiryNotifier(ctrl),
		products:  services.NewMockProductRepository(ctrl),
		reviews:   services.NewMockTestimonialRepository(ctrl),
		content:   services.NewMockContentRepository(ctrl),
		usersByID: map[string]types.User{},
	}

	f.sessions.EXPECT().UserID(gomock.Any()).DoAndReturn(func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(testCookie)
		if err != nil {
			return "", session.ErrNoSession
		}
		return cookie.Value, nil
	}).AnyTimes()
	f.authn.EXPECT().Authenticate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (types.User, error) {
		user, ok := f.usersByID[id]
		if !ok || !user.IsActive {
			return types.User{}, services.ErrUnauthenticated
		}
		return user, nil
	}).AnyTimes()

	gate := handlers.NewGate(f.sessions, f.authn)
	r := chi.NewRouter()
	r.Use(gate.LoadUser)
	r.Route("/api", func(r chi.Router) {
		handlers.AuthRouter(r, f.auth, f.sessions, nil)
		r.Route("/users", func(r chi.Router) {
			handlers.UserRouter(r, services.NewUserService(f.userRepo), gate)
		})
		r.Route("/media", func(r chi.Router) {
			handlers.MediaRouter(r, f.media, gate)
		})
		r.Route("/blog", func(r chi.Router) {
			handlers.BlogRouter(r, services.NewBlogService(f.blogRepo), gate)
		})
		r.Route("/inquiries", func(r chi.Router) {
			handlers.InquiryRouter(r, services.NewInquiryService(f.inqRepo, f.notifier), gate, nil)
		})
		r.Route("/products", func(r chi.Router) {
			handlers.ProductRouter(r, services.NewProductService(f.products), gate)
		})
		r.Route("/testimonials", func(r chi.Router) {
			handlers.TestimonialRouter(r, services.NewTestimonialService(f.reviews), gate)
		})
		r.Route("/content", func(r chi.Router) {
			handlers.ContentRouter(r, services.NewContentService(f.content), gate)
		})
		r.Route("/settings", func(r chi.Router) {
			handlers.SettingsRouter(r, services.NewContentService(f.content), gate)
		})
	})
	r.Route("/objects", func(r chi.Router) {
		handlers.ObjectRouter(r, f.objects)
	})
	f.router = r
	return f
}

func (f *fixture) addUser(id, role string, active bool) *http.Cookie {
	f.usersByID[id] = types.User{ID: id, Username: id, Role: role, IsActive: active, PasswordHash: "secret-hash"}
	return &http.Cookie{Name: testCookie, Value: id}
}

func (f *fixture) do(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

type formFile struct {
	field, filename, contentType string
	data                         []byte
}

func multipartRequest(t *testing.T, target string, files []formFile, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(f.data))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, "\x89PNG\r\n\x1a\n")
	return data
}
