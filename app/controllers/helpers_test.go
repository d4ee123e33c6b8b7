package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quickblog/app/images"
	"quickblog/app/repositories/mock"
	"quickblog/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type fakeImageHost struct {
	uploads   int
	uploadErr error
}

func (f *fakeImageHost) Upload(ctx context.Context, file []byte, fileName, folder string) (*images.UploadResult, error) {
	f.uploads++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &images.UploadResult{FileID: "f1", Name: fileName, FilePath: folder + "/" + fileName}, nil
}

func (f *fakeImageHost) URL(path string, transformations ...images.Transformation) (string, error) {
	return "https://ik.example.com/tr:" + transformations[0].String() + path, nil
}

type testEnv struct {
	router   *mux.Router
	blogs    *mock.BlogRepository
	comments *mock.CommentRepository
	host     *fakeImageHost
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		blogs:    mock.NewBlogRepository(),
		comments: mock.NewCommentRepository(),
		host:     &fakeImageHost{},
	}
	blogController := NewBlogController(services.NewBlogService(env.blogs, env.host), 1<<20)
	commentController := NewCommentController(services.NewCommentService(env.comments))

	router := mux.NewRouter()
	router.HandleFunc("/api/blog/add", blogController.Create).Methods("POST")
	router.HandleFunc("/api/blog/all", blogController.Index).Methods("GET")
	router.HandleFunc("/api/blog/delete", blogController.Delete).Methods("POST")
	router.HandleFunc("/api/blog/toggle-publish", blogController.TogglePublish).Methods("POST")
	router.HandleFunc("/api/blog/add-comment", commentController.Create).Methods("POST")
	router.HandleFunc("/api/blog/comments", commentController.Index).Methods("POST")
	router.HandleFunc("/api/blog/{blogId}", blogController.Show).Methods("GET")
	env.router = router
	return env
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return env.do(req)
}

// multipartBlog builds an add-blog request. An empty fileName leaves out the image.
func multipartBlog(t *testing.T, blogJSON, fileName string, file []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("blog", blogJSON))
	if fileName != "" {
		part, err := mw.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(file))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/blog/add", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var res messageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Message
}
