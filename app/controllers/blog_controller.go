package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"quickblog/app/services"

	"github.com/gorilla/mux"
)

// DefaultMaxUploadBytes caps multipart bodies when no limit is configured.
const DefaultMaxUploadBytes = 10 << 20

// BlogController handles HTTP requests for blog posts
type BlogController struct {
	blogService    *services.BlogService
	maxUploadBytes int64
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService, maxUploadBytes int64) *BlogController {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &BlogController{
		blogService:    blogService,
		maxUploadBytes: maxUploadBytes,
	}
}

// idRequest is the body of the delete and toggle-publish calls.
type idRequest struct {
	ID string `json:"id"`
}

// Create handles POST /api/blog/add. The body is multipart with the blog
// fields JSON encoded in "blog" and the cover image in "image".
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > bc.maxUploadBytes {
		bc.sendTooLarge(w)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, bc.maxUploadBytes)
	if err := r.ParseMultipartForm(bc.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			bc.sendTooLarge(w)
			return
		}
		sendError(w, r, err)
		return
	}

	var in services.BlogInput
	if err := json.Unmarshal([]byte(r.FormValue("blog")), &in); err != nil {
		sendError(w, r, err)
		return
	}

	var image *services.ImageUpload
	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		sendError(w, r, err)
		return
	default:
		defer file.Close()
		image = &services.ImageUpload{FileName: header.Filename, Content: file}
	}

	if _, err := bc.blogService.CreateBlog(r.Context(), in, image); err != nil {
		sendError(w, r, err)
		return
	}
	sendMessage(w, http.StatusCreated, "Blog added successfully")
}

// Index handles GET /api/blog/all
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	blogs, err := bc.blogService.ListPublished(r.Context())
	if err != nil {
		sendError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, blogs)
}

// Show handles GET /api/blog/{blogId}
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	blog, err := bc.blogService.GetBlog(r.Context(), mux.Vars(r)["blogId"])
	if err != nil {
		sendError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, blog)
}

// Delete handles POST /api/blog/delete
func (bc *BlogController) Delete(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err)
		return
	}
	if err := bc.blogService.DeleteBlog(r.Context(), req.ID); err != nil {
		sendError(w, r, err)
		return
	}
	sendMessage(w, http.StatusOK, "Blog deleted successfully")
}

// TogglePublish handles POST /api/blog/toggle-publish
func (bc *BlogController) TogglePublish(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, r, err)
		return
	}
	blog, err := bc.blogService.TogglePublish(r.Context(), req.ID)
	if err != nil {
		sendError(w, r, err)
		return
	}
	sendMessage(w, http.StatusOK, fmt.Sprintf("Blog %s successfully", blog.Status()))
}

func (bc *BlogController) sendTooLarge(w http.ResponseWriter) {
	sendMessage(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Upload exceeds %d bytes", bc.maxUploadBytes))
}
