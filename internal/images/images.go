// Package images stores and serves uploaded post images. Image writes
// and removals are best-effort collaborators of the post mutations;
// they are never transactional with the store.
package images

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/messagenode/messagenode/internal/middleware"
)

const maxUploadBytes = 8 << 20

// Cleaner removes stored image assets.
type Cleaner struct {
	dir string
	log *logrus.Logger
}

func NewCleaner(dir string, log *logrus.Logger) *Cleaner {
	return &Cleaner{dir: dir, log: log}
}

// Remove deletes the asset a stored image reference points at.
// Failures are logged, not returned: a leaked file must not fail the
// mutation that triggered the cleanup.
func (c *Cleaner) Remove(imageRef string) {
	if imageRef == "" {
		return
	}
	// References look like "images/<name>"; only the name is trusted.
	name := filepath.Base(filepath.Clean(imageRef))
	if name == "." || name == string(filepath.Separator) {
		return
	}
	if err := os.Remove(filepath.Join(c.dir, name)); err != nil && !os.IsNotExist(err) {
		c.log.WithError(err).WithField("image", name).Warn("could not remove image asset")
	}
}

// UploadHandler accepts PUT /post-image multipart uploads from
// authenticated callers and answers with the stored file path.
type UploadHandler struct {
	dir     string
	cleaner *Cleaner
	log     *logrus.Logger
}

func NewUploadHandler(dir string, cleaner *Cleaner, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{dir: dir, cleaner: cleaner, log: log}
}

func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !middleware.FromContext(r.Context()).Authenticated {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusUnprocessableEntity)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "no image provided", http.StatusUnprocessableEntity)
		return
	}
	defer file.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)
	path, err := h.store(file, name)
	if err != nil {
		h.log.WithError(err).Error("could not store uploaded image")
		http.Error(w, "could not store image", http.StatusInternalServerError)
		return
	}

	// The client sends the previous reference when replacing an image.
	if old := r.FormValue("oldPath"); old != "" {
		h.cleaner.Remove(old)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"filePath": path})
}

func (h *UploadHandler) store(src io.Reader, name string) (string, error) {
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return "", fmt.Errorf("create images dir: %w", err)
	}
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return "images/" + name, nil
}

// FileServer serves the stored images under /images/.
func FileServer(dir string) http.Handler {
	return http.StripPrefix("/images/", http.FileServer(http.Dir(dir)))
}
