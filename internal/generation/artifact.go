package generation

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PDFContentType is the MIME type the rendering service returns on success.
const PDFContentType = "application/pdf"

// DefaultFilenameStem is used for the download filename when the resume has no name.
const DefaultFilenameStem = "resume"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Artifact is a generated resume held in a session-owned file
type Artifact struct {
	ID          uuid.UUID
	Path        string // local file holding the bytes
	Filename    string // suggested download name
	ContentType string
	Size        int
	CreatedAt   time.Time
}

// SanitizeFilenameStem collapses whitespace runs in name to single
// underscores, leading and trailing runs included. Path separators are
// replaced as well so the result stays a single file name. An empty name
// yields DefaultFilenameStem.
func SanitizeFilenameStem(name string) string {
	stem := whitespaceRun.ReplaceAllString(name, "_")
	stem = strings.NewReplacer("/", "_", `\`, "_").Replace(stem)
	if stem == "" {
		return DefaultFilenameStem
	}
	return stem
}

// SuggestedFilename returns the download name for a resume belonging to name.
func SuggestedFilename(name string) string {
	return SanitizeFilenameStem(name) + "_resume.pdf"
}

// ArtifactStore keeps generated artifacts as files in one directory.
type ArtifactStore struct {
	dir   string
	owned bool
	mu    sync.Mutex
}

// NewArtifactStore stores artifacts in dir. An empty dir creates a private
// temporary directory that Close removes.
func NewArtifactStore(dir string) (*ArtifactStore, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &ArtifactError{Message: "failed to create artifact directory", Cause: err}
		}
		return &ArtifactStore{dir: dir}, nil
	}
	tmp, err := os.MkdirTemp("", "resume-builder-*")
	if err != nil {
		return nil, &ArtifactError{Message: "failed to create artifact directory", Cause: err}
	}
	return &ArtifactStore{dir: tmp, owned: true}, nil
}

// Dir returns the directory artifacts are written to.
func (s *ArtifactStore) Dir() string {
	return s.dir
}

// Save writes data as a new artifact. name is the resume owner's name and
// only affects the suggested download filename.
func (s *ArtifactStore) Save(data []byte, contentType, name string) (*Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	path := filepath.Join(s.dir, id.String()+".pdf")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, &ArtifactError{Message: "failed to write artifact", Cause: err}
	}
	return &Artifact{
		ID:          id,
		Path:        path,
		Filename:    SuggestedFilename(name),
		ContentType: contentType,
		Size:        len(data),
		CreatedAt:   time.Now(),
	}, nil
}

// Discard removes the artifact's file. Discarding nil or an already removed
// artifact is not an error.
func (s *ArtifactStore) Discard(a *Artifact) error {
	if a == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
		return &ArtifactError{Message: "failed to remove artifact", Cause: err}
	}
	return nil
}

// Close removes the store's directory when the store created it.
func (s *ArtifactStore) Close() error {
	if !s.owned {
		return nil
	}
	return os.RemoveAll(s.dir)
}

// Download copies the artifact into dir under its suggested filename and
// returns the written path.
func Download(a *Artifact, dir string) (string, error) {
	if a == nil {
		return "", &ArtifactError{Message: "no artifact to download"}
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &ArtifactError{Message: "failed to create output directory", Cause: err}
	}

	src, err := os.Open(a.Path)
	if err != nil {
		return "", &ArtifactError{Message: "artifact is no longer available", Cause: err}
	}
	defer func() { _ = src.Close() }()

	target := filepath.Join(dir, a.Filename)
	dst, err := os.Create(target)
	if err != nil {
		return "", &ArtifactError{Message: fmt.Sprintf("failed to create %s", target), Cause: err}
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", &ArtifactError{Message: fmt.Sprintf("failed to write %s", target), Cause: err}
	}
	if err := dst.Close(); err != nil {
		return "", &ArtifactError{Message: fmt.Sprintf("failed to write %s", target), Cause: err}
	}
	return target, nil
}
