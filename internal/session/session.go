// Package session holds the state of one resume-building session: the
// document being edited, the wizard position and the generation request.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/review"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

var (
	// ErrNotOnReviewStep is returned by Submit outside the Review & Submit section.
	ErrNotOnReviewStep = errors.New("resume can only be submitted from the review step")
	// ErrNoArtifact is returned by Download when no generated resume is available.
	ErrNoArtifact = errors.New("no generated resume is available")
)

// Options configures a session
type Options struct {
	Client *generation.Client
	// ArtifactDir holds generated files. Empty uses a temporary directory
	// removed by Close.
	ArtifactDir string
	Logger      *slog.Logger
}

// Session is the explicitly owned state of one user flow. All methods are
// safe for concurrent use; only Preview, Submit and LoadSample block on the
// network, and they do so without holding the session lock.
type Session struct {
	id        uuid.UUID
	logger    *slog.Logger
	client    *generation.Client
	store     *generation.ArtifactStore
	generator *generation.Generator

	mu     sync.Mutex
	doc    types.ResumeDocument
	wizard *wizard.Controller
}

// New creates a session with the default document on the first section.
func New(opts Options) (*Session, error) {
	client := opts.Client
	if client == nil {
		client = generation.NewClient(nil)
	}

	store, err := generation.NewArtifactStore(opts.ArtifactDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("session_id", id.String()))

	return &Session{
		id:        id,
		logger:    logger,
		client:    client,
		store:     store,
		generator: generation.NewGenerator(client, store, logger),
		doc:       types.DefaultResumeDocument(),
		wizard:    wizard.NewController(),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Document returns a copy of the current document.
func (s *Session) Document() types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Edit replaces the document with update(current). update receives a copy and
// is expected to be one of the pure document operations.
func (s *Session) Edit(update func(types.ResumeDocument) types.ResumeDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := update(s.doc.Clone())
	next.Normalize()
	s.doc = next
}

// Replace swaps in a whole document, e.g. one read from a file.
func (s *Session) Replace(doc types.ResumeDocument) {
	next := doc.Clone()
	next.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = next
}

// Step returns the active wizard step.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Active()
}

// Next advances one section.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Next()
}

// Back moves to the previous step.
func (s *Session) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.Back()
}

// GoTo jumps to an editable section.
func (s *Session) GoTo(step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wizard.GoTo(step)
}

// Reset restores the default document, returns to the first section and
// discards any generated resume.
func (s *Session) Reset() {
	s.mu.Lock()
	s.doc = types.DefaultResumeDocument()
	s.wizard.Reset()
	s.mu.Unlock()

	s.generator.Reset()
	s.logger.Info("session reset")
}

// Review builds the review summary of the current document.
func (s *Session) Review() review.Summary {
	return review.Build(s.Document())
}

// LoadSample replaces the document with the service's sample resume. On
// failure the document is left untouched and a *generation.SampleDataError
// is returned.
func (s *Session) LoadSample(ctx context.Context) error {
	doc, err := s.client.FetchSampleData(ctx)
	if err != nil {
		var genErr *generation.Error
		if !errors.As(err, &genErr) {
			genErr = &generation.Error{Kind: generation.KindUnknown, Message: "Error: " + err.Error(), Cause: err}
		}
		s.logger.Warn("failed to load sample data",
			slog.String("kind", string(genErr.Kind)),
			slog.String("error", genErr.Message),
		)
		return &generation.SampleDataError{Cause: genErr}
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	s.logger.Info("sample data loaded", slog.String("name", doc.Name))
	return nil
}

// Generation returns the current generation state.
func (s *Session) Generation() generation.State {
	return s.generator.State()
}

// Preview generates the current document without moving the wizard.
func (s *Session) Preview(ctx context.Context) (generation.State, error) {
	return s.generator.Generate(ctx, s.Document())
}

// Submit generates the current document from the review step. On success the
// wizard enters the result step; on failure the step is unchanged so the user
// can retry. A Reset while the request runs yields
// generation.ErrGenerationDiscarded.
func (s *Session) Submit(ctx context.Context) (generation.State, error) {
	s.mu.Lock()
	if !s.wizard.IsLastSection() {
		step := s.wizard.Active()
		s.mu.Unlock()
		return s.generator.State(), fmt.Errorf("%w (current step: %s)", ErrNotOnReviewStep, wizard.Title(step))
	}
	doc := s.doc.Clone()
	s.mu.Unlock()

	state, err := s.generator.Generate(ctx, doc)
	if err != nil {
		return state, err
	}

	if state.Phase == generation.PhaseSucceeded {
		s.mu.Lock()
		s.wizard.Finish()
		s.mu.Unlock()
	}
	return state, nil
}

// Download writes the generated resume into dir and returns its path.
func (s *Session) Download(dir string) (string, error) {
	state := s.generator.State()
	if state.Phase != generation.PhaseSucceeded || state.Artifact == nil {
		return "", ErrNoArtifact
	}

	path, err := generation.Download(state.Artifact, dir)
	if err != nil {
		return "", err
	}
	s.logger.Info("resume downloaded", slog.String("path", path))
	return path, nil
}

// Close discards the generated resume and releases the artifact directory.
func (s *Session) Close() error {
	s.generator.Reset()
	return s.store.Close()
}
