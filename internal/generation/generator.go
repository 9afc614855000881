package generation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/semaphore"
)

// Phase is the lifecycle position of a generation request
type Phase int

// Generation phases
const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// User-facing messages for the non-failed phases
const (
	PendingMessage = "We are preparing your resume. This may take a moment..."
	SuccessMessage = "Your resume has been generated successfully! You can download it now."
)

// State is the generation request state. Artifact is set only when
// Succeeded, Err only when Failed.
type State struct {
	Phase    Phase
	Artifact *Artifact
	Err      *Error
}

// Message returns the text shown to the user for this state.
func (s State) Message() string {
	switch s.Phase {
	case PhasePending:
		return PendingMessage
	case PhaseSucceeded:
		return SuccessMessage
	case PhaseFailed:
		if s.Err != nil {
			return s.Err.Message
		}
	}
	return ""
}

// Generator runs generation requests for one session. At most one request is
// in flight; a new request discards the previous artifact.
type Generator struct {
	client *Client
	store  *ArtifactStore
	logger *slog.Logger
	// sem admits a single request
	sem *semaphore.Weighted

	mu    sync.Mutex
	state State
	epoch uint64
	// inflight is true while sem is held, including after a Reset
	inflight bool
}

// NewGenerator creates a generator that keeps artifacts in store.
func NewGenerator(client *Client, store *ArtifactStore, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		client:   client,
		store:    store,
		logger:   logger,
		sem:      semaphore.NewWeighted(1),
	}
}

// State returns the current state.
func (g *Generator) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Pending reports whether a request is in flight. It stays true after a
// Reset until the discarded request returns, matching when Generate admits
// a new one.
func (g *Generator) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inflight
}

// Generate submits doc and returns the resulting state directly. It fails
// with ErrGenerationPending, leaving the state alone, when a request is
// already in flight, and with ErrGenerationDiscarded when a Reset happened
// while it ran. Rendering failures are not errors: they come back as a
// Failed state.
func (g *Generator) Generate(ctx context.Context, doc types.ResumeDocument) (State, error) {
	if !g.sem.TryAcquire(1) {
		return g.State(), ErrGenerationPending
	}
	defer g.release()

	g.mu.Lock()
	g.inflight = true
	previous := g.state.Artifact
	g.state = State{Phase: PhasePending}
	g.epoch++
	epoch := g.epoch
	g.mu.Unlock()

	if err := g.store.Discard(previous); err != nil {
		g.logger.Warn("failed to discard previous artifact", slog.String("error", err.Error()))
	}

	g.logger.Info("generating resume", slog.String("endpoint", BuildEndpoint(g.client.BaseURL(), PathGeneratePDF)))
	next := g.run(ctx, doc)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.epoch != epoch {
		if next.Artifact != nil {
			_ = g.store.Discard(next.Artifact)
		}
		g.logger.Info("discarding generation result after reset", slog.String("phase", next.Phase.String()))
		return g.state, ErrGenerationDiscarded
	}
	g.state = next
	return next, nil
}

func (g *Generator) release() {
	g.mu.Lock()
	g.inflight = false
	g.mu.Unlock()
	g.sem.Release(1)
}

func (g *Generator) run(ctx context.Context, doc types.ResumeDocument) State {
	data, err := g.client.GeneratePDF(ctx, doc)
	if err != nil {
		genErr := classifyTransportError(err, g.client.BaseURL(), g.client.Timeout())
		g.logger.Warn("resume generation failed",
			slog.String("kind", string(genErr.Kind)),
			slog.String("error", genErr.Message),
		)
		return State{Phase: PhaseFailed, Err: genErr}
	}

	artifact, err := g.store.Save(data, PDFContentType, doc.Name)
	if err != nil {
		g.logger.Error("failed to store artifact", slog.String("error", err.Error()))
		return State{Phase: PhaseFailed, Err: unknownError(err)}
	}

	g.logger.Info("resume generated",
		slog.String("artifact_id", artifact.ID.String()),
		slog.Int("bytes", artifact.Size),
	)
	return State{Phase: PhaseSucceeded, Artifact: artifact}
}

// Reset discards the current artifact and returns to Idle. A request still in
// flight finishes without affecting the reset state.
func (g *Generator) Reset() {
	g.mu.Lock()
	previous := g.state.Artifact
	g.state = State{}
	g.epoch++
	g.mu.Unlock()

	if err := g.store.Discard(previous); err != nil {
		g.logger.Warn("failed to discard artifact", slog.String("error", err.Error()))
	}
}
