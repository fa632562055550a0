package advisor

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/constants"
)

// Stage identifies which selector stage produced a reply.
type Stage string

const (
	StageTemplate   Stage = "template"
	StageContextual Stage = "contextual"
	StageProfile    Stage = "profile"
	StageGeneric    Stage = "generic"
)

// Result is one classified chat turn: the chosen response plus the
// confidence trace of the stage that emitted it.
type Result struct {
	Response   string
	Confidence float64
	Category   string
	Stage      Stage
}

// Engine is the rule-based advisor. All state is the read-only catalog,
// so a single instance serves concurrent requests.
type Engine struct {
	catalog *Catalog
	logger  *zap.Logger

	mu   sync.Mutex
	pick func(n int) int
}

type Option func(*Engine)

// WithRandSource pins the response pool selection, used by tests to
// make classification reproducible.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) {
		r := rand.New(src)
		e.pick = r.Intn
	}
}

// NewEngine validates the catalog and returns a ready engine. A nil
// catalog selects the built-in default.
func NewEngine(catalog *Catalog, logger *zap.Logger, opts ...Option) (*Engine, error) {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	e := &Engine{
		catalog: catalog,
		logger:  logger,
		pick:    r.Intn,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Classify runs the selector cascade over one message. Template match
// first, then contextual analysis with category priorities, then
// profile synthesis, and finally the generic pool. Something always
// answers.
func (e *Engine) Classify(message string) Result {
	msg := Normalize(Sanitize(message))

	if r := e.tryTemplate(msg); r != nil {
		e.logStage(*r, msg)
		return *r
	}
	if r := e.tryContextual(msg); r != nil {
		e.logStage(*r, msg)
		return *r
	}
	if r := e.tryProfile(msg); r != nil {
		e.logStage(*r, msg)
		return *r
	}

	r := Result{
		Response:   e.pickResponse(e.catalog.GenericPool),
		Confidence: 0,
		Stage:      StageGeneric,
	}
	e.logStage(r, msg)
	return r
}

func (e *Engine) tryTemplate(msg string) *Result {
	best := e.matchTemplates(msg)
	if best == nil || best.Confidence < constants.AdvisorThresholds.TemplateAccept {
		return nil
	}
	best.Stage = StageTemplate
	return best
}

func (e *Engine) tryContextual(msg string) *Result {
	candidates := e.analyzeContextual(msg)
	top := e.resolvePriority(candidates)
	if top == nil || top.Confidence < constants.AdvisorThresholds.ContextualAccept {
		return nil
	}
	top.Stage = StageContextual
	return top
}

func (e *Engine) tryProfile(msg string) *Result {
	profile := extractProfile(msg)
	if profile.Empty() {
		return nil
	}
	return &Result{
		Response:   e.synthesizeAdvice(profile),
		Confidence: profileConfidence,
		Category:   profile.primaryTag(),
		Stage:      StageProfile,
	}
}

// pickResponse draws one entry from a pool. Guarded because math/rand
// sources are not safe for concurrent use.
func (e *Engine) pickResponse(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	if len(pool) == 1 {
		return pool[0]
	}
	e.mu.Lock()
	idx := e.pick(len(pool))
	e.mu.Unlock()
	return pool[idx]
}

func (e *Engine) logStage(r Result, msg string) {
	if e.logger == nil {
		return
	}
	e.logger.Debug("advisor classified message",
		zap.String("stage", string(r.Stage)),
		zap.String("category", r.Category),
		zap.Float64("confidence", r.Confidence),
		zap.Int("messageLength", len(msg)))
}
