package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/bnema/companion/internal/domain"
	"github.com/bnema/companion/internal/ports"
)

type Engine struct {
	bundle     domain.Bundle
	detector   *Detector
	classifier *Classifier
	extractor  *Extractor
	languages  *LanguageResolver
	mood       *moodScorer
	synth      *Synthesizer
	clock      ports.Clock
	logger     *zap.Logger
}

type options struct {
	picker Picker
	clock  ports.Clock
	logger *zap.Logger
}

type Option func(*options)

func WithPicker(picker Picker) Option {
	return func(o *options) {
		if picker != nil {
			o.picker = picker
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(o *options) {
		if seed != 0 {
			o.picker = rand.New(rand.NewPCG(seed, seed))
		}
	}
}

func WithClock(clock ports.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func New(bundle domain.Bundle, opts ...Option) (*Engine, error) {
	o := options{picker: globalPicker{}, clock: ports.SystemClock{}, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("validate bundle: %w", err)
	}
	resolved, err := bundle.ResolveInheritance()
	if err != nil {
		return nil, fmt.Errorf("resolve bundle: %w", err)
	}

	classifier, err := NewClassifier(resolved)
	if err != nil {
		return nil, fmt.Errorf("compile intent patterns: %w", err)
	}
	extractor, err := NewExtractor(resolved)
	if err != nil {
		return nil, fmt.Errorf("compile capture patterns: %w", err)
	}

	return &Engine{
		bundle:     resolved,
		detector:   NewDetector(resolved),
		classifier: classifier,
		extractor:  extractor,
		languages:  NewLanguageResolver(resolved),
		mood:       newMoodScorer(resolved),
		synth:      NewSynthesizer(resolved, o.picker, o.clock),
		clock:      o.clock,
		logger:     o.logger,
	}, nil
}

func (e *Engine) Bundle() domain.Bundle {
	return e.bundle
}

// Respond must not be called concurrently with the same session.
func (e *Engine) Respond(session *domain.Session, utterance string) Reply {
	if session == nil {
		session = domain.NewSession(domain.DefaultLocale)
	}

	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return e.synth.Prompt(session.Locale)
	}

	session.SetLocale(e.detector.Detect(trimmed, session.Locale))
	intent := e.classifier.Classify(trimmed)
	entity := e.extractor.Extract(intent, trimmed)
	session.SetMood(e.mood.next(session.Mood, trimmed))

	turn := Turn{Intent: intent, Utterance: trimmed}
	switch {
	case intent == domain.IntentSwitchLanguage:
		if target, ok := e.languages.Resolve(trimmed); ok {
			session.SetLocale(target)
			turn.Target = target
		}
	case intent.Extracts():
		turn.Entity = entity
		session.Apply(intent, entity)
	}
	turn.Locale = session.Locale

	reply := e.synth.Synthesize(turn, session)
	session.RecordJoke(reply.Joke)
	session.RecordTopic(trimmed, intent, e.clock.Now())

	e.logger.Debug("turn handled",
		zap.String("session", session.ID),
		zap.String("locale", string(reply.Locale)),
		zap.String("intent", string(intent)),
		zap.String("category", string(reply.Category)),
		zap.Int("entity_len", len(turn.Entity)),
	)

	return reply
}
