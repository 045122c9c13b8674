package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bnema/companion/internal/domain"
	"github.com/bnema/companion/internal/engine"
	"github.com/bnema/companion/internal/ports"
)

var ErrEmptyCommand = errors.New("no utterances given")

type Responder interface {
	Respond(session *domain.Session, utterance string) engine.Reply
}

type Service struct {
	mu      sync.Mutex
	engine  Responder
	session *domain.Session
	speaker ports.Speaker
	logger  *zap.Logger
}

func NewService(responder Responder, locale domain.Locale, speaker ports.Speaker, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		engine:  responder,
		session: domain.NewSession(locale),
		speaker: speaker,
		logger:  logger,
	}
}

func (s *Service) Respond(ctx context.Context, utterance string) engine.Reply {
	s.mu.Lock()
	reply := s.engine.Respond(s.session, utterance)
	s.mu.Unlock()

	s.speak(ctx, reply)
	return reply
}

func (s *Service) Say(ctx context.Context, cmd SayCommand) ([]engine.Reply, error) {
	if len(cmd.Utterances) == 0 {
		return nil, ErrEmptyCommand
	}

	replies := make([]engine.Reply, 0, len(cmd.Utterances))
	for _, utterance := range cmd.Utterances {
		if err := ctx.Err(); err != nil {
			return replies, fmt.Errorf("say: %w", err)
		}
		replies = append(replies, s.Respond(ctx, utterance))
	}

	return replies, nil
}

func (s *Service) Summary() MemorySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return MemorySummary{
		SessionID: s.session.ID,
		Locale:    s.session.Locale,
		Mood:      s.session.Mood,
		Tasks:     s.session.Read(domain.IntentRecallTasks),
		Notes:     s.session.Read(domain.IntentRecallNotes),
		Jokes:     s.session.Read(domain.IntentRecallJokes),
		Topics:    s.session.Read(domain.IntentRecallTopics),
		Turns:     s.session.TurnCount(),
	}
}

func (s *Service) Locale() domain.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Locale
}

func (s *Service) TaskCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.TaskCount()
}

func (s *Service) NoteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.NoteCount()
}

func (s *Service) JokeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.JokeCount()
}

func (s *Service) speak(ctx context.Context, reply engine.Reply) {
	if s.speaker == nil || reply.Speech == "" {
		return
	}

	if err := s.speaker.Speak(ctx, reply.Locale, reply.Speech); err != nil {
		s.logger.Warn("speak reply",
			zap.String("locale", string(reply.Locale)),
			zap.String("intent", string(reply.Intent)),
			zap.Error(err),
		)
	}
}
