package engine

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/companion/internal/domain"
	"github.com/bnema/companion/internal/ports"
)

const Filler = "Hmm, let me think about that."

type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

type Turn struct {
	Intent    domain.Intent
	Locale    domain.Locale
	Entity    string
	Utterance string
	Target    domain.Locale
}

type Reply struct {
	Text     string
	Speech   string
	Intent   domain.Intent
	Locale   domain.Locale
	Category domain.Category
	Template string
	Entity   string
	Joke     string
}

type Synthesizer struct {
	bundle domain.Bundle
	picker Picker
	clock  ports.Clock
}

func NewSynthesizer(bundle domain.Bundle, picker Picker, clock ports.Clock) *Synthesizer {
	if picker == nil {
		picker = globalPicker{}
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Synthesizer{bundle: bundle, picker: picker, clock: clock}
}

func (s *Synthesizer) Prompt(locale domain.Locale) Reply {
	return s.render(s.bundle.Resolve(locale), domain.CategoryEmpty, Reply{}, nil, nil)
}

func (s *Synthesizer) Synthesize(turn Turn, session *domain.Session) Reply {
	lb := s.bundle.Resolve(turn.Locale)
	reply := Reply{Intent: turn.Intent, Entity: turn.Entity}
	vars := map[string]string{"{utterance}": turn.Utterance, "{entity}": turn.Entity}

	switch turn.Intent {
	case domain.IntentGreeting:
		return s.render(lb, domain.CategoryGreeting, reply, s.greetingVars(lb, session.Mood), vars)
	case domain.IntentAddTask:
		return s.render(lb, domain.CategoryTaskAck, reply, counted(session.TaskCount()), vars)
	case domain.IntentAddNote:
		return s.render(lb, domain.CategoryNoteAck, reply, counted(session.NoteCount()), vars)
	case domain.IntentTellJoke:
		return s.joke(lb, reply)
	case domain.IntentRecallTasks:
		return s.recall(lb, reply, session.Read(turn.Intent), domain.CategoryTasksList, domain.CategoryTasksEmpty)
	case domain.IntentRecallNotes:
		return s.recall(lb, reply, session.Read(turn.Intent), domain.CategoryNotesList, domain.CategoryNotesEmpty)
	case domain.IntentRecallJokes:
		return s.recall(lb, reply, session.Read(turn.Intent), domain.CategoryJokesList, domain.CategoryJokesEmpty)
	case domain.IntentRecallTopics:
		return s.recall(lb, reply, session.Read(turn.Intent), domain.CategoryTopicsList, domain.CategoryTopicsEmpty)
	case domain.IntentSwitchLanguage:
		if turn.Target == "" {
			return s.render(lb, domain.CategoryLanguageUnknown, reply, map[string]string{"{languages}": s.languages()}, vars)
		}
		target := s.bundle.Resolve(turn.Target)
		return s.render(lb, domain.CategoryLanguageSwitch, reply, map[string]string{"{language}": target.DisplayName()}, vars)
	case domain.IntentHelpTopic:
		return s.render(lb, domain.CategoryHelp, reply, nil, vars)
	default:
		reply.Intent = domain.IntentSmallTalk
		return s.render(lb, domain.CategorySmallTalk, reply, nil, vars)
	}
}

func (s *Synthesizer) joke(lb domain.LocaleBundle, reply Reply) Reply {
	reply.Locale = lb.Locale
	reply.Category = domain.CategoryJokeSetup

	jokes := lb.Jokes
	if len(jokes) == 0 {
		jokes = s.bundle.Resolve(domain.DefaultLocale).Jokes
	}
	if len(jokes) == 0 {
		return filler(reply)
	}
	reply.Joke = s.pick(jokes)

	reply.Text = reply.Joke
	if setups := lb.Responses[domain.CategoryJokeSetup]; len(setups) > 0 {
		reply.Template = s.pick(setups)
		reply.Text = tidy(reply.Template) + " " + reply.Joke
	}
	reply.Speech = reply.Text
	return reply
}

func (s *Synthesizer) recall(lb domain.LocaleBundle, reply Reply, items []string, list, empty domain.Category) Reply {
	if len(items) == 0 {
		return s.render(lb, empty, reply, nil, nil)
	}

	var text strings.Builder
	for _, item := range items {
		text.WriteString("\n• ")
		text.WriteString(item)
	}
	return s.render(lb, list, reply, counted(len(items)),
		map[string]string{"{items}": text.String()},
		map[string]string{"{items}": " " + strings.Join(items, ", ")},
	)
}

// Only the first pass is tidied so user text keeps its spacing.
func (s *Synthesizer) render(lb domain.LocaleBundle, category domain.Category, reply Reply, own, user map[string]string, speech ...map[string]string) Reply {
	reply.Locale = lb.Locale
	reply.Category = category

	candidates := lb.Responses[category]
	if len(candidates) == 0 {
		return filler(reply)
	}
	reply.Template = s.pick(candidates)

	base := tidy(replacer(own).Replace(reply.Template))
	reply.Text = replacer(user).Replace(base)
	reply.Speech = reply.Text
	if len(speech) > 0 {
		spoken := make(map[string]string, len(user)+len(speech[0]))
		for k, v := range user {
			spoken[k] = v
		}
		for k, v := range speech[0] {
			spoken[k] = v
		}
		reply.Speech = replacer(spoken).Replace(base)
	}
	return reply
}

func (s *Synthesizer) greetingVars(lb domain.LocaleBundle, mood domain.Mood) map[string]string {
	vars := map[string]string{"{daypart}": lb.Dayparts.At(s.clock.Now().Hour())}
	if phrases := lb.MoodPhrases[mood]; len(phrases) > 0 {
		vars["{mood}"] = s.pick(phrases)
	} else {
		vars["{mood}"] = ""
	}
	return vars
}

func (s *Synthesizer) languages() string {
	names := make([]string, 0, len(s.bundle.Locales))
	for _, entry := range s.bundle.Locales {
		names = append(names, entry.DisplayName())
	}
	return strings.Join(names, ", ")
}

func (s *Synthesizer) pick(candidates []string) string {
	i := s.picker.IntN(len(candidates))
	if i < 0 || i >= len(candidates) {
		i = 0
	}
	return candidates[i]
}

func filler(reply Reply) Reply {
	reply.Template = ""
	reply.Text = Filler
	reply.Speech = Filler
	return reply
}

func counted(n int) map[string]string {
	return map[string]string{"{count}": strconv.Itoa(n)}
}

func replacer(vars map[string]string) *strings.Replacer {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, k, v)
	}
	return strings.NewReplacer(pairs...)
}

var spaceRun = regexp.MustCompile(`[ \t]{2,}`)

func tidy(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}
