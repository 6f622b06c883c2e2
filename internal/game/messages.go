package game

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// messageDomain is the gettext domain holding player-facing text.
const messageDomain = "default"

// maxMessages is how many log lines a session keeps.
const maxMessages = 50

// Translator renders message ids in the configured language. English ids
// double as format strings when no catalog is loaded.
type Translator struct {
	locale *gotext.Locale
	plain  map[string]*gotext.Translation
}

// NewTranslator loads <dir>/<lang>/LC_MESSAGES/default.po. An empty dir
// gives an English-only translator.
func NewTranslator(dir, lang string) *Translator {
	if dir == "" {
		return &Translator{}
	}
	l := gotext.NewLocale(dir, lang)
	l.AddDomain(messageDomain)
	return &Translator{locale: l, plain: l.GetTranslations()}
}

// Get translates id and formats it with args.
func (t *Translator) Get(id string, args ...any) string {
	if t == nil || t.locale == nil {
		if len(args) == 0 {
			return id
		}
		return fmt.Sprintf(id, args...)
	}
	return t.locale.Get(id, args...)
}

// T translates a bare name such as a creature or a facing. The text is never
// treated as a format string.
func (t *Translator) T(name string) string {
	if t == nil {
		return name
	}
	if tr, ok := t.plain[name]; ok {
		return tr.Get()
	}
	return name
}

// Message ids.
const (
	msgWelcome       = "Welcome to the dungeon. Find the stairs down."
	msgBlocked       = "The %s blocks your way."
	msgWall          = "You bump into a wall."
	msgSeeItem       = "You see %s here."
	msgDescend       = "You descend to floor %d."
	msgAscend        = "You climb back up to floor %d."
	msgNoStairsDown  = "There are no stairs down here."
	msgNoStairsUp    = "There are no stairs up here."
	msgDeepest       = "You have reached the deepest floor."
	msgTopFloor      = "The way up is sealed."
	msgNoPath        = "You cannot find a way to the stairs."
	msgTravelArrived = "You stand on the stairs."
	msgFacing        = "You face %s."
)

// log appends a message, dropping the oldest past maxMessages.
func (s *Session) log(id string, args ...any) {
	s.messages = append(s.messages, s.tr.Get(id, args...))
	if over := len(s.messages) - maxMessages; over > 0 {
		s.messages = s.messages[over:]
	}
}
