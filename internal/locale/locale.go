// Package locale renders the board's human-facing words in the configured
// language. Only the day labels, the offset suffix, table headings and the
// status line are translated; machine-readable output always uses the
// canonical English literals.
package locale

import (
	"embed"
	"encoding/json"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/mrz1836/worldclock/internal/zone"
)

//go:embed locales/*.json
var localeFS embed.FS

// Message ids.
const (
	msgDayYesterday = "DayYesterday"
	msgDayToday     = "DayToday"
	msgDayTomorrow  = "DayTomorrow"
	msgHourOffset   = "HourOffset"
	msgStatusLine   = "StatusLine"

	MsgColumnTitle  = "ColumnTitle"
	MsgColumnZone   = "ColumnZone"
	MsgColumnTime   = "ColumnTime"
	MsgColumnDay    = "ColumnDay"
	MsgColumnOffset = "ColumnOffset"
)

// Localizer renders messages in one language, falling back to English.
type Localizer struct {
	lang      string
	localizer *i18n.Localizer
	logger    zerolog.Logger
}

// New builds a Localizer for lang ("en", "ja", "ja-JP", ...). Languages
// without a message file fall back to English.
func New(lang string, logger zerolog.Logger) *Localizer {
	bundle := newBundle(logger)
	tag := matchLanguage(bundle, lang)

	return &Localizer{
		lang:      tag.String(),
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		logger:    logger,
	}
}

// newBundle loads every embedded active.<lang>.json file.
func newBundle(logger zerolog.Logger) *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		logger.Error().Err(err).Msg("failed to read embedded locales")
		return bundle
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			logger.Error().Err(err).Str("file", name).Msg("failed to load locale")
		}
	}
	return bundle
}

// matchLanguage picks the best supported tag for lang.
func matchLanguage(bundle *i18n.Bundle, lang string) language.Tag {
	requested, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return language.English
	}
	matcher := language.NewMatcher(bundle.LanguageTags())
	_, idx, confidence := matcher.Match(requested)
	if confidence == language.No {
		return language.English
	}
	return bundle.LanguageTags()[idx]
}

// Supported returns the languages with an embedded message file.
func Supported() []string {
	bundle := newBundle(zerolog.Nop())
	tags := bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}

// Language returns the language actually used.
func (l *Localizer) Language() string {
	return l.lang
}

// DayLabel renders a day label. DayNone renders as the empty string.
func (l *Localizer) DayLabel(d zone.DayLabel) string {
	switch d {
	case zone.DayYesterday:
		return l.message(msgDayYesterday, nil)
	case zone.DayToday:
		return l.message(msgDayToday, nil)
	case zone.DayTomorrow:
		return l.message(msgDayTomorrow, nil)
	default:
		return ""
	}
}

// Hours renders a signed hour offset with its unit, e.g. "+3h" or "-17時間".
func (l *Localizer) Hours(offset int) string {
	return l.message(msgHourOffset, map[string]any{"Offset": zone.FormatOffset(offset)})
}

// StatusLine renders the watch footer.
func (l *Localizer) StatusLine(count int64, stamp, interval string) string {
	return l.message(msgStatusLine, map[string]any{
		"Count":    count,
		"Time":     stamp,
		"Interval": interval,
	})
}

// Message renders an arbitrary message id without template data.
func (l *Localizer) Message(id string) string {
	return l.message(id, nil)
}

func (l *Localizer) message(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		l.logger.Debug().Err(err).Str("message", id).Msg("missing translation")
		return id
	}
	return msg
}
