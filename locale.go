package i18ndate

import (
	"golang.org/x/text/language"
)

type (
	localePatterns struct {
		tag      language.Tag
		date     string
		dateTime string
	}

	locales []*localePatterns
)

var defaultLocale = &localePatterns{tag: language.AmericanEnglish, date: "MM/DD/YYYY", dateTime: "MM/DD/YYYY hh:mm AM/PM"}

// knownLocales first entry is used when nothing matches
var knownLocales = locales{
	defaultLocale,
	{tag: language.BritishEnglish, date: "DD/MM/YYYY", dateTime: "DD/MM/YYYY HH:mm"},
	{tag: language.German, date: "DD.MM.YYYY", dateTime: "DD.MM.YYYY HH:mm"},
	{tag: language.French, date: "DD/MM/YYYY", dateTime: "DD/MM/YYYY HH:mm"},
	{tag: language.BrazilianPortuguese, date: "DD/MM/YYYY", dateTime: "DD/MM/YYYY HH:mm:ss"},
	{tag: language.Spanish, date: "DD/MM/YYYY", dateTime: "DD/MM/YYYY HH:mm"},
	{tag: language.Italian, date: "DD/MM/YYYY", dateTime: "DD/MM/YYYY HH:mm"},
	{tag: language.Japanese, date: "YYYY/MM/DD", dateTime: "YYYY/MM/DD HH:mm"},
}

var localeMatcher = language.NewMatcher(knownLocales.tags())

func (l locales) tags() []language.Tag {
	var result = make([]language.Tag, 0, len(l))
	for _, item := range l {
		result = append(result, item.tag)
	}
	return result
}

// matchLocale returns closest locale patterns for supplied tags
func matchLocale(tags ...language.Tag) *localePatterns {
	if len(tags) == 0 {
		return defaultLocale
	}
	_, index, _ := localeMatcher.Match(tags...)
	if index < 0 || index >= len(knownLocales) {
		return defaultLocale
	}
	return knownLocales[index]
}

// WithLocale returns option setting display patterns of the closest known locale,
// locale is always supplied by the caller
func WithLocale(tags ...language.Tag) FormatOption {
	return func(f *Formats) {
		patterns := matchLocale(tags...)
		f.DisplayDate = NewFormatSpec(patterns.date, patterns.date)
		f.DisplayDateTime = NewFormatSpec(patterns.dateTime, patterns.dateTime)
	}
}
