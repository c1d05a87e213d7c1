package time

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	yearToken = iota + 1
	shortYearToken
	longMonthNameToken
	shortMonthNameToken
	monthToken
	shortMonthToken
	dayToken
	shortDayToken
	hour24Token
	hourToken
	shortHourToken
	minuteToken
	shortMinuteToken
	secondToken
	upperSecondToken
	milliToken
	centiToken
	deciToken
	offsetColonToken
	offsetToken
	zoneToken
	meridiemToken
	upperMeridiemToken
	lowerMeridiemToken
	quotedToken
)

var (
	yearMatcher           = parsly.NewToken(yearToken, "YYYY", matcher.NewFragment("YYYY"))
	shortYearMatcher      = parsly.NewToken(shortYearToken, "YY", matcher.NewFragment("YY"))
	longMonthNameMatcher  = parsly.NewToken(longMonthNameToken, "MMMM", matcher.NewFragment("MMMM"))
	shortMonthNameMatcher = parsly.NewToken(shortMonthNameToken, "MMM", matcher.NewFragment("MMM"))
	monthMatcher          = parsly.NewToken(monthToken, "MM", matcher.NewFragment("MM"))
	shortMonthMatcher     = parsly.NewToken(shortMonthToken, "M", matcher.NewFragment("M"))
	dayMatcher            = parsly.NewToken(dayToken, "DD", matcher.NewFragment("DD"))
	shortDayMatcher       = parsly.NewToken(shortDayToken, "D", matcher.NewFragment("D"))
	hour24Matcher         = parsly.NewToken(hour24Token, "HH", matcher.NewFragment("HH"))
	hourMatcher           = parsly.NewToken(hourToken, "hh", matcher.NewFragment("hh"))
	shortHourMatcher      = parsly.NewToken(shortHourToken, "h", matcher.NewFragment("h"))
	minuteMatcher         = parsly.NewToken(minuteToken, "mm", matcher.NewFragment("mm"))
	shortMinuteMatcher    = parsly.NewToken(shortMinuteToken, "m", matcher.NewFragment("m"))
	secondMatcher         = parsly.NewToken(secondToken, "ss", matcher.NewFragment("ss"))
	upperSecondMatcher    = parsly.NewToken(upperSecondToken, "SS", matcher.NewFragment("SS"))
	milliMatcher          = parsly.NewToken(milliToken, ".SSS", matcher.NewFragment(".SSS"))
	centiMatcher          = parsly.NewToken(centiToken, ".SS", matcher.NewFragment(".SS"))
	deciMatcher           = parsly.NewToken(deciToken, ".S", matcher.NewFragment(".S"))
	offsetColonMatcher    = parsly.NewToken(offsetColonToken, "+hh:mm", matcher.NewFragment("+hh:mm"))
	offsetMatcher         = parsly.NewToken(offsetToken, "+hhmm", matcher.NewFragment("+hhmm"))
	zoneMatcher           = parsly.NewToken(zoneToken, "Z", matcher.NewFragment("Z"))
	meridiemMatcher       = parsly.NewToken(meridiemToken, "AM/PM", matcher.NewFragment("AM/PM"))
	upperMeridiemMatcher  = parsly.NewToken(upperMeridiemToken, "A", matcher.NewFragment("A"))
	lowerMeridiemMatcher  = parsly.NewToken(lowerMeridiemToken, "a", matcher.NewFragment("a"))
	quotedMatcher         = parsly.NewToken(quotedToken, "' .... '", matcher.NewQuote('\'', '\\'))
)

// patternMatchers longer fragments go first, parsly returns the first match
var patternMatchers = []*parsly.Token{
	quotedMatcher,
	yearMatcher,
	shortYearMatcher,
	longMonthNameMatcher,
	shortMonthNameMatcher,
	monthMatcher,
	shortMonthMatcher,
	dayMatcher,
	shortDayMatcher,
	offsetColonMatcher,
	offsetMatcher,
	hour24Matcher,
	hourMatcher,
	shortHourMatcher,
	minuteMatcher,
	shortMinuteMatcher,
	milliMatcher,
	centiMatcher,
	deciMatcher,
	secondMatcher,
	upperSecondMatcher,
	zoneMatcher,
	meridiemMatcher,
	upperMeridiemMatcher,
	lowerMeridiemMatcher,
}
