package time

import (
	"fmt"
	"github.com/viant/parsly"
	"strings"
	"time"
)

type element struct {
	code    int
	literal string
}

// Layout converts ISO 2022-07-15 style date pattern (i.e. YYYY-MM-DD hh:mm:ss) to go time layout.
// MM following an hour or minute element and ':' is treated as minutes, so YYYY-MM-DD HH:MM:SS is supported.
// hh is 12-hour clock only if the pattern carries a meridiem (AM/PM, A or a), otherwise it is 24-hour clock.
// Quoted and unquoted literals are copied verbatim, go layout has no escaping, so a literal that reads as
// a layout element (i.e. 'Q1', 'Mon', '2006') is still interpreted as that element.
func Layout(pattern string) string {
	elements := tokenize(pattern)
	meridiem := false
	for _, elem := range elements {
		switch elem.code {
		case meridiemToken, upperMeridiemToken, lowerMeridiemToken:
			meridiem = true
		}
	}
	builder := strings.Builder{}
	clock := false
	for _, elem := range elements {
		switch elem.code {
		case yearToken:
			builder.WriteString("2006")
		case shortYearToken:
			builder.WriteString("06")
		case longMonthNameToken:
			builder.WriteString("January")
		case shortMonthNameToken:
			builder.WriteString("Jan")
		case monthToken:
			if clock {
				builder.WriteString("04")
				continue
			}
			builder.WriteString("01")
		case shortMonthToken:
			if clock {
				builder.WriteString("4")
				continue
			}
			builder.WriteString("1")
		case dayToken:
			builder.WriteString("02")
		case shortDayToken:
			builder.WriteString("2")
		case hour24Token:
			builder.WriteString("15")
			clock = true
		case hourToken:
			if meridiem {
				builder.WriteString("03")
			} else {
				builder.WriteString("15")
			}
			clock = true
		case shortHourToken:
			if meridiem {
				builder.WriteString("3")
			} else {
				builder.WriteString("15")
			}
			clock = true
		case minuteToken:
			builder.WriteString("04")
		case shortMinuteToken:
			builder.WriteString("4")
		case secondToken, upperSecondToken:
			builder.WriteString("05")
		case milliToken:
			builder.WriteString(".000")
		case centiToken:
			builder.WriteString(".00")
		case deciToken:
			builder.WriteString(".0")
		case offsetColonToken, zoneToken:
			builder.WriteString("Z07:00")
		case offsetToken:
			builder.WriteString("Z0700")
		case meridiemToken, upperMeridiemToken:
			builder.WriteString("PM")
		case lowerMeridiemToken:
			builder.WriteString("pm")
		default:
			if elem.literal != ":" {
				clock = false
			}
			builder.WriteString(elem.literal)
		}
	}
	return builder.String()
}

func tokenize(pattern string) []*element {
	var result []*element
	cursor := parsly.NewCursor("", []byte(pattern), 0)
	for cursor.Pos < len(cursor.Input) {
		match := cursor.MatchAny(patternMatchers...)
		switch match.Code {
		case quotedToken:
			text := match.Text(cursor)
			result = append(result, &element{code: -1, literal: strings.ReplaceAll(text[1:len(text)-1], "\\'", "'")})
		case yearToken, shortYearToken, longMonthNameToken, shortMonthNameToken, monthToken, shortMonthToken,
			dayToken, shortDayToken, hour24Token, hourToken, shortHourToken, minuteToken, shortMinuteToken,
			secondToken, upperSecondToken, milliToken, centiToken, deciToken, offsetColonToken, offsetToken,
			zoneToken, meridiemToken, upperMeridiemToken, lowerMeridiemToken:
			result = append(result, &element{code: match.Code})
		default:
			result = append(result, &element{code: -1, literal: string(cursor.Input[cursor.Pos])})
			cursor.Pos++
		}
	}
	return result
}

// Parse parses value with supplied go time layout, values without zone are parsed in UTC
func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		return time.Time{}, fmt.Errorf("failed to parse %q: layout was empty", value)
	}
	return time.ParseInLocation(layout, value, time.UTC)
}
