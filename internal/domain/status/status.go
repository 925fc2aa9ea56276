package status

import (
	"strings"
	"unicode"
)

// Status is the canonical attendance state used uniformly for display,
// filtering and aggregation. The sheet backend stores status in whatever
// form the row was written with (English label, Arabic label, boolean,
// blank); Normalize folds every variant into this enum.
type Status string

const (
	Present Status = "present"
	Absent  Status = "absent"
	Late    Status = "late"
	Leave   Status = "leave"
	Pending Status = "pending"

	// Unknown is the sentinel for values that match none of the five
	// countable statuses. Unknown records are still counted, as the
	// aggregator's unaccounted bucket.
	Unknown Status = "unknown"
)

// Countable lists the five statuses that map to aggregation buckets,
// in display order.
var Countable = []Status{Present, Absent, Late, Leave, Pending}

// labels is the bilingual match table. Keys are compared after
// trimming and lowercasing.
var labels = map[string]Status{
	"present": Present,
	"حاضر":    Present,
	"absent":  Absent,
	"غائب":    Absent,
	"late":    Late,
	"متأخر":   Late,
	"leave":   Leave,
	"إجازة":   Leave,
	"pending": Pending,
}

// Normalize maps a raw status value to its canonical form. It is total:
// booleans map to present/absent, recognized bilingual labels to their
// status, and everything else (nil, unrecognized strings, any other type)
// to Unknown. It never panics.
func Normalize(raw any) Status {
	switch v := raw.(type) {
	case bool:
		if v {
			return Present
		}
		return Absent
	case string:
		if s, ok := labels[strings.ToLower(strings.TrimSpace(v))]; ok {
			return s
		}
		return Unknown
	case Status:
		return Normalize(string(v))
	default:
		return Unknown
	}
}

var displayLabels = map[Status]string{
	Present: "Present",
	Absent:  "Absent",
	Late:    "Late",
	Leave:   "Leave",
	Pending: "Pending",
	Unknown: "Unknown",
}

// DisplayLabel returns the badge text for a raw status value. Recognized
// values get their canonical label; unrecognized non-empty strings pass
// through with the first letter capitalized so the badge shows what the
// sheet actually holds; anything else reads "Unknown".
func DisplayLabel(raw any) string {
	s := Normalize(raw)
	if s != Unknown {
		return displayLabels[s]
	}
	if v, ok := raw.(string); ok {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return capitalize(trimmed)
		}
	}
	return displayLabels[Unknown]
}

// ColorClass carries the presentation classes for a status badge.
type ColorClass struct {
	Text  string `json:"text"`
	Badge string `json:"badge"`
}

// colorClasses is the single source of truth for status coloring.
var colorClasses = map[Status]ColorClass{
	Present: {Text: "text-green-500", Badge: "bg-green-100 text-green-800"},
	Absent:  {Text: "text-red-500", Badge: "bg-red-100 text-red-800"},
	Late:    {Text: "text-orange-500", Badge: "bg-orange-100 text-orange-800"},
	Leave:   {Text: "text-blue-500", Badge: "bg-blue-100 text-blue-800"},
	Pending: {Text: "text-yellow-500", Badge: "bg-yellow-100 text-yellow-800"},
	Unknown: {Text: "text-gray-400", Badge: "bg-gray-100 text-gray-800"},
}

// Colors returns the color classes for a canonical status. Defined for
// every status including Unknown.
func Colors(s Status) ColorClass {
	if c, ok := colorClasses[s]; ok {
		return c
	}
	return colorClasses[Unknown]
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
