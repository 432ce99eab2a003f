package domain

import "fmt"

// TraditionalHour is one of the twelve two-hour periods (shichen).
type TraditionalHour struct {
	ID     int    `json:"id"`
	Branch string `json:"branch"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
}

// Label renders the period the way the hour picker shows it, e.g.
// "子時 (23:00-01:00)".
func (h TraditionalHour) Label() string {
	return fmt.Sprintf("%s時 (%02d:00-%02d:00)", h.Branch, h.Start, h.End)
}

// The first window wraps midnight.
var traditionalHours = [...]TraditionalHour{
	{ID: 1, Branch: "子", Start: 23, End: 1},
	{ID: 2, Branch: "丑", Start: 1, End: 3},
	{ID: 3, Branch: "寅", Start: 3, End: 5},
	{ID: 4, Branch: "卯", Start: 5, End: 7},
	{ID: 5, Branch: "辰", Start: 7, End: 9},
	{ID: 6, Branch: "巳", Start: 9, End: 11},
	{ID: 7, Branch: "午", Start: 11, End: 13},
	{ID: 8, Branch: "未", Start: 13, End: 15},
	{ID: 9, Branch: "申", Start: 15, End: 17},
	{ID: 10, Branch: "酉", Start: 17, End: 19},
	{ID: 11, Branch: "戌", Start: 19, End: 21},
	{ID: 12, Branch: "亥", Start: 21, End: 23},
}

// TraditionalHours returns the twelve periods in order.
func TraditionalHours() []TraditionalHour {
	out := traditionalHours
	return out[:]
}

// ValidClockHour reports whether h is a 24-hour clock hour.
func ValidClockHour(h int) bool { return h >= 0 && h <= 23 }

// ValidTraditionalHour reports whether h is a traditional period id.
func ValidTraditionalHour(h int) bool { return h >= 1 && h <= 12 }

// NormalizeHour maps a clock hour in [0,23] to its traditional period id.
// Callers validate the range with ValidClockHour first.
func NormalizeHour(hour int) int {
	for _, w := range traditionalHours {
		if hour >= w.Start && hour < w.End {
			return w.ID
		}
		if w.Start > w.End && (hour >= w.Start || hour < w.End) {
			return w.ID
		}
	}
	return 1
}
