package calendar

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"

	"github.com/randomtoy/liuren-go/internal/domain"
)

// Supported solar year range.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Lunar converts solar dates with github.com/6tail/lunar-go.
type Lunar struct{}

func NewLunar() Lunar { return Lunar{} }

// ToLunar returns the lunar date for a Gregorian date. Invalid dates report
// domain.ErrInvalidDate; the library panics on them, which is recovered here.
func (Lunar) ToLunar(year, month, day int) (ld domain.LunarDate, err error) {
	if !validSolar(year, month, day) {
		return domain.LunarDate{}, fmt.Errorf("%w: %04d-%02d-%02d", domain.ErrInvalidDate, year, month, day)
	}

	defer func() {
		if r := recover(); r != nil {
			ld = domain.LunarDate{}
			err = fmt.Errorf("%w: %v", domain.ErrInvalidDate, r)
		}
	}()

	l := calendar.NewSolarFromYmd(year, month, day).GetLunar()
	m := l.GetMonth()
	return domain.LunarDate{
		Year:  l.GetYear(),
		Month: abs(m),
		Day:   l.GetDay(),
		Leap:  m < 0,
	}, nil
}

func validSolar(year, month, day int) bool {
	if year < MinYear || year > MaxYear || month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
