package ports

import "github.com/randomtoy/liuren-go/internal/domain"

// Calendar converts Gregorian dates to lunar dates.
type Calendar interface {
	ToLunar(year, month, day int) (domain.LunarDate, error)
}
