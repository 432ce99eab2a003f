package domain

import "strings"

// Language selects the localized rendering of positions and messages.
type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"
)

// ParseLanguage maps a BCP 47-ish tag ("en", "en-US", "zh-Hant") to a
// supported Language.
func ParseLanguage(raw string) (Language, bool) {
	if len(raw) < 2 {
		return "", false
	}
	switch Language(strings.ToLower(raw[:2])) {
	case LangZH:
		return LangZH, true
	case LangEN:
		return LangEN, true
	}
	return "", false
}

// Element is one of the five phases associated with a position.
type Element string

const (
	ElementWood      Element = "wood"
	ElementWater     Element = "water"
	ElementFire      Element = "fire"
	ElementMetal     Element = "metal"
	ElementWoodWater Element = "wood/water"
	ElementEarth     Element = "earth"
)

// Direction is the compass direction associated with a position.
type Direction string

const (
	DirectionEast      Direction = "east"
	DirectionNorth     Direction = "north"
	DirectionSouth     Direction = "south"
	DirectionWest      Direction = "west"
	DirectionSouthwest Direction = "southwest"
	DirectionCenter    Direction = "center"
)

// Fortune is ordered from least to most auspicious.
type Fortune int

const (
	FortuneInauspicious Fortune = iota
	FortuneAuspicious
	FortuneVeryAuspicious
)

func (f Fortune) String() string {
	switch f {
	case FortuneVeryAuspicious:
		return "very_auspicious"
	case FortuneAuspicious:
		return "auspicious"
	default:
		return "inauspicious"
	}
}

// Color is a presentation tag from a closed palette.
type Color string

const (
	ColorJade     Color = "jade"
	ColorSlate    Color = "slate"
	ColorCinnabar Color = "cinnabar"
	ColorGray     Color = "gray"
	ColorGold     Color = "gold"
	ColorAmber    Color = "amber"
)

// Position is one of the six Xiao Liu Ren outcomes, localized.
type Position struct {
	ID              int       `json:"id"`
	DisplayPosition int       `json:"position"`
	Name            string    `json:"name"`
	Canonical       string    `json:"canonical"`
	Element         Element   `json:"element"`
	Fortune         Fortune   `json:"-"`
	Direction       Direction `json:"direction"`
	Color           Color     `json:"color"`
	Description     string    `json:"description"`
	Lang            Language  `json:"lang"`
}

// LunarDate is a date in the Chinese lunisolar calendar. Leap months carry
// Leap=true and the number of the month they follow.
type LunarDate struct {
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Day   int  `json:"day"`
	Leap  bool `json:"leap"`
}
