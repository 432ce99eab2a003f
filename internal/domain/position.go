package domain

import "strings"

// positionCount is the size of the Xiao Liu Ren cycle.
const positionCount = 6

type positionRecord struct {
	canonical   string
	element     Element
	fortune     Fortune
	direction   Direction
	color       Color
	name        localized
	description localized
}

var positionTable = [positionCount]positionRecord{
	{
		canonical: "大安",
		element:   ElementWood,
		fortune:   FortuneVeryAuspicious,
		direction: DirectionEast,
		color:     ColorJade,
		name:      localized{LangZH: "大安", LangEN: "Great Peace"},
		description: localized{
			LangZH: "身不動時，五行屬木，顏色青色，方位東方。臨青龍，謀事主一、五、七。",
			LangEN: "A time to stay put. Element wood, color green, direction east. Governed by the Azure Dragon; matters resolve on one, five or seven.",
		},
	},
	{
		canonical: "留連",
		element:   ElementWater,
		fortune:   FortuneInauspicious,
		direction: DirectionNorth,
		color:     ColorSlate,
		name:      localized{LangZH: "留連", LangEN: "Delay"},
		description: localized{
			LangZH: "人未歸時，五行屬水，顏色黑色，方位北方。臨玄武，謀事主二、八、十。",
			LangEN: "The traveller has not yet returned. Element water, color black, direction north. Governed by the Black Tortoise; matters resolve on two, eight or ten.",
		},
	},
	{
		canonical: "速喜",
		element:   ElementFire,
		fortune:   FortuneVeryAuspicious,
		direction: DirectionSouth,
		color:     ColorCinnabar,
		name:      localized{LangZH: "速喜", LangEN: "Swift Joy"},
		description: localized{
			LangZH: "人即至時，五行屬火，顏色紅色，方位南方。臨朱雀，謀事主三、六、九。",
			LangEN: "The awaited arrives soon. Element fire, color red, direction south. Governed by the Vermilion Bird; matters resolve on three, six or nine.",
		},
	},
	{
		canonical: "赤口",
		element:   ElementMetal,
		fortune:   FortuneInauspicious,
		direction: DirectionWest,
		color:     ColorGray,
		name:      localized{LangZH: "赤口", LangEN: "Red Mouth"},
		description: localized{
			LangZH: "官事凶時，五行屬金，顏色白色，方位西方。臨白虎，謀事主四、七、十。",
			LangEN: "A time of disputes. Element metal, color white, direction west. Governed by the White Tiger; matters resolve on four, seven or ten.",
		},
	},
	{
		canonical: "小吉",
		element:   ElementWoodWater,
		fortune:   FortuneAuspicious,
		direction: DirectionSouthwest,
		color:     ColorGold,
		name:      localized{LangZH: "小吉", LangEN: "Small Fortune"},
		description: localized{
			LangZH: "人來喜時，五行屬水木，顏色青色，方位西南。臨六合，謀事主一、五、七。",
			LangEN: "Good news comes with visitors. Element wood and water, color green, direction southwest. Governed by the Six Harmonies; matters resolve on one, five or seven.",
		},
	},
	{
		canonical: "空亡",
		element:   ElementEarth,
		fortune:   FortuneInauspicious,
		direction: DirectionCenter,
		color:     ColorAmber,
		name:      localized{LangZH: "空亡", LangEN: "Emptiness"},
		description: localized{
			LangZH: "音信稀時，五行屬土，顏色黃色，方位中央。臨勾陳，謀事主三、六、九。",
			LangEN: "News is scarce. Element earth, color yellow, direction center. Governed by the Coiled Serpent; matters resolve on three, six or nine.",
		},
	},
}

// CalculatePosition maps a lunar month, lunar day and traditional hour to a
// position: (month + day + hour - 3) mod 6.
func CalculatePosition(month, day, hour int, lang Language) Position {
	idx := (month + day + hour - 3) % positionCount
	if idx < 0 {
		idx += positionCount
	}
	return positionAt(idx, lang)
}

// Positions returns the six positions in cycle order.
func Positions(lang Language) []Position {
	out := make([]Position, positionCount)
	for i := range positionCount {
		out[i] = positionAt(i, lang)
	}
	return out
}

// PositionByName resolves a canonical or localized position name. The
// result is localized in the language the name matched.
func PositionByName(name string) (Position, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Position{}, false
	}
	for i, rec := range positionTable {
		if rec.canonical == name {
			return positionAt(i, LangZH), true
		}
		for lang, n := range rec.name {
			if strings.EqualFold(n, name) {
				return positionAt(i, lang), true
			}
		}
	}
	return Position{}, false
}

func positionAt(idx int, lang Language) Position {
	if lang != LangEN {
		lang = LangZH
	}
	rec := positionTable[idx]
	return Position{
		ID:              idx,
		DisplayPosition: idx + 1,
		Name:            rec.name.in(lang),
		Canonical:       rec.canonical,
		Element:         rec.element,
		Fortune:         rec.fortune,
		Direction:       rec.direction,
		Color:           rec.color,
		Description:     rec.description.in(lang),
		Lang:            lang,
	}
}

var (
	elementLabels = map[Element]localized{
		ElementWood:      {LangZH: "木", LangEN: "Wood"},
		ElementWater:     {LangZH: "水", LangEN: "Water"},
		ElementFire:      {LangZH: "火", LangEN: "Fire"},
		ElementMetal:     {LangZH: "金", LangEN: "Metal"},
		ElementWoodWater: {LangZH: "水／木", LangEN: "Wood/Water"},
		ElementEarth:     {LangZH: "土", LangEN: "Earth"},
	}
	directionLabels = map[Direction]localized{
		DirectionEast:      {LangZH: "東方", LangEN: "East"},
		DirectionNorth:     {LangZH: "北方", LangEN: "North"},
		DirectionSouth:     {LangZH: "南方", LangEN: "South"},
		DirectionWest:      {LangZH: "西方", LangEN: "West"},
		DirectionSouthwest: {LangZH: "西南", LangEN: "Southwest"},
		DirectionCenter:    {LangZH: "中央", LangEN: "Center"},
	}
	fortuneLabels = map[Fortune]localized{
		FortuneVeryAuspicious: {LangZH: "大吉", LangEN: "Very Auspicious"},
		FortuneAuspicious:     {LangZH: "吉", LangEN: "Auspicious"},
		FortuneInauspicious:   {LangZH: "凶", LangEN: "Inauspicious"},
	}
)

// Label returns the localized element name.
func (e Element) Label(lang Language) string { return elementLabels[e].in(lang) }

// Label returns the localized direction name.
func (d Direction) Label(lang Language) string { return directionLabels[d].in(lang) }

// Label returns the localized fortune level.
func (f Fortune) Label(lang Language) string { return fortuneLabels[f].in(lang) }
