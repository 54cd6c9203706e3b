package menu

import (
	"fmt"

	"github.com/azkar-labs/azkar-bot/internal/domain"
)

// Category names one settings page.
type Category string

const (
	CategoryRoot      Category = "root"
	CategoryDaily     Category = "daily"
	CategoryPeriodic  Category = "periodic"
	CategoryFriday    Category = "friday"
	CategoryRamadan   Category = "ramadan"
	CategoryOccasions Category = "occasions"
	CategoryAudio     Category = "audio"
	CategoryAI        Category = "ai"
	CategoryTimezone  Category = "timezone"
)

// Button is one inline key: a label and the encoded action it fires.
type Button struct {
	Text   string
	Action string
}

// Menu is a renderable settings page.
type Menu struct {
	Title string
	Rows  [][]Button
}

// TimezonePreset is a selectable zone on the timezone page.
type TimezonePreset struct {
	Key   string
	Label string
	Zone  string
}

// timezonePresets lists the zones offered on the timezone page. Keys ride
// inside set_tz_<key> verbs, so they must stay short and stable.
var timezonePresets = []TimezonePreset{
	{Key: "riyadh", Label: "🇸🇦 الرياض", Zone: "Asia/Riyadh"},
	{Key: "dubai", Label: "🇦🇪 دبي", Zone: "Asia/Dubai"},
	{Key: "kuwait", Label: "🇰🇼 الكويت", Zone: "Asia/Kuwait"},
	{Key: "baghdad", Label: "🇮🇶 بغداد", Zone: "Asia/Baghdad"},
	{Key: "amman", Label: "🇯🇴 عمّان", Zone: "Asia/Amman"},
	{Key: "cairo", Label: "🇪🇬 القاهرة", Zone: "Africa/Cairo"},
	{Key: "casablanca", Label: "🇲🇦 الدار البيضاء", Zone: "Africa/Casablanca"},
	{Key: "istanbul", Label: "🇹🇷 إسطنبول", Zone: "Europe/Istanbul"},
}

// zoneForPresetKey resolves a set_tz verb suffix to an IANA zone name.
func zoneForPresetKey(key string) (string, bool) {
	for _, preset := range timezonePresets {
		if preset.Key == key {
			return preset.Zone, true
		}
	}

	return "", false
}

// Render builds the menu page for a category from the group's current
// settings. Unknown categories render the root page.
func Render(category Category, groupID int64, s domain.GroupSettings) Menu {
	switch category {
	case CategoryDaily:
		return renderDaily(groupID, s)
	case CategoryPeriodic:
		return renderPeriodic(groupID, s)
	case CategoryFriday:
		return renderFriday(groupID, s)
	case CategoryRamadan:
		return renderRamadan(groupID, s)
	case CategoryOccasions:
		return renderOccasions(groupID, s)
	case CategoryAudio:
		return renderAudio(groupID, s)
	case CategoryAI:
		return renderAI(groupID, s)
	case CategoryTimezone:
		return renderTimezone(groupID, s)
	default:
		return renderRoot(groupID)
	}
}

func renderRoot(groupID int64) Menu {
	return Menu{
		Title: titleRoot + "\n\nاختر القسم المطلوب:",
		Rows: [][]Button{
			{btn("🌅 أذكار الصباح والمساء", verbOpenPrefix+string(CategoryDaily), groupID)},
			{btn("🔄 الأذكار الدورية", verbOpenPrefix+string(CategoryPeriodic), groupID)},
			{btn("📅 تذكيرات الجمعة", verbOpenPrefix+string(CategoryFriday), groupID)},
			{btn("🌙 أذكار رمضان", verbOpenPrefix+string(CategoryRamadan), groupID)},
			{btn("⛰ مناسبات خاصة", verbOpenPrefix+string(CategoryOccasions), groupID)},
			{btn("🎵 إعدادات الصوت", verbOpenPrefix+string(CategoryAudio), groupID)},
			{btn("🤖 الذكاء الاصطناعي", verbOpenPrefix+string(CategoryAI), groupID)},
			{btn("⏰ المنطقة الزمنية", verbOpenPrefix+string(CategoryTimezone), groupID)},
		},
	}
}

func renderDaily(groupID int64, s domain.GroupSettings) Menu {
	return Menu{
		Title: titleDaily,
		Rows: [][]Button{
			{btn(toggleLabel(s.MorningAzkar.Enabled, "أذكار الصباح"), verbTogglePrefix+string(domain.FeatureMorning), groupID)},
			{btn(fmt.Sprintf("⏰ وقت الصباح: %s", s.MorningAzkar.Time), verbTimePrefix+string(domain.FeatureMorning), groupID)},
			{btn(toggleLabel(s.EveningAzkar.Enabled, "أذكار المساء"), verbTogglePrefix+string(domain.FeatureEvening), groupID)},
			{btn(fmt.Sprintf("⏰ وقت المساء: %s", s.EveningAzkar.Time), verbTimePrefix+string(domain.FeatureEvening), groupID)},
			backRow(groupID),
		},
	}
}

func renderPeriodic(groupID int64, s domain.GroupSettings) Menu {
	return Menu{
		Title: titlePeriodic,
		Rows: [][]Button{
			{btn(toggleLabel(s.PeriodicAzkar.Enabled, "الأذكار الدورية"), verbTogglePrefix+string(domain.FeaturePeriodic), groupID)},
			{btn(fmt.Sprintf("⏱ الفاصل الزمني: %d دقيقة", s.PeriodicAzkar.IntervalMinutes), verbOpenPrefix+string(CategoryPeriodic), groupID)},
			{
				btn("➖ تقليل (30 دقيقة)", verbIntervalDec, groupID),
				btn("➕ زيادة (30 دقيقة)", verbIntervalInc, groupID),
			},
			backRow(groupID),
		},
	}
}

func renderFriday(groupID int64, s domain.GroupSettings) Menu {
	return Menu{
		Title: titleFriday,
		Rows: [][]Button{
			{btn(toggleLabel(s.FridayReminder.Enabled, "تذكير سورة الكهف"), verbTogglePrefix+string(domain.FeatureFriday), groupID)},
			{btn(fmt.Sprintf("⏰ وقت التذكير: %s", s.FridayReminder.Time), verbTimePrefix+string(domain.FeatureFriday), groupID)},
			{btn(toggleLabel(s.IstijabahHour.Enabled, "ساعة الاستجابة"), verbTogglePrefix+string(domain.FeatureIstijabah), groupID)},
			backRow(groupID),
		},
	}
}

func renderRamadan(groupID int64, s domain.GroupSettings) Menu {
	return Menu{
		Title: titleRamadan,
		Rows: [][]Button{
			{btn(toggleLabel(s.RamadanAzkar.Enabled, "أذكار رمضان"), verbTogglePrefix+string(domain.FeatureRamadan), groupID)},
			{btn(toggleLabel(s.LailatulQadr.Enabled, "ليلة القدر"), verbTogglePrefix+string(domain.FeatureQadr), groupID)},
			{btn(toggleLabel(s.LastTenDays.Enabled, "العشر الأواخر"), verbTogglePrefix+string(domain.FeatureLastTen), groupID)},
			backRow(groupID),
		},
	}
}

func renderOccasions(groupID int64, s domain.GroupSettings) Menu {
	return Menu{
		Title: titleOccasions,
		Rows: [][]Button{
			{btn(toggleLabel(s.ArafatDay.Enabled, "يوم عرفة"), verbTogglePrefix+string(domain.FeatureArafat), groupID)},
			{btn(toggleLabel(s.EidReminders.Enabled, "العيدين"), verbTogglePrefix+string(domain.FeatureEid), groupID)},
			{btn(toggleLabel(s.AshuraReminders.Enabled, "يوم عاشوراء"), verbTogglePrefix+string(domain.FeatureAshura), groupID)},
			{btn(toggleLabel(s.EidTakbeer.Enabled, "تكبيرات العيد"), verbTogglePrefix+string(domain.FeatureTakbeer), groupID)},
			backRow(groupID),
		},
	}
}

func renderAudio(groupID int64, s domain.GroupSettings) Menu {
	return Menu{
		Title: titleAudio,
		Rows: [][]Button{
			{btn(toggleLabel(s.QuranAudio.Enabled, "صوتيات القرآن"), verbTogglePrefix+string(domain.FeatureQuranAudio), groupID)},
			{btn(toggleLabel(s.AzkarAudio.Enabled, "صوتيات الأذكار"), verbTogglePrefix+string(domain.FeatureAzkarAudio), groupID)},
			backRow(groupID),
		},
	}
}

func renderAI(groupID int64, s domain.GroupSettings) Menu {
	return Menu{
		Title: titleAI,
		Rows: [][]Button{
			{btn(toggleLabel(s.AIResponses.Enabled, "الذكاء الاصطناعي"), verbTogglePrefix+string(domain.FeatureAI), groupID)},
			backRow(groupID),
		},
	}
}

func renderTimezone(groupID int64, s domain.GroupSettings) Menu {
	rows := make([][]Button, 0, len(timezonePresets)/2+2)

	row := make([]Button, 0, 2)
	for _, preset := range timezonePresets {
		label := preset.Label
		if preset.Zone == s.Timezone {
			label = glyphEnabled + " " + label
		}
		row = append(row, btn(label, verbSetTZPrefix+preset.Key, groupID))
		if len(row) == 2 {
			rows = append(rows, row)
			row = make([]Button, 0, 2)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, backRow(groupID))

	return Menu{
		Title: titleTimezone + "\n\nالحالية: " + s.Timezone,
		Rows:  rows,
	}
}

// parentCategory is the page that contained a feature's toggle button;
// toggling re-renders it rather than jumping back to the root.
func parentCategory(f domain.Feature) Category {
	switch f {
	case domain.FeatureMorning, domain.FeatureEvening:
		return CategoryDaily
	case domain.FeaturePeriodic:
		return CategoryPeriodic
	case domain.FeatureFriday, domain.FeatureIstijabah:
		return CategoryFriday
	case domain.FeatureRamadan, domain.FeatureQadr, domain.FeatureLastTen:
		return CategoryRamadan
	case domain.FeatureArafat, domain.FeatureEid, domain.FeatureAshura, domain.FeatureTakbeer:
		return CategoryOccasions
	case domain.FeatureQuranAudio, domain.FeatureAzkarAudio:
		return CategoryAudio
	case domain.FeatureAI:
		return CategoryAI
	default:
		return CategoryRoot
	}
}

func toggleLabel(enabled bool, name string) string {
	if enabled {
		return glyphEnabled + " " + name
	}

	return glyphDisabled + " " + name
}

func backRow(groupID int64) []Button {
	return []Button{btn(labelBack, verbBackToSettings, groupID)}
}

// btn encodes the action inline. Verbs are static strings well inside the
// callback limit, so an encoding failure here is a programming error and
// the button is emitted with empty data rather than panicking.
func btn(text, verb string, groupID int64) Button {
	data, err := EncodeAction(verb, groupID)
	if err != nil {
		data = ""
	}

	return Button{Text: text, Action: data}
}
