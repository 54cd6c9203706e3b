// Package ai answers religious questions asked in groups. Responses come
// from a curated topic table keyed by trigger words in the message.
package ai

import "strings"

// Answer is one curated response with the topics that select it.
type answer struct {
	triggers []string
	text     string
}

// Specific topics come first; the generic azkar entry would otherwise
// swallow any question opening with the summon word.
var answers = []answer{
	{
		triggers: []string{"الكهف", "كهف"},
		text: "📖 قال ﷺ: «من قرأ سورة الكهف في يوم الجمعة أضاء له من النور ما بين الجمعتين»\n\n" +
			"المصدر: رواه الحاكم والبيهقي",
	},
	{
		triggers: []string{"ليلة القدر", "القدر"},
		text: "🌌 ليلة القدر خير من ألف شهر، تحرى في العشر الأواخر من رمضان\n" +
			"وخير دعائها: اللهم إنك عفو تحب العفو فاعف عني\n\n" +
			"المصدر: سنن الترمذي",
	},
	{
		triggers: []string{"حديث"},
		text: "📚 قال ﷺ: «من سلك طريقاً يلتمس فيه علماً سهل الله له به طريقاً إلى الجنة»\n\n" +
			"المصدر: صحيح مسلم",
	},
	{
		triggers: []string{"دعاء", "ادعية", "أدعية"},
		text: "🤲 من جوامع الدعاء:\n" +
			"ربنا آتنا في الدنيا حسنة وفي الآخرة حسنة وقنا عذاب النار\n\n" +
			"المصدر: سورة البقرة ٢٠١",
	},
	{
		triggers: []string{"قرآن", "قران", "سورة", "آية", "اية"},
		text: "📖 قال ﷺ: «اقرؤوا القرآن فإنه يأتي يوم القيامة شفيعاً لأصحابه»\n\n" +
			"المصدر: صحيح مسلم",
	},
	{
		triggers: []string{"أذكار", "اذكار", "ذكر"},
		text: "📿 من أفضل الذكر: سبحان الله وبحمده، سبحان الله العظيم\n" +
			"ومن أذكار الصباح والمساء: آية الكرسي والمعوذتان\n\n" +
			"المصدر: حصن المسلم",
	},
}

const fallbackAnswer = "🤲 جزاك الله خيراً على سؤالك\n" +
	"اكتب: اذكار، قرآن، حديث، دعاء أو ضع سؤالك بين علامتي تنصيص"

// Responder picks a curated answer for an inbound group message.
type Responder struct{}

// NewResponder builds a Responder.
func NewResponder() *Responder {
	return &Responder{}
}

// ShouldRespond reports whether text addresses the bot: it either opens
// with the summon word or carries a quoted question.
func (r *Responder) ShouldRespond(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(trimmed, "اذكار") || strings.HasPrefix(trimmed, "أذكار") {
		return true
	}

	return strings.Contains(trimmed, "\"") || strings.Contains(trimmed, "«")
}

// Respond returns the curated answer matching the first known topic in
// text, or the fallback guidance when no topic matches.
func (r *Responder) Respond(text string) string {
	for _, candidate := range answers {
		for _, trigger := range candidate.triggers {
			if strings.Contains(text, trigger) {
				return candidate.text
			}
		}
	}

	return fallbackAnswer
}
