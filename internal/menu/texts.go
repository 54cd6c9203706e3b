package menu

// User-facing strings. The bot talks to its groups in Arabic.
const (
	titleRoot      = "⚙️ لوحة التحكم الرئيسية"
	titleDaily     = "🌅 إعدادات أذكار الصباح والمساء"
	titlePeriodic  = "🔄 إعدادات الأذكار الدورية"
	titleFriday    = "📅 إعدادات تذكيرات الجمعة"
	titleRamadan   = "🌙 إعدادات رمضان"
	titleOccasions = "⛰ المناسبات الخاصة"
	titleAudio     = "🎵 إعدادات الصوت"
	titleAI        = "🤖 إعدادات الذكاء الاصطناعي\n\nالبوت يستخدم ذكاءً اصطناعياً للإجابة على الأسئلة الدينية"
	titleTimezone  = "⏰ المنطقة الزمنية"

	labelBack = "🔙 رجوع"

	ackEnabled      = "✅ تم تفعيل الخاصية"
	ackDisabled     = "✅ تم إيقاف الخاصية"
	ackIntervalUp   = "✅ تم زيادة الفاصل الزمني إلى %d دقيقة"
	ackIntervalDown = "✅ تم تقليل الفاصل الزمني إلى %d دقيقة"
	ackTimezoneSet  = "✅ تم ضبط المنطقة الزمنية: %s"
	ackTimePrompt   = "⏰ أرسل الوقت الجديد بصيغة HH:MM"

	glyphEnabled  = "✅"
	glyphDisabled = "☑️"
)
