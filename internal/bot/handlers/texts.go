package handlers

// User-facing strings for command and dialog replies.
const (
	welcomeText = "السلام عليكم ورحمة الله وبركاته 🌹\n\n" +
		"أنا بوت الأذكار، أرسل أذكار الصباح والمساء والأذكار الدورية " +
		"وتذكيرات الجمعة والمناسبات الإسلامية إلى مجموعتك\n\n" +
		"أضفني إلى مجموعتك ثم أرسل /settings هناك لفتح لوحة التحكم"

	groupOnlyText = "ℹ️ هذا الأمر يعمل داخل المجموعات\n" +
		"أضف البوت إلى مجموعتك ثم أرسل /settings هناك"

	panelSentText = "📬 أرسلت لوحة التحكم إليك في الخاص"

	privateFallbackText = "⚠️ تعذر إرسال لوحة التحكم في الخاص\n" +
		"افتح محادثة خاصة مع البوت ثم أعد المحاولة"

	invalidTimeText = "⚠️ صيغة غير صحيحة\n" +
		"أرسل الوقت بصيغة HH:MM مثل 06:30 أو أرسل /cancel للإلغاء"

	cancelledText = "✅ تم الإلغاء"

	helpText = "📖 طريقة الاستخدام:\n\n" +
		"1. أضف البوت إلى مجموعتك\n" +
		"2. امنحه صلاحية إرسال الرسائل\n" +
		"3. أرسل /settings داخل المجموعة لفتح لوحة التحكم\n\n" +
		"يمكن للمدراء فقط تعديل الإعدادات"
)
