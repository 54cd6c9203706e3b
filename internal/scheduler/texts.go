package scheduler

// Delivery constants. Fixed-clock occasion reminders use these group-local
// times; the per-trigger times (morning, evening, friday) come from the
// group settings instead.
const (
	clockRamadan   = "20:00"
	clockQadr      = "21:00"
	clockLastTen   = "21:30"
	clockOccasion  = "10:00"
	clockTakbeer   = "08:00"
	clockIstijabah = "16:00"
)

// Canned reminder texts for occasion and Friday sends.
const (
	titleMorning  = "أذكار الصباح"
	titleEvening  = "أذكار المساء"
	titlePeriodic = "ذكر دوري"

	textFriday = "📖 تذكير بقراءة سورة الكهف اليوم"

	textIstijabah = "🤲 *ساعة الاستجابة*\n\n" +
		"آخر ساعة من يوم الجمعة ساعةُ إجابة، فأكثروا فيها من الدعاء\n\n" +
		"📿 حصن المسلم"

	textRamadan = "🌙 *أذكار رمضان*\n\n" +
		"اللهم إنك عفو تحب العفو فاعف عنا\n" +
		"اللهم بلغنا ليلة القدر وأعنا على الصيام والقيام\n\n" +
		"📿 حصن المسلم"

	textQadr = "🌌 *ليلة القدر*\n\n" +
		"ليلة القدر خير من ألف شهر\n" +
		"اللهم إنك عفو كريم تحب العفو فاعف عنا\n\n" +
		"📿 حصن المسلم"

	textLastTen = "🕋 *العشر الأواخر من رمضان*\n\n" +
		"اجتهدوا في الدعاء والقيام، فقد كان النبي ﷺ يحيي ليله ويوقظ أهله\n\n" +
		"📿 حصن المسلم"

	textArafat = "⛰ *يوم عرفة*\n\n" +
		"خير الدعاء دعاء يوم عرفة:\n" +
		"لا إله إلا الله وحده لا شريك له، له الملك وله الحمد وهو على كل شيء قدير\n\n" +
		"📿 حصن المسلم"

	textEid = "🎉 *عيد مبارك*\n\n" +
		"تقبل الله منا ومنكم صالح الأعمال\n" +
		"وكل عام وأنتم بخير\n\n" +
		"📿 حصن المسلم"

	textAshura = "🤍 *يوم عاشوراء*\n\n" +
		"صيام يوم عاشوراء يكفر السنة الماضية\n\n" +
		"📿 حصن المسلم"

	textTakbeer = "🕌 *تكبيرات العيد*\n\n" +
		"الله أكبر الله أكبر، لا إله إلا الله\n" +
		"الله أكبر الله أكبر، ولله الحمد\n\n" +
		"📿 حصن المسلم"
)

// Surah Al-Kahf attachments for the Friday reminder.
const (
	kahfDocumentURL     = "https://server.islamic.com/pdf/surah-al-kahf.pdf"
	kahfDocumentCaption = "سورة الكهف"
	kahfAudioURL        = "https://download.quranicaudio.com/qdc/abdul_baset/mujawwad/18.mp3"
	kahfAudioCaption    = "سورة الكهف - عبد الباسط عبد الصمد"
)
