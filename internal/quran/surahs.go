package quran

import "github.com/alfarizi/ramadhan-companion/internal/model"

// SurahIndex is the static offline index of all 114 surahs, so listing and
// searching never need the network.
var SurahIndex = []model.SurahInfo{
	{Number: 1, Name: "Al-Fatihah", NameArabic: "الفاتحة", Ayahs: 7, Revelation: "Makkiyyah"},
	{Number: 2, Name: "Al-Baqarah", NameArabic: "البقرة", Ayahs: 286, Revelation: "Madaniyyah"},
	{Number: 3, Name: "Ali 'Imran", NameArabic: "آل عمران", Ayahs: 200, Revelation: "Madaniyyah"},
	{Number: 4, Name: "An-Nisa", NameArabic: "النساء", Ayahs: 176, Revelation: "Madaniyyah"},
	{Number: 5, Name: "Al-Ma'idah", NameArabic: "المائدة", Ayahs: 120, Revelation: "Madaniyyah"},
	{Number: 6, Name: "Al-An'am", NameArabic: "الأنعام", Ayahs: 165, Revelation: "Makkiyyah"},
	{Number: 7, Name: "Al-A'raf", NameArabic: "الأعراف", Ayahs: 206, Revelation: "Makkiyyah"},
	{Number: 8, Name: "Al-Anfal", NameArabic: "الأنفال", Ayahs: 75, Revelation: "Madaniyyah"},
	{Number: 9, Name: "At-Taubah", NameArabic: "التوبة", Ayahs: 129, Revelation: "Madaniyyah"},
	{Number: 10, Name: "Yunus", NameArabic: "يونس", Ayahs: 109, Revelation: "Makkiyyah"},
	{Number: 11, Name: "Hud", NameArabic: "هود", Ayahs: 123, Revelation: "Makkiyyah"},
	{Number: 12, Name: "Yusuf", NameArabic: "يوسف", Ayahs: 111, Revelation: "Makkiyyah"},
	{Number: 13, Name: "Ar-Ra'd", NameArabic: "الرعد", Ayahs: 43, Revelation: "Madaniyyah"},
	{Number: 14, Name: "Ibrahim", NameArabic: "إبراهيم", Ayahs: 52, Revelation: "Makkiyyah"},
	{Number: 15, Name: "Al-Hijr", NameArabic: "الحجر", Ayahs: 99, Revelation: "Makkiyyah"},
	{Number: 16, Name: "An-Nahl", NameArabic: "النحل", Ayahs: 128, Revelation: "Makkiyyah"},
	{Number: 17, Name: "Al-Isra", NameArabic: "الإسراء", Ayahs: 111, Revelation: "Makkiyyah"},
	{Number: 18, Name: "Al-Kahf", NameArabic: "الكهف", Ayahs: 110, Revelation: "Makkiyyah"},
	{Number: 19, Name: "Maryam", NameArabic: "مريم", Ayahs: 98, Revelation: "Makkiyyah"},
	{Number: 20, Name: "Ta Ha", NameArabic: "طه", Ayahs: 135, Revelation: "Makkiyyah"},
	{Number: 21, Name: "Al-Anbiya", NameArabic: "الأنبياء", Ayahs: 112, Revelation: "Makkiyyah"},
	{Number: 22, Name: "Al-Hajj", NameArabic: "الحج", Ayahs: 78, Revelation: "Madaniyyah"},
	{Number: 23, Name: "Al-Mu'minun", NameArabic: "المؤمنون", Ayahs: 118, Revelation: "Makkiyyah"},
	{Number: 24, Name: "An-Nur", NameArabic: "النور", Ayahs: 64, Revelation: "Madaniyyah"},
	{Number: 25, Name: "Al-Furqan", NameArabic: "الفرقان", Ayahs: 77, Revelation: "Makkiyyah"},
	{Number: 26, Name: "Asy-Syu'ara", NameArabic: "الشعراء", Ayahs: 227, Revelation: "Makkiyyah"},
	{Number: 27, Name: "An-Naml", NameArabic: "النمل", Ayahs: 93, Revelation: "Makkiyyah"},
	{Number: 28, Name: "Al-Qasas", NameArabic: "القصص", Ayahs: 88, Revelation: "Makkiyyah"},
	{Number: 29, Name: "Al-'Ankabut", NameArabic: "العنكبوت", Ayahs: 69, Revelation: "Makkiyyah"},
	{Number: 30, Name: "Ar-Rum", NameArabic: "الروم", Ayahs: 60, Revelation: "Makkiyyah"},
	{Number: 31, Name: "Luqman", NameArabic: "لقمان", Ayahs: 34, Revelation: "Makkiyyah"},
	{Number: 32, Name: "As-Sajdah", NameArabic: "السجدة", Ayahs: 30, Revelation: "Makkiyyah"},
	{Number: 33, Name: "Al-Ahzab", NameArabic: "الأحزاب", Ayahs: 73, Revelation: "Madaniyyah"},
	{Number: 34, Name: "Saba", NameArabic: "سبأ", Ayahs: 54, Revelation: "Makkiyyah"},
	{Number: 35, Name: "Fatir", NameArabic: "فاطر", Ayahs: 45, Revelation: "Makkiyyah"},
	{Number: 36, Name: "Ya Sin", NameArabic: "يس", Ayahs: 83, Revelation: "Makkiyyah"},
	{Number: 37, Name: "As-Saffat", NameArabic: "الصافات", Ayahs: 182, Revelation: "Makkiyyah"},
	{Number: 38, Name: "Sad", NameArabic: "ص", Ayahs: 88, Revelation: "Makkiyyah"},
	{Number: 39, Name: "Az-Zumar", NameArabic: "الزمر", Ayahs: 75, Revelation: "Makkiyyah"},
	{Number: 40, Name: "Ghafir", NameArabic: "غافر", Ayahs: 85, Revelation: "Makkiyyah"},
	{Number: 41, Name: "Fussilat", NameArabic: "فصلت", Ayahs: 54, Revelation: "Makkiyyah"},
	{Number: 42, Name: "Asy-Syura", NameArabic: "الشورى", Ayahs: 53, Revelation: "Makkiyyah"},
	{Number: 43, Name: "Az-Zukhruf", NameArabic: "الزخرف", Ayahs: 89, Revelation: "Makkiyyah"},
	{Number: 44, Name: "Ad-Dukhan", NameArabic: "الدخان", Ayahs: 59, Revelation: "Makkiyyah"},
	{Number: 45, Name: "Al-Jasiyah", NameArabic: "الجاثية", Ayahs: 37, Revelation: "Makkiyyah"},
	{Number: 46, Name: "Al-Ahqaf", NameArabic: "الأحقاف", Ayahs: 35, Revelation: "Makkiyyah"},
	{Number: 47, Name: "Muhammad", NameArabic: "محمد", Ayahs: 38, Revelation: "Madaniyyah"},
	{Number: 48, Name: "Al-Fath", NameArabic: "الفتح", Ayahs: 29, Revelation: "Madaniyyah"},
	{Number: 49, Name: "Al-Hujurat", NameArabic: "الحجرات", Ayahs: 18, Revelation: "Madaniyyah"},
	{Number: 50, Name: "Qaf", NameArabic: "ق", Ayahs: 45, Revelation: "Makkiyyah"},
	{Number: 51, Name: "Az-Zariyat", NameArabic: "الذاريات", Ayahs: 60, Revelation: "Makkiyyah"},
	{Number: 52, Name: "At-Tur", NameArabic: "الطور", Ayahs: 49, Revelation: "Makkiyyah"},
	{Number: 53, Name: "An-Najm", NameArabic: "النجم", Ayahs: 62, Revelation: "Makkiyyah"},
	{Number: 54, Name: "Al-Qamar", NameArabic: "القمر", Ayahs: 55, Revelation: "Makkiyyah"},
	{Number: 55, Name: "Ar-Rahman", NameArabic: "الرحمن", Ayahs: 78, Revelation: "Madaniyyah"},
	{Number: 56, Name: "Al-Waqi'ah", NameArabic: "الواقعة", Ayahs: 96, Revelation: "Makkiyyah"},
	{Number: 57, Name: "Al-Hadid", NameArabic: "الحديد", Ayahs: 29, Revelation: "Madaniyyah"},
	{Number: 58, Name: "Al-Mujadila", NameArabic: "المجادلة", Ayahs: 22, Revelation: "Madaniyyah"},
	{Number: 59, Name: "Al-Hasyr", NameArabic: "الحشر", Ayahs: 24, Revelation: "Madaniyyah"},
	{Number: 60, Name: "Al-Mumtahanah", NameArabic: "الممتحنة", Ayahs: 13, Revelation: "Madaniyyah"},
	{Number: 61, Name: "As-Saf", NameArabic: "الصف", Ayahs: 14, Revelation: "Madaniyyah"},
	{Number: 62, Name: "Al-Jumu'ah", NameArabic: "الجمعة", Ayahs: 11, Revelation: "Madaniyyah"},
	{Number: 63, Name: "Al-Munafiqun", NameArabic: "المنافقون", Ayahs: 11, Revelation: "Madaniyyah"},
	{Number: 64, Name: "At-Tagabun", NameArabic: "التغابن", Ayahs: 18, Revelation: "Madaniyyah"},
	{Number: 65, Name: "At-Talaq", NameArabic: "الطلاق", Ayahs: 12, Revelation: "Madaniyyah"},
	{Number: 66, Name: "At-Tahrim", NameArabic: "التحريم", Ayahs: 12, Revelation: "Madaniyyah"},
	{Number: 67, Name: "Al-Mulk", NameArabic: "الملك", Ayahs: 30, Revelation: "Makkiyyah"},
	{Number: 68, Name: "Al-Qalam", NameArabic: "القلم", Ayahs: 52, Revelation: "Makkiyyah"},
	{Number: 69, Name: "Al-Haqqah", NameArabic: "الحاقة", Ayahs: 52, Revelation: "Makkiyyah"},
	{Number: 70, Name: "Al-Ma'arij", NameArabic: "المعارج", Ayahs: 44, Revelation: "Makkiyyah"},
	{Number: 71, Name: "Nuh", NameArabic: "نوح", Ayahs: 28, Revelation: "Makkiyyah"},
	{Number: 72, Name: "Al-Jinn", NameArabic: "الجن", Ayahs: 28, Revelation: "Makkiyyah"},
	{Number: 73, Name: "Al-Muzzammil", NameArabic: "المزمل", Ayahs: 20, Revelation: "Makkiyyah"},
	{Number: 74, Name: "Al-Muddassir", NameArabic: "المدثر", Ayahs: 56, Revelation: "Makkiyyah"},
	{Number: 75, Name: "Al-Qiyamah", NameArabic: "القيامة", Ayahs: 40, Revelation: "Makkiyyah"},
	{Number: 76, Name: "Al-Insan", NameArabic: "الإنسان", Ayahs: 31, Revelation: "Madaniyyah"},
	{Number: 77, Name: "Al-Mursalat", NameArabic: "المرسلات", Ayahs: 50, Revelation: "Makkiyyah"},
	{Number: 78, Name: "An-Naba", NameArabic: "النبأ", Ayahs: 40, Revelation: "Makkiyyah"},
	{Number: 79, Name: "An-Nazi'at", NameArabic: "النازعات", Ayahs: 46, Revelation: "Makkiyyah"},
	{Number: 80, Name: "'Abasa", NameArabic: "عبس", Ayahs: 42, Revelation: "Makkiyyah"},
	{Number: 81, Name: "At-Takwir", NameArabic: "التكوير", Ayahs: 29, Revelation: "Makkiyyah"},
	{Number: 82, Name: "Al-Infitar", NameArabic: "الانفطار", Ayahs: 19, Revelation: "Makkiyyah"},
	{Number: 83, Name: "Al-Mutaffifin", NameArabic: "المطففين", Ayahs: 36, Revelation: "Makkiyyah"},
	{Number: 84, Name: "Al-Insyiqaq", NameArabic: "الانشقاق", Ayahs: 25, Revelation: "Makkiyyah"},
	{Number: 85, Name: "Al-Buruj", NameArabic: "البروج", Ayahs: 22, Revelation: "Makkiyyah"},
	{Number: 86, Name: "At-Tariq", NameArabic: "الطارق", Ayahs: 17, Revelation: "Makkiyyah"},
	{Number: 87, Name: "Al-A'la", NameArabic: "الأعلى", Ayahs: 19, Revelation: "Makkiyyah"},
	{Number: 88, Name: "Al-Gasiyah", NameArabic: "الغاشية", Ayahs: 26, Revelation: "Makkiyyah"},
	{Number: 89, Name: "Al-Fajr", NameArabic: "الفجر", Ayahs: 30, Revelation: "Makkiyyah"},
	{Number: 90, Name: "Al-Balad", NameArabic: "البلد", Ayahs: 20, Revelation: "Makkiyyah"},
	{Number: 91, Name: "Asy-Syams", NameArabic: "الشمس", Ayahs: 15, Revelation: "Makkiyyah"},
	{Number: 92, Name: "Al-Lail", NameArabic: "الليل", Ayahs: 21, Revelation: "Makkiyyah"},
	{Number: 93, Name: "Ad-Duha", NameArabic: "الضحى", Ayahs: 11, Revelation: "Makkiyyah"},
	{Number: 94, Name: "Asy-Syarh", NameArabic: "الشرح", Ayahs: 8, Revelation: "Makkiyyah"},
	{Number: 95, Name: "At-Tin", NameArabic: "التين", Ayahs: 8, Revelation: "Makkiyyah"},
	{Number: 96, Name: "Al-'Alaq", NameArabic: "العلق", Ayahs: 19, Revelation: "Makkiyyah"},
	{Number: 97, Name: "Al-Qadr", NameArabic: "القدر", Ayahs: 5, Revelation: "Makkiyyah"},
	{Number: 98, Name: "Al-Bayyinah", NameArabic: "البينة", Ayahs: 8, Revelation: "Madaniyyah"},
	{Number: 99, Name: "Az-Zalzalah", NameArabic: "الزلزلة", Ayahs: 8, Revelation: "Madaniyyah"},
	{Number: 100, Name: "Al-'Adiyat", NameArabic: "العاديات", Ayahs: 11, Revelation: "Makkiyyah"},
	{Number: 101, Name: "Al-Qari'ah", NameArabic: "القارعة", Ayahs: 11, Revelation: "Makkiyyah"},
	{Number: 102, Name: "At-Takasur", NameArabic: "التكاثر", Ayahs: 8, Revelation: "Makkiyyah"},
	{Number: 103, Name: "Al-'Asr", NameArabic: "العصر", Ayahs: 3, Revelation: "Makkiyyah"},
	{Number: 104, Name: "Al-Humazah", NameArabic: "الهمزة", Ayahs: 9, Revelation: "Makkiyyah"},
	{Number: 105, Name: "Al-Fil", NameArabic: "الفيل", Ayahs: 5, Revelation: "Makkiyyah"},
	{Number: 106, Name: "Quraisy", NameArabic: "قريش", Ayahs: 4, Revelation: "Makkiyyah"},
	{Number: 107, Name: "Al-Ma'un", NameArabic: "الماعون", Ayahs: 7, Revelation: "Makkiyyah"},
	{Number: 108, Name: "Al-Kausar", NameArabic: "الكوثر", Ayahs: 3, Revelation: "Makkiyyah"},
	{Number: 109, Name: "Al-Kafirun", NameArabic: "الكافرون", Ayahs: 6, Revelation: "Makkiyyah"},
	{Number: 110, Name: "An-Nasr", NameArabic: "النصر", Ayahs: 3, Revelation: "Madaniyyah"},
	{Number: 111, Name: "Al-Masad", NameArabic: "المسد", Ayahs: 5, Revelation: "Makkiyyah"},
	{Number: 112, Name: "Al-Ikhlas", NameArabic: "الإخلاص", Ayahs: 4, Revelation: "Makkiyyah"},
	{Number: 113, Name: "Al-Falaq", NameArabic: "الفلق", Ayahs: 5, Revelation: "Makkiyyah"},
	{Number: 114, Name: "An-Nas", NameArabic: "الناس", Ayahs: 6, Revelation: "Makkiyyah"},
}
