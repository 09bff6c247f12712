package model

// Ayah is one verse with its Arabic text and Indonesian translation.
type Ayah struct {
	Number      int    `json:"number"`
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
}

// Surah is a cached bilingual chapter. It is immutable once cached: either
// absent from the store or complete.
type Surah struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Ayahs       []Ayah `json:"ayahs"`
}

// SurahInfo is one row of the static offline surah index.
type SurahInfo struct {
	Number     int    `json:"number"`
	Name       string `json:"name"`
	NameArabic string `json:"name_arabic"`
	Ayahs      int    `json:"ayahs"`
	Revelation string `json:"revelation"`
}

// Bookmark is the single reading position slot, overwritten on every save.
type Bookmark struct {
	Surah int `json:"surah"`
	Ayah  int `json:"ayah"`
}
