package model

import "time"

// Fasting day statuses, following the original Indonesian labels.
const (
	StatusFasting    = "puasa"
	StatusNotFasting = "tidak"
	StatusUnset      = "belum"
)

// ExemptionReasons are the selectable reasons for a not-fasting day.
var ExemptionReasons = []string{
	"Sakit",
	"Haid / Nifas",
	"Perjalanan jauh (Safar)",
	"Hamil / Menyusui",
	"Lanjut Usia",
	"Lainnya",
}

// Doa is a supplication with its Arabic text, Latin transliteration, and
// Indonesian translation.
type Doa struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Arabic      string `json:"arabic"`
	Latin       string `json:"latin"`
	Translation string `json:"translation"`
}

// FastingDoas are the two supplications of the fasting day: the intention
// recited at sahur and the du'a at iftar.
var FastingDoas = []Doa{
	{
		ID:          "sahur",
		Label:       "Niat Puasa Ramadhan",
		Arabic:      "نَوَيْتُ صَوْمَ غَدٍ عَنْ أَدَاءِ فَرْضِ شَهْرِ رَمَضَانَ هَذِهِ السَّنَةِ لِلَّهِ تَعَالَى",
		Latin:       "Nawaitu shauma ghadin 'an adaa'i fardhi syahri Ramadhana hadzihis sanati lillahi ta'ala.",
		Translation: "Saya niat berpuasa esok hari untuk menunaikan kewajiban puasa bulan Ramadhan tahun ini karena Allah Ta'ala.",
	},
	{
		ID:          "buka",
		Label:       "Doa Berbuka Puasa",
		Arabic:      "اللَّهُمَّ لَكَ صُمْتُ وَبِكَ آمَنْتُ وَعَلَى رِزْقِكَ أَفْطَرْتُ",
		Latin:       "Allahumma laka shumtu wa bika aamantu wa 'alaa rizqika afthartu.",
		Translation: "Ya Allah, untuk-Mu aku berpuasa, kepada-Mu aku beriman, dan dengan rezeki-Mu aku berbuka.",
	},
}

// FastingEntry is one day of the fasting log, keyed by its "YYYY-MM-DD" date.
// Reason is only meaningful when Status is StatusNotFasting.
type FastingEntry struct {
	AccountID int       `db:"account_id" json:"-"`
	Date      string    `db:"date" json:"date"`
	Status    string    `db:"status" json:"status"`
	Reason    *string   `db:"reason" json:"reason,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// FastingStats summarizes the 30-day season.
type FastingStats struct {
	Fasting    int `json:"fasting"`
	NotFasting int `json:"not_fasting"`
	Unset      int `json:"unset"`
	Total      int `json:"total"`
}
