// Package i18n holds language codes, the lookup fallback chain and a
// bounded translation cache shared by the triage tables and the UI.
package i18n

// Lang is an ISO 639-1 language code.
type Lang string

const (
	English   Lang = "en"
	Hindi     Lang = "hi"
	Bengali   Lang = "bn"
	Tamil     Lang = "ta"
	Telugu    Lang = "te"
	Gujarati  Lang = "gu"
	Marathi   Lang = "mr"
	Kannada   Lang = "kn"
	Malayalam Lang = "ml"
	Punjabi   Lang = "pa"
	Urdu      Lang = "ur"
	Assamese  Lang = "as"
	Odia      Lang = "or"
)

// Default is the language every lookup chain terminates in.
const Default = English

// Names maps each supported code to its native display name.
var Names = map[Lang]string{
	English:   "English",
	Hindi:     "हिंदी",
	Bengali:   "বাংলা",
	Tamil:     "தமிழ்",
	Telugu:    "తెలుగు",
	Gujarati:  "ગુજરાતી",
	Marathi:   "मराठी",
	Kannada:   "ಕನ್ನಡ",
	Malayalam: "മലയാളം",
	Punjabi:   "ਪੰਜਾਬੀ",
	Urdu:      "اردو",
	Assamese:  "অসমীয়া",
	Odia:      "ଓଡ଼ିଆ",
}

// Supported reports whether code is a known language code.
func Supported(code Lang) bool {
	_, ok := Names[code]
	return ok
}

// Resolve picks the language a table lookup should use: the requested
// code when it is present in have, otherwise the default. Pure; the
// same inputs always resolve the same way.
func Resolve(requested Lang, have func(Lang) bool) Lang {
	if requested != "" && have(requested) {
		return requested
	}
	return Default
}
