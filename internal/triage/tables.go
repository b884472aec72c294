package triage

import "github.com/abhisek/arogya/internal/i18n"

// categoryKeywords pairs a clinical category with its trigger phrases.
// Slices keep iteration order fixed so first-match is deterministic.
type categoryKeywords struct {
	Category Category
	Keywords []string
}

// keywordTables holds the per-language keyword sets. Tables are
// populated at init and never mutated afterwards.
var keywordTables = map[i18n.Lang][]categoryKeywords{
	i18n.English: {
		{CategoryCardiac, []string{
			"chest pain", "heart attack", "crushing chest pain", "severe chest pain",
			"chest pressure", "heart racing", "chest tightness", "angina",
		}},
		{CategoryRespiratory, []string{
			"can't breathe", "difficulty breathing", "shortness of breath",
			"choking", "gasping", "respiratory distress", "suffocating",
		}},
		{CategoryNeurological, []string{
			"stroke", "severe headache", "sudden confusion", "paralysis",
			"facial drooping", "speech problems", "vision loss", "seizure",
		}},
		{CategoryTrauma, []string{
			"severe bleeding", "heavy bleeding", "major injury", "unconscious",
			"broken bone", "head injury", "accident", "trauma",
		}},
		{CategoryAllergic, []string{
			"allergic reaction", "anaphylaxis", "swelling throat", "swelling tongue",
			"severe allergic", "throat closing", "hives all over",
		}},
		{CategoryPoisoning, []string{
			"poisoning", "overdose", "toxic", "ingested", "swallowed poison",
		}},
	},
	i18n.Hindi: {
		{CategoryCardiac, []string{
			"सीने में दर्द", "दिल का दौरा", "सीने में दबाव", "हृदय की समस्या",
			"छाती में दर्द", "हृदयगति", "सांस लेने में तकलीफ",
		}},
		{CategoryRespiratory, []string{
			"सांस नहीं आ रही", "सांस लेने में कठिनाई", "दम घुट रहा है",
			"सांस फूल रही है", "गला रुंध रहा है",
		}},
		{CategoryNeurological, []string{
			"स्ट्रोक", "तेज सिरदर्द", "लकवा", "चेहरे की समस्या",
			"बोलने में कठिनाई", "दौरा", "बेहोशी",
		}},
		{CategoryTrauma, []string{
			"तेज खून बह रहा है", "गंभीर चोट", "बेहोश", "हड्डी टूटी है",
			"सिर की चोट", "दुर्घटना",
		}},
		{CategoryAllergic, []string{
			"एलर्जी की प्रतिक्रिया", "गले में सूजन", "जीभ में सूजन",
			"गंभीर एलर्जी", "सांस लेने में तकलीफ एलर्जी से",
		}},
	},
}

// keywordsFor resolves the keyword table for a language, falling back
// to English when the language has no table.
func keywordsFor(lang i18n.Lang) []categoryKeywords {
	resolved := i18n.Resolve(lang, func(l i18n.Lang) bool {
		_, ok := keywordTables[l]
		return ok
	})
	return keywordTables[resolved]
}

// criticalCombinations are phrase pairs that together indicate an
// emergency even when no single keyword fires. Both phrases must be
// present.
var criticalCombinations = [][2]string{
	{"chest pain", "shortness of breath"},
	{"chest pain", "nausea"},
	{"severe headache", "confusion"},
	{"severe headache", "vision problems"},
	{"difficulty breathing", "chest pain"},
	{"swelling", "throat"},
	{"swelling", "tongue"},
	{"severe bleeding", "weakness"},
	{"unconscious", "not responding"},
}

// ageThreshold is the per-bracket severity bar and the symptoms that,
// combined with a score at or above it, escalate to high urgency.
type ageThreshold struct {
	Severity        int
	ConcernKeywords []string
}

var ageThresholds = map[AgeBracket]ageThreshold{
	Age18To30: {9, []string{"chest pain", "severe headache"}},
	Age31To50: {8, []string{"chest pain", "breathing", "headache"}},
	Age51To65: {7, []string{"chest pain", "breathing", "dizziness"}},
	Age65Plus: {6, []string{"chest pain", "breathing", "confusion", "falls"}},
}

// thresholdFor returns the age threshold for a bracket, defaulting to
// the 31-50 row for unknown or unset brackets.
func thresholdFor(bracket AgeBracket) ageThreshold {
	if t, ok := ageThresholds[bracket]; ok {
		return t
	}
	return ageThresholds[DefaultAgeBracket]
}
