package triage

// Bundle is a pair of action lists shown alongside an emergency
// classification: what to do right now, and what not to do.
type Bundle struct {
	Immediate []string
	Avoid     []string
}

// categoryBundles maps each clinical category to its action lists.
var categoryBundles = map[Category]Bundle{
	CategoryCardiac: {
		Immediate: []string{
			"Call emergency services immediately",
			"Take aspirin if not allergic",
			"Sit upright",
			"Loosen tight clothing",
		},
		Avoid: []string{
			"Do not drive yourself",
			"Do not ignore symptoms",
			"Do not take nitroglycerin unless prescribed",
		},
	},
	CategoryRespiratory: {
		Immediate: []string{
			"Call emergency services",
			"Stay calm",
			"Sit upright",
			"Use rescue inhaler if prescribed",
		},
		Avoid: []string{
			"Do not lie down",
			"Do not leave the person alone",
			"Do not give food or water",
		},
	},
	CategoryNeurological: {
		Immediate: []string{
			"Call emergency services immediately",
			"Note time symptoms started",
			"Stay with patient",
			"Check FAST signs",
		},
		Avoid: []string{
			"Do not give medications",
			"Do not give food or water",
			"Do not move patient unnecessarily",
		},
	},
	CategoryTrauma: {
		Immediate: []string{
			"Call emergency services",
			"Control bleeding with pressure",
			"Keep patient still",
			"Monitor consciousness",
		},
		Avoid: []string{
			"Do not move patient",
			"Do not remove embedded objects",
			"Do not give food or water",
		},
	},
	CategoryAllergic: {
		Immediate: []string{
			"Call emergency services",
			"Use EpiPen if available",
			"Remove allergen source",
			"Position upright if conscious",
		},
		Avoid: []string{
			"Do not induce vomiting",
			"Do not give antihistamines for severe reactions",
			"Do not leave patient alone",
		},
	},
}

// genericBundle covers every emergency type without a category-specific
// entry: combinations, severity and duration results, and poisoning.
var genericBundle = Bundle{
	Immediate: []string{
		"Call emergency services immediately",
		"Stay with the patient",
		"Keep the patient calm and still",
		"Gather current medications to tell responders",
	},
	Avoid: []string{
		"Do not give food, water or medication",
		"Do not leave the patient alone",
		"Do not delay calling for help",
	},
}

// Recommendations resolves the action bundle for a classification.
// Non-emergency classifications yield an empty bundle; emergency types
// without a category-specific bundle get the generic one.
func Recommendations(c Classification) Bundle {
	if !c.IsEmergency {
		return Bundle{}
	}
	if category, ok := c.ClinicalCategory(); ok {
		if b, ok := categoryBundles[category]; ok {
			return b
		}
	}
	return genericBundle
}
