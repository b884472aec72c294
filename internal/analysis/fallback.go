package analysis

import (
	"strings"

	"github.com/abhisek/arogya/internal/triage"
)

// fallbackResult builds a deterministic local analysis when no provider
// is configured or the provider fails. Keyed on simple substring checks
// so the user always gets something displayable.
func fallbackResult(input triage.PatientInput) *Result {
	text := strings.ToLower(describedSymptoms(input))

	urgency := UrgencyModerate
	var conditions []Condition

	switch {
	case strings.Contains(text, "chest pain") ||
		strings.Contains(text, "difficulty breathing") ||
		strings.Contains(text, "severe pain") ||
		input.Severity >= 8:
		urgency = UrgencyHigh
		conditions = []Condition{{
			Name:        "Requires Immediate Medical Attention",
			Probability: 90,
			Description: "High severity symptoms require professional evaluation without delay",
		}}
	case strings.Contains(text, "headache"):
		conditions = []Condition{
			{
				Name:        "Tension Headache",
				Probability: 75,
				Description: "Common headache potentially related to stress, dehydration, or tension",
			},
			{
				Name:        "Migraine",
				Probability: 45,
				Description: "Severe headache that may include sensitivity to light or sound",
			},
		}
	case strings.Contains(text, "fever") || strings.Contains(text, "cold") || strings.Contains(text, "cough"):
		conditions = []Condition{
			{
				Name:        "Viral Upper Respiratory Infection",
				Probability: 80,
				Description: "Common cold or flu-like illness affecting the upper respiratory system",
			},
			{
				Name:        "Bacterial Infection",
				Probability: 30,
				Description: "Possible bacterial infection requiring medical evaluation",
			},
		}
	default:
		conditions = []Condition{{
			Name:        "General Health Concern",
			Probability: 65,
			Description: "Symptoms require medical evaluation for proper diagnosis and treatment plan",
		}}
	}

	return &Result{
		Urgency:    urgency,
		Conditions: conditions,
		Recommendations: []Recommendation{
			{Action: "Rest and maintain adequate hydration", Priority: "high"},
			{Action: "Monitor symptoms for changes or worsening", Priority: "medium"},
			{Action: "Consult healthcare provider if symptoms persist or worsen", Priority: "high"},
			{Action: "Avoid strenuous activity until feeling better", Priority: "medium"},
		},
		WhenToSeekHelp: []string{
			"Symptoms worsen significantly or rapidly",
			"Fever above 101°F (38.3°C) that persists",
			"Difficulty breathing or shortness of breath",
			"Severe pain or discomfort",
			"Symptoms persist beyond expected recovery time",
		},
		Disclaimer: "This is an offline analysis. Please consult with qualified healthcare professionals for actual medical advice and proper diagnosis.",
		Source:     SourceFallback,
	}
}

// fallbackChatAnswer is the deterministic follow-up assistant used when
// the provider is unavailable. Keyword-routed canned guidance.
func fallbackChatAnswer(question string) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "pain") || strings.Contains(q, "hurt"):
		return "Pain management can involve rest, over-the-counter pain relievers (as appropriate for your age and health conditions), and avoiding activities that worsen the pain. However, if pain is severe, persistent, or accompanied by other concerning symptoms, it's important to consult with a healthcare professional for proper evaluation and treatment."
	case strings.Contains(q, "fever") || strings.Contains(q, "temperature"):
		return "Fever is often your body's way of fighting infection. Stay hydrated, rest, and consider fever-reducing medication if appropriate for your situation. High fevers (over 103°F/39.4°C), persistent fevers, or fevers accompanied by severe symptoms require medical attention."
	case strings.Contains(q, "medication") || strings.Contains(q, "medicine") || strings.Contains(q, "drug"):
		return "I cannot recommend specific medications as this requires professional medical evaluation. The choice of medication depends on your specific condition, medical history, current medications, and allergies. Please consult with a healthcare provider or pharmacist."
	case strings.Contains(q, "emergency") || strings.Contains(q, "urgent") || strings.Contains(q, "serious"):
		return "If you're experiencing a medical emergency, please call your local emergency number immediately (911 in the US, 108 in India). Emergency signs include severe chest pain, difficulty breathing, severe bleeding, loss of consciousness, or severe allergic reactions. When in doubt, seek immediate medical attention rather than wait."
	case strings.Contains(q, "when") && (strings.Contains(q, "doctor") || strings.Contains(q, "hospital")):
		return "You should consider seeing a healthcare provider if your symptoms are worsening, persisting longer than expected, or if you're concerned about your condition. Trust your instincts - if you feel something isn't right, it's worth getting checked by a professional."
	case strings.Contains(q, "how long") || strings.Contains(q, "recovery") || strings.Contains(q, "heal"):
		return "Recovery time varies greatly depending on the specific condition, your overall health, age, and how well you follow treatment recommendations. Follow up with a healthcare provider if your symptoms persist beyond expected recovery times or worsen at any point."
	default:
		return "I understand your concern about your health. While I can provide general health information, every person's situation is unique. For personalized medical advice, proper diagnosis, and treatment recommendations, please consult with a qualified healthcare professional."
	}
}
