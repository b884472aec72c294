package analysis

import (
	"fmt"
	"strings"

	"github.com/abhisek/arogya/internal/triage"
)

// analysisSystemPrompt frames the LLM's role and constraints for the
// symptom analysis call.
const analysisSystemPrompt = `You are a medical AI assistant providing preliminary health information. You must:
1. Never provide definitive diagnoses - only suggest possible conditions
2. Always recommend consulting healthcare professionals
3. Provide structured, helpful information
4. Use appropriate medical terminology
5. Assess urgency levels appropriately

IMPORTANT: This is for informational purposes only and should not replace professional medical advice.`

// buildAnalysisPrompt renders the patient information into the user
// message for the analysis call.
func buildAnalysisPrompt(input triage.PatientInput) string {
	age := string(input.AgeGroup)
	if age == "" {
		age = "Not specified"
	}
	duration := input.Duration
	if duration == "" {
		duration = "Not specified"
	}

	var b strings.Builder
	b.WriteString("Please analyze the following patient information:\n\n")
	b.WriteString("Patient Information:\n")
	fmt.Fprintf(&b, "- Age Group: %s\n", age)
	fmt.Fprintf(&b, "- Symptoms: %s\n", describedSymptoms(input))
	fmt.Fprintf(&b, "- Severity: %d/10\n", input.Severity)
	fmt.Fprintf(&b, "- Duration: %s\n", duration)
	b.WriteString("\nConsider these factors in your analysis:\n")
	fmt.Fprintf(&b, "1. Symptom severity (%d/10) and duration (%s)\n", input.Severity, duration)
	fmt.Fprintf(&b, "2. Age-appropriate conditions for %s\n", age)
	b.WriteString("3. Urgency assessment based on symptom combination\n")
	b.WriteString("4. Appropriate recommendations for the severity level\n")
	b.WriteString("5. Clear warning signs for when to seek immediate care\n")
	return b.String()
}

// describedSymptoms joins the free text and any ticked symptom tags
// into one description.
func describedSymptoms(input triage.PatientInput) string {
	parts := make([]string, 0, 1+len(input.Symptoms))
	if t := strings.TrimSpace(input.FreeText); t != "" {
		parts = append(parts, t)
	}
	for _, tag := range input.Symptoms {
		parts = append(parts, triage.TagPhrase(tag))
	}
	if len(parts) == 0 {
		return "Not specified"
	}
	return strings.Join(parts, "; ")
}

// chatSystemPrompt frames the follow-up assistant.
const chatSystemPrompt = `You are a helpful medical AI assistant providing follow-up support after a symptom analysis.

Provide a helpful, medically responsible response that:
- Addresses the user's specific question about their health analysis
- Always emphasizes the importance of consulting healthcare professionals for medical decisions
- Is supportive and empathetic
- Keeps responses concise but informative (2-3 paragraphs maximum)
- Avoids providing definitive medical diagnoses
- Never recommends specific medications without professional consultation
- If asked about emergency symptoms, immediately recommends seeking urgent care

This is for informational purposes only and should not replace professional medical consultation.`

// buildChatPrompt renders the follow-up question, with prior analysis
// context when available.
func buildChatPrompt(question string, input triage.PatientInput, prior *Result) string {
	var b strings.Builder
	if prior != nil && len(prior.Conditions) > 0 {
		names := make([]string, len(prior.Conditions))
		for i, c := range prior.Conditions {
			names[i] = c.Name
		}
		b.WriteString("Previous Analysis Context:\n")
		fmt.Fprintf(&b, "- Patient's reported symptoms: %s\n", describedSymptoms(input))
		fmt.Fprintf(&b, "- Severity level: %d/10\n", input.Severity)
		fmt.Fprintf(&b, "- Duration: %s\n", input.Duration)
		fmt.Fprintf(&b, "- Previous analysis showed possible conditions: %s\n\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "User's Current Question: %q\n", question)
	return b.String()
}
