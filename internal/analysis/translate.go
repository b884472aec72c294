package analysis

import (
	"context"
	"strings"

	"github.com/abhisek/arogya/internal/i18n"
	"github.com/abhisek/arogya/internal/llm"
)

const translateMaxTokens = 600

// llmTranslator implements i18n.Translator over the LLM provider. It is
// always wrapped in an i18n.Cached so repeated strings are translated
// once per session.
type llmTranslator struct {
	provider llm.Provider
}

func (t llmTranslator) Translate(ctx context.Context, text string, from, to i18n.Lang) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTranslation)
	resp, err := t.provider.Generate(ctx, llm.Request{
		System: "You are a medical translator. Translate the user's text exactly, keeping medical terms accurate. Reply with the translation only.",
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: "Translate from " + i18n.Names[from] + " to " + i18n.Names[to] + ":\n\n" + text,
		}},
		MaxTokens:   translateMaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	out := strings.TrimSpace(decodeText(resp.Content))
	if out == "" {
		return text, nil
	}
	return out, nil
}

// newTranslator builds the session translator: provider-backed when a
// provider exists, passthrough otherwise. Either way the cache bounds
// repeat work.
func newTranslator(provider llm.Provider) i18n.Translator {
	var inner i18n.Translator = i18n.Passthrough{}
	if provider != nil {
		inner = llmTranslator{provider: provider}
	}
	return &i18n.Cached{Inner: inner, Cache: i18n.NewCache(256)}
}

// LocalizeResult returns a copy of result with its display strings
// translated to the given language. English input or any translation
// failure returns the original result untouched: localization is
// best-effort and never blocks showing guidance.
func (s *Service) LocalizeResult(ctx context.Context, result *Result, to i18n.Lang) *Result {
	if result == nil || to == i18n.English || to == "" {
		return result
	}

	tr := func(text string) (string, bool) {
		out, err := s.translator.Translate(ctx, text, i18n.English, to)
		if err != nil || out == "" {
			return text, false
		}
		return out, true
	}

	localized := *result
	ok := true

	localized.Conditions = make([]Condition, len(result.Conditions))
	for i, c := range result.Conditions {
		localized.Conditions[i] = c
		if c.Description != "" {
			localized.Conditions[i].Description, ok = tr(c.Description)
			if !ok {
				return result
			}
		}
	}

	localized.Recommendations = make([]Recommendation, len(result.Recommendations))
	for i, r := range result.Recommendations {
		localized.Recommendations[i] = r
		localized.Recommendations[i].Action, ok = tr(r.Action)
		if !ok {
			return result
		}
	}

	localized.WhenToSeekHelp = make([]string, len(result.WhenToSeekHelp))
	for i, w := range result.WhenToSeekHelp {
		localized.WhenToSeekHelp[i], ok = tr(w)
		if !ok {
			return result
		}
	}

	localized.Avoid = make([]string, len(result.Avoid))
	for i, a := range result.Avoid {
		localized.Avoid[i], ok = tr(a)
		if !ok {
			return result
		}
	}

	localized.Disclaimer, ok = tr(result.Disclaimer)
	if !ok {
		return result
	}

	return &localized
}
