package i18n

import "context"

// Translator converts display text between languages. Implementations
// may call remote services; they must honor ctx.
type Translator interface {
	Translate(ctx context.Context, text string, from, to Lang) (string, error)
}

// Passthrough is a Translator that returns the input unchanged. The
// built-in tables ship pre-localized, so this is the default.
type Passthrough struct{}

func (Passthrough) Translate(_ context.Context, text string, _, _ Lang) (string, error) {
	return text, nil
}

// Cached wraps a Translator with a bounded cache.
type Cached struct {
	Inner Translator
	Cache *Cache
}

// Translate returns a cached result when available, otherwise delegates
// to the inner translator and stores the result.
func (c *Cached) Translate(ctx context.Context, text string, from, to Lang) (string, error) {
	if from == to || text == "" {
		return text, nil
	}
	if v, ok := c.Cache.Get(text, from, to); ok {
		return v, nil
	}
	out, err := c.Inner.Translate(ctx, text, from, to)
	if err != nil {
		return "", err
	}
	c.Cache.Put(text, from, to, out)
	return out, nil
}
