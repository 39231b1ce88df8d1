package swagval

import (
	"regexp"
	"sync"

	"github.com/reoring/swagval/i18n"
	"github.com/reoring/swagval/schema"
)

// PatternMatcher reports whether s matches pattern.
type PatternMatcher func(pattern, s string) bool

// Config is the read-only context threaded through every validation step.
type Config struct {
	// Match evaluates "pattern" constraints. Nil behaves like AlwaysMatch.
	Match PatternMatcher
	// Definitions backs reference resolution.
	Definitions schema.Definitions
	// Translator renders messages. Nil means i18n.English().
	Translator i18n.Translator
}

// DefaultConfig leaves patterns unenforced, has no definitions and reports in
// English.
func DefaultConfig() Config {
	return Config{Match: AlwaysMatch, Definitions: schema.Definitions{}, Translator: i18n.English()}
}

// AlwaysMatch accepts every string for every pattern.
func AlwaysMatch(string, string) bool { return true }

// RegexpMatcher returns a PatternMatcher backed by Go's RE2 engine. Compiled
// patterns are cached; a pattern that fails to compile never matches.
func RegexpMatcher() PatternMatcher {
	var cache sync.Map // pattern -> *regexp.Regexp (nil when invalid)
	return func(pattern, s string) bool {
		if cached, ok := cache.Load(pattern); ok {
			re, _ := cached.(*regexp.Regexp)
			return re != nil && re.MatchString(s)
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			cache.Store(pattern, (*regexp.Regexp)(nil))
			return false
		}
		cache.Store(pattern, re)
		return re.MatchString(s)
	}
}

func (c Config) match(pattern, s string) bool {
	if c.Match == nil {
		return true
	}
	return c.Match(pattern, s)
}

func (c Config) message(code string, data map[string]string) string {
	if c.Translator == nil {
		return i18n.English().Message(code, data)
	}
	return c.Translator.Message(code, data)
}
