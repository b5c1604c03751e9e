package numfmt

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type symbols struct {
	decimal string
	group   string
}

var invariantSymbols = symbols{decimal: ".", group: ","}

// symbolCache maps a canonical tag string to its symbols.
var symbolCache sync.Map

// localize rewrites an invariant number string with the locale's symbols.
func (s symbols) localize(v string) string {
	if s == invariantSymbols {
		return v
	}
	var b strings.Builder
	b.Grow(len(v) + 4)
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '.':
			b.WriteString(s.decimal)
		case ',':
			b.WriteString(s.group)
		default:
			b.WriteByte(v[i])
		}
	}
	return b.String()
}

// symbolsFor derives the decimal symbol and group separator of tag from
// CLDR data by rendering two probe numbers.
func symbolsFor(tag language.Tag) symbols {
	if tag == language.Und {
		return invariantSymbols
	}
	key := tag.String()
	if s, ok := symbolCache.Load(key); ok {
		return s.(symbols)
	}

	p := message.NewPrinter(tag)
	s := invariantSymbols

	dec := p.Sprintf("%v", number.Decimal(1.5))
	if strings.HasPrefix(dec, "1") && strings.HasSuffix(dec, "5") && len(dec) > 2 {
		s.decimal = dec[1 : len(dec)-1]
	}

	grp := strings.TrimPrefix(p.Sprintf("%v", number.Decimal(1000000)), "1")
	if i := strings.Index(grp, "000"); i > 0 {
		s.group = grp[:i]
	}

	symbolCache.Store(key, s)
	return s
}

// ParseLocale resolves a locale name. "" and "invariant" select the
// invariant locale, "auto" the process locale (see Ambient). POSIX names
// such as de_DE.UTF-8 are accepted.
func ParseLocale(name string) (language.Tag, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "invariant", "c", "posix":
		return language.Und, nil
	case "auto":
		return Ambient(), nil
	}
	tag, err := language.Parse(posixToBCP47(name))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, name, err)
	}
	return tag, nil
}

// Ambient returns the process locale from LC_ALL, LC_NUMERIC or LANG, in
// that order, or the invariant locale when none is usable.
func Ambient() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if v == "C" || v == "POSIX" {
			return language.Und
		}
		tag, err := language.Parse(posixToBCP47(v))
		if err != nil {
			return language.Und
		}
		return tag
	}
	return language.Und
}

func posixToBCP47(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	return strings.ReplaceAll(name, "_", "-")
}
