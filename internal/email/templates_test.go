package email

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTemplate(t *testing.T) {
	t.Parallel()

	t.Run("registered types resolve to their own template", func(t *testing.T) {
		for _, typ := range RegisteredTypes() {
			tpl := LookupTemplate(typ)
			assert.NotEmpty(t, tpl.Subject, "type %q", typ)
			assert.NotEmpty(t, tpl.Plaintext, "type %q", typ)
			assert.NotEmpty(t, tpl.HTML, "type %q", typ)
		}
	})

	t.Run("unknown type falls back", func(t *testing.T) {
		tpl := LookupTemplate(Type("SOMETHING ELSE"))
		assert.Equal(t, fallbackTemplate, tpl)
	})

	t.Run("empty type falls back", func(t *testing.T) {
		tpl := LookupTemplate("")
		assert.Equal(t, fallbackTemplate, tpl)
	})
}

// Every {{TOKEN}} in every registered template must name a Data field, so
// that substitution never leaves a known-looking token behind.
func TestTemplateTokensAreKnownFields(t *testing.T) {
	t.Parallel()

	known := Data{}.Fields()
	tokenRe := regexp.MustCompile(`\{\{([A-Z_]+)\}\}`)

	check := func(t *testing.T, body string) {
		t.Helper()
		for _, m := range tokenRe.FindAllStringSubmatch(body, -1) {
			_, ok := known[m[1]]
			require.True(t, ok, "template references unknown field %q", m[1])
		}
	}

	for typ, tpl := range templates {
		t.Run(string(typ), func(t *testing.T) {
			check(t, tpl.Subject)
			check(t, tpl.Plaintext)
			check(t, tpl.HTML)
		})
	}

	t.Run("fallback", func(t *testing.T) {
		check(t, fallbackTemplate.Subject)
		check(t, fallbackTemplate.Plaintext)
		check(t, fallbackTemplate.HTML)
	})
}
