// Package golang renders the chain enumeration as Go source.
package golang

import (
	"bytes"
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"text/template"
	"time"
	"unicode"
	"unicode/utf8"

	"chaingen/internal/domain"
	"chaingen/internal/domain/entity"
	domainService "chaingen/internal/domain/service"
	"chaingen/internal/pkg/ident"

	"golang.org/x/tools/imports"
)

// Compile-time check
var _ domainService.Renderer = (*Renderer)(nil)

// reserved holds the exported names the template declares itself.
var reserved = []string{
	"AddChainParams",
	"All",
	"Chain",
	"ErrUnknownChain",
	"Explorer",
	"FromID",
	"Info",
	"NativeCurrency",
}

var tmpl = template.Must(template.New("chains").Funcs(template.FuncMap{
	"comment":   comment,
	"quote":     strconv.Quote,
	"rpcs":      rpcsLiteral,
	"strs":      stringsLiteral,
	"explorers": explorersLiteral,
	"duration":  durationLiteral,
	"deref":     func(p *uint64) uint64 { return *p },
}).Parse(tmplSource))

// Renderer emits a self-contained Go file declaring the Chain enumeration.
type Renderer struct {
	filename string
}

// NewRenderer creates a renderer. filename only appears in formatter error messages.
func NewRenderer(filename string) *Renderer {
	return &Renderer{filename: filename}
}

// Reserved lists identifiers variants must not use.
func (r *Renderer) Reserved() []string {
	out := make([]string, len(reserved))
	copy(out, reserved)
	return out
}

type tmplData struct {
	Package  string
	Variants []entity.Variant
}

// Render executes the template over variants, which must already be sorted and uniquely named,
// and formats the result.
func (r *Renderer) Render(pkg string, variants []entity.Variant) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("%w: invalid package name %q", domain.ErrGeneration, pkg)
	}
	for _, v := range variants {
		if !ident.IsExported(v.Identifier) {
			return nil, fmt.Errorf("%w: chain id %d has invalid identifier %q",
				domain.ErrGeneration, v.Record.ChainID, v.Identifier,
			)
		}
	}

	buffer := new(bytes.Buffer)
	if err := tmpl.Execute(buffer, tmplData{Package: pkg, Variants: variants}); err != nil {
		return nil, fmt.Errorf("%w: failed to execute template: %v", domain.ErrGeneration, err)
	}

	code, err := imports.Process(r.filename, buffer.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: generated source does not parse: %v", domain.ErrGeneration, err)
	}
	return code, nil
}

// comment flattens s onto a single line for use in a // comment.
// Runes the Go scanner rejects in source (NUL, BOM, control characters) become spaces.
func comment(s string) string {
	printable := strings.Map(func(r rune) rune {
		if r == '\uFEFF' || r == utf8.RuneError || !unicode.IsPrint(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(printable), " ")
}

func rpcsLiteral(urls []entity.RPCURL) string {
	s := make([]string, len(urls))
	for i, u := range urls {
		s[i] = u.String()
	}
	return stringsLiteral(s)
}

func stringsLiteral(s []string) string {
	if len(s) == 0 {
		return "nil"
	}
	var b strings.Builder
	b.WriteString("[]string{\n")
	for _, item := range s {
		b.WriteString(strconv.Quote(item))
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String()
}

func explorersLiteral(explorers []entity.Explorer) string {
	if len(explorers) == 0 {
		return "nil"
	}
	var b strings.Builder
	b.WriteString("[]Explorer{\n")
	for _, e := range explorers {
		fmt.Fprintf(&b, "{Name: %s, URL: %s, Standard: %s, Icon: %s},\n",
			strconv.Quote(e.Name), strconv.Quote(e.URL), strconv.Quote(e.Standard), strconv.Quote(e.Icon),
		)
	}
	b.WriteString("}")
	return b.String()
}

// durationLiteral spells d with the largest exact time unit.
func durationLiteral(d time.Duration) string {
	units := []struct {
		unit time.Duration
		name string
	}{
		{time.Hour, "time.Hour"},
		{time.Minute, "time.Minute"},
		{time.Second, "time.Second"},
		{time.Millisecond, "time.Millisecond"},
		{time.Microsecond, "time.Microsecond"},
	}
	for _, u := range units {
		if d%u.unit == 0 {
			return fmt.Sprintf("%d * %s", d/u.unit, u.name)
		}
	}
	return fmt.Sprintf("%d", int64(d))
}
