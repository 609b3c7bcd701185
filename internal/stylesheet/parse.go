package stylesheet

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Load reads and parses the CSS file at path.
func Load(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sheet, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", path, err)
	}
	return sheet, nil
}

// Parse tokenizes content with the tdewolff CSS grammar and keeps the rulesets whose selectors
// are class or id selectors (".button", "#toolbar", ".button.selected"). Selector lists
// (".a, .b") become one rule per selector. At-rules and their blocks are skipped.
func Parse(content string) (*Stylesheet, error) {
	p := css.NewParser(parse.NewInput(strings.NewReader(content)), false)
	sheet := &Stylesheet{}
	var (
		selectors []Selector
		props     map[string]string
		atDepth   int
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return sheet, err
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case css.BeginRulesetGrammar:
			if atDepth > 0 {
				continue
			}
			selectors = parseSelectorList(joinValues(p.Values()))
			props = make(map[string]string)
		case css.DeclarationGrammar:
			if props == nil {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(string(data)))
			props[key] = declValue(p.Values())
		case css.EndRulesetGrammar:
			for _, sel := range selectors {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
			selectors, props = nil, nil
		}
	}
}

// declValue joins the value tokens of a declaration with single spaces ("1px solid #fff").
func declValue(vals []css.Token) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		if v.TokenType == css.WhitespaceToken {
			continue
		}
		parts = append(parts, string(v.Data))
	}
	return strings.Join(parts, " ")
}

func joinValues(vals []css.Token) string {
	var b strings.Builder
	for _, v := range vals {
		b.Write(v.Data)
	}
	return b.String()
}

// parseSelectorList splits a selector list and drops every entry that is not a plain
// class/id compound selector.
func parseSelectorList(s string) []Selector {
	var out []Selector
	for _, part := range strings.Split(s, ",") {
		if sel, ok := ParseSelector(part); ok {
			out = append(out, sel)
		}
	}
	return out
}
