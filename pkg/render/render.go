// Package render turns extracted rule groups into .eslintrc starter files.
//
// Every target is rendered from the same groups by the same code path; the
// Target value alone decides comment syntax, separators, nesting tokens and
// the comment column.
package render

import (
	"strings"
	"time"

	"github.com/yaklabco/eslintgen/pkg/ruledoc"
)

// DateLayout is the layout of the "Updated on" line.
const DateLayout = "2006-01-02"

// Project links embedded in generated files.
const (
	GeneratorURL   = "https://github.com/i-ron-y/eslint-starter-file-generator"
	ConfiguringURL = "https://eslint.org/docs/user-guide/configuring"
	RulesURL       = "https://eslint.org/docs/rules/"
)

// disabledRule is the severity every generated rule starts with.
const disabledRule = "0"

// Options holds the inputs that are not part of the rule data.
type Options struct {
	// Date is printed in the file description. Zero means now.
	Date time.Time
}

func (o Options) date() string {
	if o.Date.IsZero() {
		return time.Now().Format(DateLayout)
	}
	return o.Date.Format(DateLayout)
}

// Render produces the complete starter file for target.
func Render(groups []ruledoc.Group, target Target, opts Options) string {
	doc := newDocument(target)

	if target.opening != "" {
		doc.code(0, target.opening)
		doc.blank()
	}

	writeDescription(doc, opts)
	writeParserOptions(doc)
	writeParser(doc)
	writeEnv(doc)
	writePlaceholders(doc)
	writeRules(doc, groups)

	if target.braces {
		doc.code(target.base(), "}")
		doc.blank()
		doc.code(0, target.closing)
	}

	return doc.String()
}

func writeDescription(doc *document, opts Options) {
	lvl := doc.target.base()

	doc.note(lvl, "["+doc.target.Label()+"]")
	doc.note(lvl, "")
	doc.note(lvl, "An .eslintrc starter file with all rules (set to 0) and envs (set to false) listed.")
	doc.note(lvl, "Other options (although by no means comprehensive) are either set to false or else commented out.")
	doc.note(lvl, "")
	doc.note(lvl, "Updated on "+opts.date()+".")
	doc.note(lvl, "")
	doc.note(lvl, "Starter file generated by ESLint Starter File Generator:")
	doc.note(lvl, "    "+GeneratorURL)
	doc.note(lvl, "")
	doc.note(lvl, "ESLint docs -- Configuring ESLint:      "+ConfiguringURL)
	doc.note(lvl, "ESLint docs -- List of available rules: "+RulesURL)
	doc.blank()
}

func writeParserOptions(doc *document) {
	t := doc.target
	lvl := t.base()

	doc.code(lvl, t.blockOpen("parserOptions"))
	doc.blank()

	doc.entry(lvl+1, commented(t, t.key("ecmaVersion")+"5"+t.sep(false)),
		"set to 3, 5 (default), 6, 7, or 8 to specify the version of ECMAScript syntax you want to use.")
	doc.entry(lvl+1, t.comment,
		"You can also set to 2015 (same as 6), 2016 (same as 7), or 2017 (same as 8) to use the year-based naming.")
	doc.blank()
	doc.entry(lvl+1, commented(t, t.key("sourceType")+`"script"`+t.sep(false)),
		`set to "script" (default) or "module" if your code is in ECMAScript modules.`)
	doc.blank()

	doc.code(lvl+1, t.blockOpen("ecmaFeatures"))
	doc.blank()
	doc.entry(lvl+2, t.key("globalReturn")+"false"+t.sep(false), "allow return statements in the global scope")
	doc.entry(lvl+2, t.key("impliedStrict")+"false"+t.sep(false), "enable global strict mode (if ecmaVersion is 5 or greater)")
	doc.entry(lvl+2, t.key("jsx")+"false"+t.sep(false), "enable JSX")
	doc.blank()
	doc.entry(lvl+2, t.key("experimentalObjectRestSpread")+"false"+t.sep(true),
		"enable support for the experimental object rest/spread properties")
	doc.note(lvl+2, "(IMPORTANT: This is an experimental feature that may change significantly in the future.")
	doc.note(lvl+2, "It’s recommended that you do not write rules relying on this functionality unless you are")
	doc.note(lvl+2, "willing to incur maintenance cost when it changes.)")
	doc.blank()

	if t.braces {
		doc.code(lvl+1, "}")
		doc.blank()
		doc.code(lvl, "},")
		doc.blank()
	}
}

func writeParser(doc *document) {
	t := doc.target
	doc.entry(t.base(), commented(t, t.key("parser")+`"espree"`+t.sep(false)),
		`compatible parsers: "espree" (default), "esprima", "babel-eslint", and "typescript-eslint-parser" (experimental)`)
	doc.blank()
}

func writeEnv(doc *document) {
	t := doc.target
	lvl := t.base()

	doc.code(lvl, t.blockOpen("env"))
	doc.blank()

	envs := Environments()
	for i, env := range envs {
		doc.entry(lvl+1, t.key(env.Name)+"false"+t.sep(i == len(envs)-1), env.Description)
	}
	doc.blank()

	if t.braces {
		doc.code(lvl, "},")
		doc.blank()
	}
}

// writePlaceholders emits the globals, plugins and extends sections as
// guidance only; their contents are project specific.
func writePlaceholders(doc *document) {
	t := doc.target
	lvl := t.base()

	if t.braces {
		doc.code(lvl, t.blockOpen("globals"))
		doc.blank()
		doc.note(lvl+1, `e.g. "angular": true`)
		doc.blank()
		doc.code(lvl, "},")
		doc.blank()

		doc.code(lvl, t.key("plugins")+"[")
		doc.blank()
		doc.note(lvl+1, "e.g. \"react\" (must run `npm install eslint-plugin-react` first)")
		doc.blank()
		doc.code(lvl, "],")
		doc.blank()

		doc.code(lvl, t.key("extends")+"[")
		doc.blank()
		doc.entry(lvl+1, commented(t, `"eslint:recommended"`),
			"enables a subset of core rules that report common problems, which have a check mark on the rules page")
		doc.entry(lvl+1, commented(t, `"eslint:all"`),
			"enable all core rules in the currently installed version of ESLint")
		doc.blank()
		doc.code(lvl, "],")
		doc.blank()
		return
	}

	// The indentation-sensitive format cannot hold an empty mapping next to
	// comments, so the whole section is commented out.
	doc.note(lvl, "globals:")
	doc.blank()
	doc.note(lvl, indentUnit+t.comment+" e.g. angular")
	doc.note(lvl, indentUnit+"angular: true")
	doc.blank()

	doc.note(lvl, "plugins:")
	doc.blank()
	doc.note(lvl, indentUnit+t.comment+" e.g. react (must run `npm install eslint-plugin-react` first)")
	doc.note(lvl, indentUnit+"- react")
	doc.blank()

	doc.note(lvl, "extends:")
	doc.blank()
	doc.entry(lvl, commented(t, indentUnit+"- eslint:recommended"),
		"enables a subset of core rules that report common problems, which have a check mark on the rules page")
	doc.entry(lvl, commented(t, indentUnit+"- eslint:all"),
		"enable all core rules in the currently installed version of ESLint")
	doc.blank()
}

func writeRules(doc *document, groups []ruledoc.Group) {
	t := doc.target
	lvl := t.base()

	doc.code(lvl, t.blockOpen("rules"))
	doc.blank()
	writeUsage(doc)

	lastGroup, lastRule := lastRuleIndex(groups)
	banner := strings.Repeat(t.comment, t.headerRep)

	for gi, group := range groups {
		doc.code(lvl+1, banner+" "+group.Category+" "+banner)
		doc.blank()

		for ri, rule := range group.Rules {
			last := gi == lastGroup && ri == lastRule
			doc.entry(lvl+1, t.key(rule.Name)+disabledRule+t.sep(last), rule.Description)
		}
		doc.blank()
	}
}

func writeUsage(doc *document) {
	t := doc.target
	lvl := t.base() + 1

	doc.note(lvl, "Usage:")
	doc.note(lvl, indentUnit+`"off" or 0 - turn the rule off`)
	doc.note(lvl, indentUnit+`"warn" or 1 - turn the rule on as a warning (doesn’t affect exit code)`)
	doc.note(lvl, indentUnit+`"error" or 2 - turn the rule on as an error (exit code is 1 when triggered)`)
	doc.note(lvl, "")
	doc.note(lvl, indentUnit+"If a rule has additional options, you can specify them using array literal syntax, such as:")
	doc.note(lvl, indentUnit+indentUnit+t.example)
	doc.blank()
}

// lastRuleIndex locates the final rule entry across all groups, skipping
// trailing empty groups. It returns -1, -1 when there are no rules.
func lastRuleIndex(groups []ruledoc.Group) (int, int) {
	for gi := len(groups) - 1; gi >= 0; gi-- {
		if n := len(groups[gi].Rules); n > 0 {
			return gi, n - 1
		}
	}
	return -1, -1
}

// commented turns code into inert guidance, e.g. `// "parser": "espree",`.
func commented(t Target, code string) string {
	return t.comment + " " + code
}
