package render

import "strings"

// Readme renders the Markdown document that accompanies a full set of
// starter files.
func Readme(opts Options) string {
	var b strings.Builder

	paragraphs := []string{
		"# .eslintrc starter files",
		".eslintrc starter files with all rules (set to 0) and envs (set to false) listed.",
		"Other options (although by no means comprehensive) are either set to false or else commented out.",
		"Updated on " + opts.date() + ".",
		"JavaScript, JSON, and YAML versions.",
		"Starter files generated by a customised version of [ESLint Starter File Generator](" + GeneratorURL + ")",
		"* [ESLint docs -- Configuring ESLint](" + ConfiguringURL + ")\n" +
			"* [ESLint docs -- List of available rules](" + RulesURL + ")",
		"## Credits",
		"Inspired by, and an update of, [ESLint Reset](https://gist.github.com/cletusw/e01a85e399ab563b1236) " +
			"by [cletusw](https://github.com/cletusw).",
	}

	for i, p := range paragraphs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(p)
	}
	b.WriteByte('\n')

	return b.String()
}
