package rendering

import "strings"

// latexEscaper covers the characters LinkedIn text tends to carry into a LaTeX
// resume: company names with &, skills like C#, metrics with % and $, and
// headlines split with |.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"$", `\$`,
	"&", `\&`,
	"%", `\%`,
	"#", `\#`,
	"_", `\_`,
	"^", `\textasciicircum{}`,
	"~", `\textasciitilde{}`,
	"<", `\textless{}`,
	">", `\textgreater{}`,
	"|", `\textbar{}`,
)

// EscapeLaTeX makes profile text safe to place in a LaTeX template.
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
)

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
