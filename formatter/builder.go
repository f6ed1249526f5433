// Package formatter renders lint issues for terminal and machine consumption.
package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/jlint-dev/jlint/internal"
	tt "github.com/jlint-dev/jlint/internal/types"
)

const tabWidth = 8

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	fixStyle     = color.New(color.FgGreen, color.Bold)
)

const issueTemplate = `{{header .Severity .Rule .Padding .Filename .Line .Column}}
{{snippet .LineText .Line .MaxLineNumWidth .Padding -}}
{{caretAndMessage .Message .Padding .LineText .Column}}
{{- if .Fixable}}
{{fixable .Padding}}
{{- end}}
`

// issueData feeds one issue into the template.
type issueData struct {
	Severity        string
	Rule            string
	Filename        string
	Line            int
	Column          int
	Message         string
	LineText        string
	MaxLineNumWidth int
	Padding         string
	Fixable         bool
}

// Generate renders issues as human-readable, colored diagnostics with a
// source snippet and a caret pointing at the anchor column.
func Generate(issues []tt.Issue, source *internal.SourceCode) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(buildIssue(issue, source))
		builder.WriteString("\n")
	}
	return builder.String()
}

// Plain renders issues one per line in the grep-friendly form
// path:line:column: rule: message.
func Plain(issues []tt.Issue) string {
	var builder strings.Builder
	for _, issue := range issues {
		fmt.Fprintf(&builder, "%s:%d:%d: %s: %s\n",
			issue.Filename, issue.Line, issue.Column, issue.Rule, issue.Message)
	}
	return builder.String()
}

var templateFuncs = template.FuncMap{
	"header":          header,
	"snippet":         snippet,
	"caretAndMessage": caretAndMessage,
	"fixable":         fixable,
}

var issueTmpl = template.Must(template.New("issue").Funcs(templateFuncs).Parse(issueTemplate))

func buildIssue(issue tt.Issue, source *internal.SourceCode) string {
	maxLineNumWidth := len(fmt.Sprintf("%d", issue.Line))
	data := issueData{
		Severity:        issue.Severity.String(),
		Rule:            issue.Rule,
		Filename:        issue.Filename,
		Line:            issue.Line,
		Column:          issue.Column,
		Message:         issue.Message,
		LineText:        source.Line(issue.Line),
		MaxLineNumWidth: maxLineNumWidth,
		Padding:         strings.Repeat(" ", maxLineNumWidth+1),
		Fixable:         issue.HasFix(),
	}

	var buf bytes.Buffer
	if err := issueTmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting issue: %v\n", err)
	}
	return buf.String()
}

func header(severity, rule, padding, filename string, line, column int) string {
	var out string
	switch severity {
	case "WARNING":
		out = warningStyle.Sprint("warning: ")
	default:
		out = errorStyle.Sprint("error: ")
	}
	out += ruleStyle.Sprintf("%s\n", rule)
	out += lineStyle.Sprintf("%s--> ", padding[:len(padding)-1])
	out += fileStyle.Sprintf("%s:%d:%d", filename, line, column)
	return out
}

func snippet(lineText string, line, maxLineNumWidth int, padding string) string {
	out := lineStyle.Sprintf("%s|\n", padding)
	out += lineStyle.Sprintf("%*d | ", maxLineNumWidth, line)
	out += fmt.Sprintf("%s\n", lineText)
	return out
}

func caretAndMessage(message, padding, lineText string, column int) string {
	out := lineStyle.Sprintf("%s| ", padding)
	caretPos := visualColumn(lineText, column)
	out += strings.Repeat(" ", caretPos)
	out += messageStyle.Sprint("^\n")
	out += lineStyle.Sprintf("%s= ", padding)
	out += messageStyle.Sprint(message)
	return out
}

func fixable(padding string) string {
	return fixStyle.Sprintf("%s(fixable with jlint fix)", padding)
}

// visualColumn converts a 1-based text column into a visual offset,
// expanding tabs to the next tab stop.
func visualColumn(line string, column int) int {
	visual := 0
	for i, ch := range line {
		if i+1 >= column {
			break
		}
		if ch == '\t' {
			visual += tabWidth - (visual % tabWidth)
		} else {
			visual++
		}
	}
	return visual
}
