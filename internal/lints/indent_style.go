package lints

import (
	"strings"

	"github.com/jlint-dev/jlint/config"
	tt "github.com/jlint-dev/jlint/internal/types"
)

const (
	ruleIndentStyle = "indent-style"
	msgUseTabs      = "Use tabs for indentation"
	msgUseSpaces    = "Use spaces for indentation"
)

// DetectIndentStyle flags lines whose leading whitespace disagrees with the
// configured indentation style. Blank lines are skipped, and the leading run
// is classified after trimming trailing whitespace so an all-whitespace line
// never counts as indented content.
//
// Under the tabs policy a fix is attached only when the leading run is pure
// spaces and an exact multiple of indentWidth; mixed runs and odd widths are
// ambiguous and reported without a fix. Under the spaces policy a fix is
// always attached, expanding each leading tab to indentWidth spaces in place.
func DetectIndentStyle(filename string, source []byte, style config.IndentStyle, indentWidth int, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	bytePos := 0
	for idx, line := range strings.Split(string(source), "\n") {
		startByte := bytePos
		bytePos += len(line) + 1 // account for the split '\n'

		trimmed := strings.TrimRight(line, " \t\r\n")
		if trimmed == "" {
			continue
		}

		leadingLen := 0
		for leadingLen < len(trimmed) && (trimmed[leadingLen] == ' ' || trimmed[leadingLen] == '\t') {
			leadingLen++
		}
		if leadingLen == 0 {
			continue
		}
		leading := trimmed[:leadingLen]
		hasSpace := strings.ContainsRune(leading, ' ')
		hasTab := strings.ContainsRune(leading, '\t')

		switch style {
		case config.IndentTabs:
			if !hasSpace {
				continue
			}
			issue := tt.Issue{
				Rule:     ruleIndentStyle,
				Filename: filename,
				Message:  msgUseTabs,
				Line:     idx + 1,
				Column:   1,
				Severity: severity,
			}
			// Convert only unambiguous runs: pure spaces aligned to the
			// indent width. Mixed tabs and spaces, or a stray space count,
			// cannot be corrected without guessing intent.
			spaceCount := len(leading) - len(strings.TrimLeft(leading, " "))
			if !hasTab && spaceCount%indentWidth == 0 {
				issue.Fix = &tt.Edit{
					StartByte:   startByte,
					EndByte:     startByte + leadingLen,
					Replacement: strings.Repeat("\t", spaceCount/indentWidth),
				}
			}
			issues = append(issues, issue)

		case config.IndentSpaces:
			if !hasTab {
				continue
			}
			var replacement strings.Builder
			for _, c := range leading {
				if c == '\t' {
					replacement.WriteString(strings.Repeat(" ", indentWidth))
				} else {
					replacement.WriteRune(c)
				}
			}
			issues = append(issues, tt.Issue{
				Rule:     ruleIndentStyle,
				Filename: filename,
				Message:  msgUseSpaces,
				Line:     idx + 1,
				Column:   1,
				Severity: severity,
				Fix: &tt.Edit{
					StartByte:   startByte,
					EndByte:     startByte + leadingLen,
					Replacement: replacement.String(),
				},
			})
		}
	}

	return issues, nil
}
