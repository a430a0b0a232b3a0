package analyzer

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.Bold, color.FgCyan)
	moodColor    = color.New(color.Bold)
	warningColor = color.New(color.FgYellow)
)

// Render writes the report in reading order, followed by the how-it-works block.
func Render(w io.Writer, report *Report) error {
	var b strings.Builder

	for _, warning := range report.Warnings {
		warningColor.Fprintf(&b, "⚠️  %s\n", warning.Message)
	}
	if len(report.Warnings) > 0 {
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Detected language: %s\n", report.Language.Code)
	if report.Translation.Translated {
		b.WriteString("Translated text (for analysis):\n")
		b.WriteString(report.Translation.Text)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	m := report.Mood
	moodColor.Fprintf(&b, "Overall Mood: %s %s\n", m.Label, m.Indicator)
	fmt.Fprintf(&b, "What this means: %s\n\n", m.Description)

	headingColor.Fprintln(&b, "Breaking it down further:")
	b.WriteString(m.BalanceComment + "\n")
	b.WriteString(m.StrengthComment + "\n\n")

	headingColor.Fprintln(&b, "Key takeaway:")
	b.WriteString(m.Takeaway + "\n\n")

	writeHowItWorks(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderEmptyInput writes the empty-input warning and the how-it-works block.
func RenderEmptyInput(w io.Writer) error {
	var b strings.Builder
	warningColor.Fprintf(&b, "⚠️  Please enter some text to analyze.\n\n")
	writeHowItWorks(&b)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeHowItWorks(b *strings.Builder) {
	headingColor.Fprintln(b, "How it works")
	b.WriteString(HowItWorks + "\n")
}
