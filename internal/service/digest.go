package service

import (
	"fmt"
	"strings"

	"thematic-analysis-backend/internal/database/models"

	"github.com/google/uuid"
)

const (
	noDescription          = "No description"
	unnamedTheme           = "Unnamed Theme"
	unknownCode            = "Unknown code"
	noCodesForThemes       = "No codes available for theme generation."
	noCodesForReport       = "No codes available"
	noThemesForReport      = "No themes available"
	themeCodesTextHeader   = "List of codes from the codebook:\n\n"
	reportDefaultSummary   = "No summary provided"
	reportGeneratedMessage = "Report generated and saved successfully"
)

// CodeDigestEntry is the normalized view of a code assignment handed to the generation service
type CodeDigestEntry struct {
	Text             string
	ThemeID          *uuid.UUID
	ThemeName        string
	ThemeDescription string
}

// NewCodeDigestEntry builds the digest of one assignment. Code, Code.Theme must be preloaded.
func NewCodeDigestEntry(a models.CodeAssignment) CodeDigestEntry {
	name := unknownCode
	description := noDescription
	entry := CodeDigestEntry{}

	if a.Code != nil {
		if a.Code.Name != "" {
			name = a.Code.Name
		}
		if a.Code.Description != "" {
			description = a.Code.Description
		}
		if a.Code.ThemeID != nil {
			themeID := *a.Code.ThemeID
			entry.ThemeID = &themeID
			entry.ThemeName = unnamedTheme
			entry.ThemeDescription = noDescription
			if a.Code.Theme != nil {
				if a.Code.Theme.Name != "" {
					entry.ThemeName = a.Code.Theme.Name
				}
				if a.Code.Theme.Description != "" {
					entry.ThemeDescription = a.Code.Theme.Description
				}
			}
		}
	}

	entry.Text = fmt.Sprintf("Code: %s - %s\n\nText snapshot from the documents: %s", name, description, a.TextSnapshot)
	return entry
}

// NewCodeDigest builds the digest entries of assignments in order
func NewCodeDigest(assignments []models.CodeAssignment) []CodeDigestEntry {
	entries := make([]CodeDigestEntry, 0, len(assignments))
	for _, a := range assignments {
		entries = append(entries, NewCodeDigestEntry(a))
	}
	return entries
}

// FormatThemeCodesText renders the codes_text input of theme generation
func FormatThemeCodesText(entries []CodeDigestEntry) string {
	if len(entries) == 0 {
		return noCodesForThemes
	}

	var sb strings.Builder
	sb.WriteString(themeCodesTextHeader)
	for _, e := range entries {
		sb.WriteString("Code text: ")
		sb.WriteString(e.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// FormatCodesSummary renders one line per entry for report generation
func FormatCodesSummary(entries []CodeDigestEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Text != "" {
			lines = append(lines, "- "+e.Text)
		}
	}
	if len(lines) == 0 {
		return noCodesForReport
	}
	return strings.Join(lines, "\n")
}

// FormatThemesSummary renders one line per distinct theme, deduplicated by the formatted line
func FormatThemesSummary(entries []CodeDigestEntry) string {
	seen := make(map[string]struct{})
	var lines []string
	for _, e := range entries {
		if e.ThemeID == nil {
			continue
		}
		line := fmt.Sprintf("- %s: %s", e.ThemeName, e.ThemeDescription)
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return noThemesForReport
	}
	return strings.Join(lines, "\n")
}
