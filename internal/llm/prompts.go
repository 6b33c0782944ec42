package llm

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	apperrors "thematic-analysis-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

const defaultThemeSystem = `You are a qualitative research assistant performing thematic analysis.
Group the provided codes into a single coherent theme that captures what they have in common.`

const defaultThemeUser = `{{.codes_text}}
Return a JSON object with this structure:
{
  "theme_name": "short theme name",
  "theme_description": "one or two sentences describing the theme",
  "reasoning": "why these codes belong together",
  "related_codes": ["code text", "..."]
}

Return ONLY the JSON, no other text.`

const defaultReportSystem = `You are a thematic analysis expert tasked with generating a comprehensive report based on the provided code assignments and themes.
The report should be well organized and suitable for academic or professional presentation. It should include an introduction,
an analysis of the themes and their codes, a summary of the code assignments, a conclusion and recommendations.`

const defaultReportUser = `Codes:
{{.codes_summary}}

Themes:
{{.themes_summary}}

Number of code assignments analysed: {{.assignments_count}}

Return a JSON object with this structure:
{
  "report_text": "the full report",
  "summary": "a short summary of the report"
}

Return ONLY the JSON, no other text.`

// Prompt holds the system message and the user message template of one service
type Prompt struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`

	tmpl *template.Template
}

// PromptSet maps every generation service to its prompt
type PromptSet struct {
	prompts map[ServiceType]*Prompt
}

// DefaultPrompts returns the built-in prompts
func DefaultPrompts() *PromptSet {
	set := &PromptSet{prompts: make(map[ServiceType]*Prompt)}
	// Built-in templates are constants, a parse failure is a programming error
	if err := set.add(ServiceThemeGeneration, Prompt{System: defaultThemeSystem, User: defaultThemeUser}); err != nil {
		panic(err)
	}
	if err := set.add(ServiceReportGeneration, Prompt{System: defaultReportSystem, User: defaultReportUser}); err != nil {
		panic(err)
	}
	return set
}

// LoadPrompts reads a YAML file keyed by service type and overlays it on the built-in prompts.
// An empty path returns the defaults.
func LoadPrompts(path string) (*PromptSet, error) {
	set := DefaultPrompts()
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}
	if err := set.merge(data); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *PromptSet) merge(data []byte) error {
	var file map[ServiceType]Prompt
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse prompts file: %w", err)
	}

	for service, prompt := range file {
		current, ok := s.prompts[service]
		if !ok {
			return fmt.Errorf("unknown service %q in prompts file", service)
		}
		if prompt.System == "" {
			prompt.System = current.System
		}
		if prompt.User == "" {
			prompt.User = current.User
		}
		if err := s.add(service, prompt); err != nil {
			return err
		}
	}
	return nil
}

func (s *PromptSet) add(service ServiceType, prompt Prompt) error {
	tmpl, err := template.New(string(service)).Option("missingkey=error").Parse(prompt.User)
	if err != nil {
		return fmt.Errorf("invalid %s prompt template: %w", service, err)
	}
	prompt.tmpl = tmpl
	s.prompts[service] = &prompt
	return nil
}

// Render returns the system message and the rendered user message for a service
func (s *PromptSet) Render(service ServiceType, input map[string]interface{}) (string, string, error) {
	prompt, ok := s.prompts[service]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", apperrors.ErrPromptNotConfigured, service)
	}

	var buf bytes.Buffer
	if err := prompt.tmpl.Execute(&buf, input); err != nil {
		return "", "", fmt.Errorf("failed to render %s prompt: %w", service, err)
	}
	return prompt.System, buf.String(), nil
}
