package steps

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/rulekit/internal/tui"
	"github.com/initializ/rulekit/internal/tui/components"
)

type providerPhase int

const (
	pickProvider providerPhase = iota
	askBaseURL
	askModel
)

// ProviderStep collects the eval endpoint in three screens: provider
// kind, base URL, then the model to score.
type ProviderStep struct {
	pal      *tui.Palette
	phase    providerPhase
	list     components.ChoiceList
	input    components.Input
	provider string
	baseURL  string
	model    string
}

func NewProviderStep(pal *tui.Palette) *ProviderStep {
	list := components.NewChoiceList(pal, []components.Choice{
		{Label: "OpenAI-compatible", Value: "openai", Detail: "vLLM, llama.cpp server, or any /chat/completions endpoint"},
		{Label: "Ollama (local)", Value: "ollama", Detail: "Local Ollama server, no API key needed"},
	})
	return &ProviderStep{pal: pal, list: list}
}

func (s *ProviderStep) Title() string { return "Eval Provider" }

func (s *ProviderStep) Start() tea.Cmd {
	s.phase = pickProvider
	s.list.Reset()
	return nil
}

func (s *ProviderStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	switch s.phase {
	case pickProvider:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "backspace" {
			return s, tui.PrevStep()
		}
		list, cmd := s.list.Update(msg)
		s.list = list
		if picked, ok := s.list.Picked(); s.list.Done() && ok {
			s.provider = picked.Value
			s.phase = askBaseURL
			s.input = components.NewInput(s.pal, "Base URL (empty for the provider default)", defaultBaseURL(picked.Value))
			return s, s.input.Start()
		}
		return s, cmd

	case askBaseURL:
		in, cmd := s.input.Update(msg)
		s.input = in
		if s.input.Done() {
			s.baseURL = s.input.Value()
			s.phase = askModel
			s.input = components.NewInput(s.pal, "Model to evaluate", "rules-lora")
			s.input.Validate = func(v string) error {
				if v == "" {
					return errors.New("model is required")
				}
				return nil
			}
			return s, s.input.Start()
		}
		return s, cmd

	case askModel:
		in, cmd := s.input.Update(msg)
		s.input = in
		if s.input.Done() {
			s.model = s.input.Value()
			return s, tui.NextStep()
		}
		return s, cmd
	}
	return s, nil
}

func defaultBaseURL(provider string) string {
	if provider == "ollama" {
		return "http://localhost:11434/v1"
	}
	return "http://localhost:8000/v1"
}

func (s *ProviderStep) View(width int) string {
	if s.phase == pickProvider {
		return s.list.View(width)
	}
	return s.input.View(width)
}

func (s *ProviderStep) Summary() string {
	if s.model == "" {
		return s.provider
	}
	return s.provider + ": " + s.model
}

func (s *ProviderStep) Apply(a *tui.Answers) {
	a.Provider = s.provider
	a.BaseURL = s.baseURL
	a.Model = s.model
}
