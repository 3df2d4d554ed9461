package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textsum/internal/language"
)

const (
	minSentences = 1
	maxSentences = 100

	emptyInputWarning = "Please enter some text before summarizing!"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	SummarizeText(text string, n int, lang language.Code) (string, error)
	Export(path, summary string) error
}

// Settings seeds the interactive controls.
type Settings struct {
	Text       string
	Sentences  int
	Language   language.Code
	OutputPath string
}

type keyMap struct {
	Summarize key.Binding
	More      key.Binding
	Fewer     key.Binding
	Language  key.Binding
	Clear     key.Binding
	Save      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Summarize, k.More, k.Fewer, k.Language, k.Clear, k.Save, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Summarize: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "summarize")),
	More:      key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "more sentences")),
	Fewer:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "fewer sentences")),
	Language:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
	Clear:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
	Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service    SummaryPort
	input      textarea.Model
	viewport   viewport.Model
	help       help.Model
	languages  []language.Code
	langIdx    int
	sentences  int
	outputPath string
	summary    string
	status     string
	isError    bool
	ready      bool
}

// New creates a new TUI model instance.
func New(service SummaryPort, s Settings) Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(s.Text)
	ta.Focus()

	langs := language.Supported()
	idx := 0
	for i, l := range langs {
		if l == s.Language {
			idx = i
		}
	}
	n := s.Sentences
	if n < minSentences {
		n = 5
	}
	out := s.OutputPath
	if out == "" {
		out = "summary.txt"
	}
	return Model{
		service:    service,
		input:      ta,
		viewport:   viewport.New(0, 0),
		help:       help.New(),
		languages:  langs,
		langIdx:    idx,
		sentences:  n,
		outputPath: out,
		status:     "Choose a number of sentences and enter the text you want summarized.",
	}
}

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, bh := boxStyle.GetFrameSize()
		w := max(20, msg.Width-boxStyle.GetHorizontalFrameSize())
		avail := msg.Height - 4 - 2*bh // header, controls, status, help
		if avail < 6 {
			avail = 6
		}
		m.input.SetWidth(w)
		m.input.SetHeight(avail / 2)
		m.viewport.Width = w
		m.viewport.Height = avail - avail/2
		m.viewport.SetContent(m.renderSummary())
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Summarize):
			m.summarize()
			return m, nil
		case key.Matches(msg, keys.More):
			if m.sentences < maxSentences {
				m.sentences++
			}
			return m, nil
		case key.Matches(msg, keys.Fewer):
			if m.sentences > minSentences {
				m.sentences--
			}
			return m, nil
		case key.Matches(msg, keys.Language):
			m.langIdx = (m.langIdx + 1) % len(m.languages)
			return m, nil
		case key.Matches(msg, keys.Clear):
			m.input.Reset()
			m.summary = ""
			m.setStatus("Text cleared.", false)
			m.viewport.SetContent(m.renderSummary())
			return m, nil
		case key.Matches(msg, keys.Save):
			m.save()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) summarize() {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.setStatus(emptyInputWarning, true)
		return
	}
	summary, err := m.service.SummarizeText(text, m.sentences, m.language())
	switch {
	case errors.Is(err, language.ErrUnsupported):
		m.setStatus(fmt.Sprintf("Summaries in %s are not available yet.", m.language()), true)
	case err != nil:
		m.setStatus("Error: "+err.Error(), true)
	case summary == "":
		m.summary = ""
		m.setStatus("No keywords found, nothing to summarize.", false)
	default:
		m.summary = summary
		m.setStatus("This is the summary of your text.", false)
	}
	m.viewport.SetContent(m.renderSummary())
	m.viewport.GotoTop()
}

func (m *Model) save() {
	if m.summary == "" {
		m.setStatus("Nothing to save yet.", true)
		return
	}
	if err := m.service.Export(m.outputPath, m.summary); err != nil {
		m.setStatus("Error: "+err.Error(), true)
		return
	}
	m.setStatus("Saved to "+m.outputPath, false)
}

func (m *Model) setStatus(s string, isError bool) {
	m.status = s
	m.isError = isError
}

func (m Model) language() language.Code { return m.languages[m.langIdx] }

// View renders the TUI layout and current summary.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Summarize texts with NLP")
	controls := fmt.Sprintf("Language: %s   Sentences: %d", labelStyle.Render(string(m.language())), m.sentences)
	input := boxStyle.Render(m.input.View())
	summary := boxStyle.Render(m.viewport.View())
	st := statusStyle
	if m.isError {
		st = warnStyle
	}
	return header + "\n" + controls + "\n" + input + "\n" + summary + "\n" + st.Render(m.status) + "\n" + m.help.View(keys)
}

func (m Model) renderSummary() string {
	if m.summary == "" {
		return "No summary yet."
	}
	return m.summary
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
