package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dhanush8/workers-assignment/internal/model"
)

// ErrPromptCancelled 用户中断输入
var ErrPromptCancelled = errors.New("prompt cancelled")

type promptStage int

const (
	stageAsk promptStage = iota
	stageIDs
	stageDone
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// absentPrompt 询问是否有缺勤员工及其编号
type absentPrompt struct {
	stage     promptStage
	input     textinput.Model
	absent    []string
	cancelled bool
	warning   string
}

func newAbsentPrompt() absentPrompt {
	ti := textinput.New()
	ti.Placeholder = "yes / no"
	ti.CharLimit = 512
	ti.Focus()
	return absentPrompt{stage: stageAsk, input: ti}
}

func (m absentPrompt) Init() tea.Cmd {
	return textinput.Blink
}

func (m absentPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m absentPrompt) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	switch m.stage {
	case stageAsk:
		switch strings.ToLower(value) {
		case "yes", "y":
			m.stage = stageIDs
			m.warning = ""
			m.input.SetValue("")
			m.input.Placeholder = "E01, E07"
			return m, nil
		case "no", "n", "":
			m.stage = stageDone
			return m, tea.Quit
		default:
			m.warning = fmt.Sprintf("请输入 yes 或 no（收到 %q）", value)
			m.input.SetValue("")
			return m, nil
		}
	case stageIDs:
		m.absent = model.ParseIDList(value)
		m.stage = stageDone
		return m, tea.Quit
	}
	return m, tea.Quit
}

func (m absentPrompt) View() string {
	if m.stage == stageDone {
		return ""
	}

	question := "Are there any absent employees? (yes/no)"
	if m.stage == stageIDs {
		question = "Enter the absent employee IDs (comma-separated)"
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render(question))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.warning != "" {
		b.WriteString(errorStyle.Render(m.warning))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("enter 确认 · esc 取消"))
	b.WriteString("\n")
	return b.String()
}

// PromptAbsent 交互式读取缺勤员工编号
func PromptAbsent(in io.Reader, out io.Writer) ([]string, error) {
	p := tea.NewProgram(newAbsentPrompt(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	m, ok := final.(absentPrompt)
	if !ok || m.cancelled {
		return nil, ErrPromptCancelled
	}
	return m.absent, nil
}
