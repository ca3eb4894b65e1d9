package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/language-rpg/pkg/game"
	"github.com/muesli/reflow/wordwrap"
)

const (
	PlaceHolderText = "コマンドを入力 (help でコマンド一覧)"
	NamePlaceholder = "名前を入力してEnter"
)

type entryRole int

const (
	roleGame entryRole = iota
	rolePlayer
	roleError
	roleSystem
)

type entry struct {
	role    entryRole
	content string
}

// ConsoleUI is the BubbleTea model that runs the game.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	interp       *game.Interpreter
	log          *slog.Logger
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int

	transcript []entry
	lastReply  string

	// Name entry state
	showNameModal bool

	// Quit confirmation state
	showQuitModal bool
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

// NewConsoleUI builds the model. A non-empty playerName starts the game
// immediately; otherwise the player is asked for a name first.
func NewConsoleUI(interp *game.Interpreter, playerName string, log *slog.Logger) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	m := ConsoleUI{
		interp:        interp,
		log:           log,
		textarea:      ta,
		chatViewport:  chatVp,
		metaViewport:  metaVp,
		showNameModal: true,
	}
	if playerName = strings.TrimSpace(playerName); playerName != "" {
		m.start(playerName)
	} else {
		m.textarea.Placeholder = NamePlaceholder
	}
	return m
}

// start names the player and records the welcome text.
func (m *ConsoleUI) start(name string) {
	welcome, err := m.interp.Session().Start(name)
	if err != nil {
		m.log.Error("failed to start game", "error", err)
		m.addEntry(roleError, err.Error())
		return
	}
	m.showNameModal = false
	m.textarea.Placeholder = PlaceHolderText
	m.addEntry(roleGame, welcome.String())
}

func (m *ConsoleUI) addEntry(role entryRole, content string) {
	m.transcript = append(m.transcript, entry{role: role, content: content})
	if role == roleGame || role == roleError {
		m.lastReply = content
	}
}

func writeMetadata(status game.PlayerStatus, interp *game.Interpreter) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("STATUS") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(interp.Session().ID.String()[:8] + "...\n\n")

	fmt.Fprintf(&content, "📍 %s\n", status.Location)
	fmt.Fprintf(&content, "⭐ Lv.%d (%d/%d)\n", status.Level, status.Exp, status.NextLevelExp)
	fmt.Fprintf(&content, "❤️ %d/%d\n", status.HP, status.MaxHP)
	fmt.Fprintf(&content, "💰 %d\n", status.Gold)
	fmt.Fprintf(&content, "🇬🇧 %d  🇨🇳 %d\n\n", status.EnglishExp, status.ChineseExp)

	if enc := interp.Encounter(); enc != nil {
		content.WriteString("Battle:\n")
		fmt.Fprintf(&content, "%s %d/%d\n", enc.Enemy, enc.HP, enc.MaxHP)
		if interp.AwaitingAnswer() {
			content.WriteString(systemStyle.Render("回答待ち") + "\n")
		}
		content.WriteString("\n")
	}

	if len(status.Inventory) > 0 {
		content.WriteString("Items:\n")
		for _, item := range status.Inventory {
			content.WriteString("• " + item + "\n")
		}
	} else {
		content.WriteString("Items:\nNone\n")
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /help: Help\n")
	content.WriteString("• /copy: Copy reply\n")
	content.WriteString("• /clear: Clear log\n")

	return content.String()
}

// writeChatContent rebuilds the transcript for the current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // Account for left(3) + right(3) padding

	var content strings.Builder
	content.WriteString(titleStyle.Render(game.Title) + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(chatWidth-6, 1))) + "\n\n")

	for _, e := range m.transcript {
		content.WriteString(formatEntry(e, chatWidth) + "\n\n")
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

func formatEntry(e entry, width int) string {
	wrapWidth := max(width, 10)
	switch e.role {
	case rolePlayer:
		return userStyle.Render("> ") + wordwrap.String(e.content, wrapWidth-2)
	case roleError:
		return errorStyle.Render(wordwrap.String(e.content, wrapWidth))
	case roleSystem:
		return systemStyle.Render(wordwrap.String(e.content, wrapWidth))
	default:
		return gameStyle.Render(wordwrap.String(e.content, wrapWidth))
	}
}

func (m *ConsoleUI) refresh() {
	m.metaViewport.SetContent(writeMetadata(m.interp.Session().Status(), m.interp))
	m.writeChatContent()
}

func (m *ConsoleUI) resize() {
	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	m.chatViewport.Width = chatWidth - 2
	m.chatViewport.Height = m.height - 5
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(chatWidth - 4)
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()

			if m.showNameModal {
				m.start(input)
				m.refresh()
				return m, nil
			}
			if input == "" {
				return m, nil
			}
			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}
			m.submit(input)
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// submit sends one line to the interpreter and records the reply.
func (m *ConsoleUI) submit(input string) {
	m.addEntry(rolePlayer, input)

	res := m.interp.Handle(input)
	switch {
	case res.Err != nil:
		m.log.Debug("command refused", "input", input, "error", res.Err)
		m.addEntry(roleError, res.Message)
	case !res.Handled:
		m.log.Debug("command not understood", "input", input)
		m.addEntry(roleSystem, res.Message)
	default:
		m.addEntry(roleGame, res.Message)
	}
	m.refresh()
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	cmd := strings.ToLower(strings.TrimSpace(input))

	switch cmd {
	case "/help":
		m.addEntry(roleSystem, game.HelpText+"\n\n/copy: 直前の結果をコピー\n/clear: ログを消去\nCtrl+C: 終了")

	case "/copy":
		if m.lastReply == "" {
			m.addEntry(roleSystem, "コピーする内容がない。")
			break
		}
		if err := clipboard.WriteAll(m.lastReply); err != nil {
			m.log.Warn("clipboard write failed", "error", err)
			m.addEntry(roleError, "コピーに失敗した: "+err.Error())
			break
		}
		m.addEntry(roleSystem, "📋 コピーした。")

	case "/clear":
		m.transcript = nil

	default:
		m.addEntry(roleSystem, fmt.Sprintf("%s は使えない。/help を見てね。", cmd))
	}

	m.refresh()
	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("冒険をやめる？"))
	content.WriteString("\n\n")
	content.WriteString("進行状況は保存されません。")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Y で終了、N で続ける、Ctrl+C で強制終了"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderNameModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(game.Title))
	content.WriteString("\n\n")
	content.WriteString("旅人よ、名前を教えてください。")
	content.WriteString("\n\n")
	content.WriteString(m.textarea.View())
	content.WriteString("\n\n")
	for _, e := range m.transcript {
		if e.role == roleError {
			content.WriteString(errorStyle.Render(e.content) + "\n\n")
		}
	}
	content.WriteString(promptStyle.Render("Enter で開始、Ctrl+C で終了"))

	modal := modalStyle.Width(60).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if m.showNameModal {
		return m.renderNameModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 1))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
