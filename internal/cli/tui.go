package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/scene"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// Scene Discovery
// =============================================================================

// SceneEntry is a scene file found by [findScenes]. Err is set when the
// file does not decode; such entries are listed but cannot be picked.
type SceneEntry struct {
	Path     string
	Name     string
	Panels   int
	Grid     string
	Modified time.Time
	Err      error
}

// findScenes lists the *.toml files in dir, newest first.
func findScenes(dir string) ([]SceneEntry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	entries := make([]SceneEntry, 0, len(paths))
	for _, p := range paths {
		e := SceneEntry{Path: p, Name: strings.TrimSuffix(filepath.Base(p), ".toml")}
		if info, err := os.Stat(p); err == nil {
			e.Modified = info.ModTime()
		}
		sc, err := scene.Load(p)
		if err != nil {
			e.Err = err
		} else {
			if sc.Name != "" {
				e.Name = sc.Name
			}
			e.Panels = len(sc.Panels)
			e.Grid = fmt.Sprintf("%dx%d", sc.Rows, sc.Cols)
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Modified.After(entries[j].Modified)
	})
	return entries, nil
}

// pickScene lets the user choose a scene in dir. It returns "" if the user
// quits without choosing.
func pickScene(dir string) (string, error) {
	entries, err := findScenes(dir)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", errors.New(errors.ErrCodeNotFound, "no scene files in %s", dir)
	}
	final, err := tea.NewProgram(NewSceneListModel(entries)).Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(SceneListModel); ok && m.Selected != nil {
		return m.Selected.Path, nil
	}
	return "", nil
}

// =============================================================================
// SceneListModel - Interactive scene selection
// =============================================================================

// SceneListModel is the bubbletea model for interactive scene selection.
type SceneListModel struct {
	Scenes   []SceneEntry
	Cursor   int
	Selected *SceneEntry
	Height   int
	Offset   int
}

// NewSceneListModel creates a new scene list model.
func NewSceneListModel(scenes []SceneEntry) SceneListModel {
	return SceneListModel{Scenes: scenes, Height: 15}
}

func (m SceneListModel) Init() tea.Cmd {
	return nil
}

func (m SceneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Scenes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Scenes) == 0 {
				return m, nil
			}
			s := m.Scenes[m.Cursor]
			if s.Err != nil {
				return m, nil
			}
			m.Selected = &s
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m SceneListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Scene"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Scenes))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := m.Scenes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		panels, grid := "—", "—"
		if s.Err == nil {
			panels, grid = fmt.Sprint(s.Panels), s.Grid
		}
		rows = append(rows, []string{cursor, s.Name, filepath.Base(s.Path), panels, grid, formatRelativeTime(s.Modified)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Scene", "File", "Panels", "Grid", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Scenes) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if m.Scenes[idx].Err != nil {
				base = base.Foreground(colorDim)
			} else if col == 1 {
				base = base.Foreground(colorGreen)
			}
			if idx == m.Cursor {
				base = base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Scenes))))
	if len(m.Scenes) > 0 && m.Scenes[m.Cursor].Err != nil {
		s := m.Scenes[m.Cursor]
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render("  " + errors.UserMessage(s.Err)))
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
