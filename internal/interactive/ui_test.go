package interactive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rail44/drills/internal/log"
)

const triangleDoc = `shapes:
  - name: triangle
    polygon: [[12, 13], [17, 11], [16, 16]]
`

func writeShapes(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write shape file: %v", err)
	}
}

// step sends msg and runs the returned command once, feeding its result back
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(Model)
		}
	}
	return m
}

func TestModelReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	writeShapes(t, path, triangleDoc)

	m := NewModel(path, 2, log.Discard())
	if !strings.Contains(m.View(), "Watching for changes") {
		t.Errorf("Expected initial watching status, got:\n%s", m.View())
	}

	m = step(t, m, FileChanged())
	if m.status != statusReady {
		t.Fatalf("Expected ready status, got %v (err %v)", m.status, m.err)
	}
	if m.reloads != 1 {
		t.Errorf("Expected 1 reload, got %d", m.reloads)
	}
	if len(m.results) != 1 || m.results[0].Name != "triangle" {
		t.Errorf("Expected triangle result, got %+v", m.results)
	}
	if !strings.Contains(m.View(), "15.48") {
		t.Errorf("Expected perimeter in view, got:\n%s", m.View())
	}

	// Same bytes: the digest matches and nothing is re-rendered
	m = step(t, m, FileChanged())
	if m.reloads != 1 {
		t.Errorf("Expected unchanged content to be skipped, got %d reloads", m.reloads)
	}

	writeShapes(t, path, triangleDoc+"  - name: wheel\n    circle: {center: [10, 20], radius: 5}\n")
	m = step(t, m, FileChanged())
	if m.reloads != 2 {
		t.Errorf("Expected 2 reloads, got %d", m.reloads)
	}
	if len(m.results) != 2 {
		t.Errorf("Expected 2 results, got %d", len(m.results))
	}
}

func TestModelError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	writeShapes(t, path, "shapes:\n  - name: broken\n")

	m := step(t, NewModel(path, 2, log.Discard()), FileChanged())
	if m.status != statusError {
		t.Fatalf("Expected error status, got %v", m.status)
	}
	if !strings.Contains(m.View(), "parse error") {
		t.Errorf("Expected parse error in view, got:\n%s", m.View())
	}

	writeShapes(t, path, triangleDoc)
	m = step(t, m, FileChanged())
	if m.status != statusReady {
		t.Errorf("Expected recovery to ready status, got %v (err %v)", m.status, m.err)
	}
}

func TestModelMissingFile(t *testing.T) {
	m := step(t, NewModel(filepath.Join(t.TempDir(), "gone.yaml"), 2, log.Discard()), FileChanged())
	if m.status != statusError || !strings.Contains(m.err.Error(), "read error") {
		t.Errorf("Expected read error, got status %v err %v", m.status, m.err)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel("shapes.yaml", 2, log.Discard())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("Expected no command for other keys")
	}
}
