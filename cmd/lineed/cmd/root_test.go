package cmd

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lineed"
	"github.com/iw2rmb/lineed/editor"
)

func TestSeparatorFor(t *testing.T) {
	cases := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "", want: "\n"},
		{name: "lf", want: "\n"},
		{name: "CRLF", want: "\r\n"},
		{name: "cr", wantErr: true},
	}
	for _, tc := range cases {
		got, err := separatorFor(tc.name)
		if (err != nil) != tc.wantErr {
			t.Fatalf("separatorFor(%q) err=%v, wantErr %v", tc.name, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("separatorFor(%q)=%q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestEditorConfig(t *testing.T) {
	cfg, err := editorConfig(options{text: "a\nb", separator: "crlf", lineNumbers: true}, nil)
	if err != nil {
		t.Fatalf("editorConfig: %v", err)
	}
	if cfg.LineSeparator != "\r\n" || !cfg.ShowLineNums || cfg.Clipboard != nil {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	cfg, err = editorConfig(options{systemClipboard: true}, nil)
	if err != nil {
		t.Fatalf("editorConfig: %v", err)
	}
	if _, ok := cfg.Clipboard.(editor.SystemClipboard); !ok {
		t.Fatalf("clipboard: got %T, want editor.SystemClipboard", cfg.Clipboard)
	}

	cfg, err = editorConfig(options{noColor: true}, nil)
	if err != nil {
		t.Fatalf("editorConfig: %v", err)
	}
	if got := cfg.Style.Selection.GetUnderline(); !got {
		t.Fatalf("no-color selection style: underline=%v, want true", got)
	}

	if _, err := editorConfig(options{separator: "nope"}, nil); err == nil {
		t.Fatalf("expected error for unknown separator")
	}
}

func TestModel_QuitAndStatus(t *testing.T) {
	m := newModel(editor.Config{Text: "ab\ncd"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	if got, want := m.status(), "Ln 2, Col 1  (2 lines)  ctrl+q quit"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("ctrl+q: expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+q: expected tea.QuitMsg")
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != lineed.Describe() {
		t.Fatalf("version output: got %q, want %q", got, lineed.Describe())
	}
}
