package plugin

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeEditor struct {
	filename string
	rows     []string
	status   []string
}

func (f *fakeEditor) Filename() string { return f.filename }
func (f *fakeEditor) LineCount() int   { return len(f.rows) }

func (f *fakeEditor) Line(i int) (string, bool) {
	if i < 0 || i >= len(f.rows) {
		return "", false
	}
	return f.rows[i], true
}

func (f *fakeEditor) SetStatus(msg string) {
	f.status = append(f.status, msg)
}

func writeScript(t *testing.T, dir, name, code string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestLoadAndFire(t *testing.T) {
	ed := &fakeEditor{filename: "notes.txt"}
	h := NewHost(ed)
	defer h.Close()

	path := writeScript(t, t.TempDir(), "greet.lua", `
quill.on("open", function(name)
  quill.status("opened " .. name)
end)
`)
	if err := h.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	h.Fire("open", "notes.txt")

	if len(ed.status) != 1 || ed.status[0] != "opened notes.txt" {
		t.Errorf("status = %v, want [opened notes.txt]", ed.status)
	}
}

func TestDocumentAccess(t *testing.T) {
	ed := &fakeEditor{filename: "a.go", rows: []string{"hello", "world"}}
	h := NewHost(ed)
	defer h.Close()

	path := writeScript(t, t.TempDir(), "probe.lua", `
quill.on("probe", function()
  quill.status(quill.filename())
  quill.status(quill.line(1) .. "/" .. quill.lines())
  if quill.line(99) == nil then
    quill.status("oob nil")
  end
end)
`)
	if err := h.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	h.Fire("probe", "")

	want := []string{"a.go", "hello/2", "oob nil"}
	if len(ed.status) != len(want) {
		t.Fatalf("status = %v, want %v", ed.status, want)
	}
	for i := range want {
		if ed.status[i] != want[i] {
			t.Errorf("status[%d] = %q, want %q", i, ed.status[i], want[i])
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "a.lua", `quill.on("ping", function() quill.status("a") end)`)
	writeScript(t, dir, "b.lua", `quill.on("ping", function() quill.status("b") end)`)
	writeScript(t, dir, "notes.txt", `not a script`)

	ed := &fakeEditor{}
	h := NewHost(ed)
	defer h.Close()

	if err := h.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := len(h.Scripts()); got != 2 {
		t.Fatalf("loaded %d scripts, want 2", got)
	}

	h.Fire("ping", "")

	if len(ed.status) != 2 || ed.status[0] != "a" || ed.status[1] != "b" {
		t.Errorf("status = %v, want [a b]", ed.status)
	}
}

func TestLoadDirMissing(t *testing.T) {
	h := NewHost(&fakeEditor{})
	defer h.Close()

	if err := h.LoadDir(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Errorf("LoadDir on missing dir: %v", err)
	}
}

func TestLoadDirKeepsGoodScripts(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "bad.lua", `quill.on(`)
	writeScript(t, dir, "good.lua", `quill.on("ping", function() quill.status("ok") end)`)

	ed := &fakeEditor{}
	h := NewHost(ed)
	defer h.Close()

	if err := h.LoadDir(dir); err == nil {
		t.Error("LoadDir succeeded with a broken script")
	}
	if got := len(h.Scripts()); got != 1 {
		t.Fatalf("loaded %d scripts, want 1", got)
	}

	h.Fire("ping", "")
	if len(ed.status) != 1 || ed.status[0] != "ok" {
		t.Errorf("status = %v, want [ok]", ed.status)
	}
}

func TestHandlerError(t *testing.T) {
	var failed []string
	h := NewHost(&fakeEditor{}, WithErrorFunc(func(script string, err error) {
		failed = append(failed, script+": "+err.Error())
	}))
	defer h.Close()

	path := writeScript(t, t.TempDir(), "boom.lua", `
quill.on("go", function() error("boom") end)
`)
	if err := h.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	h.Fire("go", "")

	if len(failed) != 1 {
		t.Fatalf("error callback ran %d times, want 1", len(failed))
	}
	if !strings.Contains(failed[0], "boom.lua") || !strings.Contains(failed[0], "boom") {
		t.Errorf("error callback got %q", failed[0])
	}
}

func TestSandboxBlocksIO(t *testing.T) {
	h := NewHost(&fakeEditor{})
	defer h.Close()

	path := writeScript(t, t.TempDir(), "escape.lua", `io.open("/etc/passwd")`)
	if err := h.Load(path); err == nil {
		t.Error("Load succeeded for a script using io")
	}
	if got := len(h.Scripts()); got != 0 {
		t.Errorf("loaded %d scripts, want 0", got)
	}
}

func TestTimeout(t *testing.T) {
	var failed []error
	h := NewHost(&fakeEditor{},
		WithTimeout(50*time.Millisecond),
		WithErrorFunc(func(_ string, err error) { failed = append(failed, err) }),
	)
	defer h.Close()

	path := writeScript(t, t.TempDir(), "spin.lua", `
quill.on("go", function()
  while true do end
end)
`)
	if err := h.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	h.Fire("go", "")

	if len(failed) != 1 {
		t.Fatalf("error callback ran %d times, want 1", len(failed))
	}
}

func TestLog(t *testing.T) {
	var logged []string
	h := NewHost(&fakeEditor{}, WithLogFunc(func(script, msg string) {
		logged = append(logged, script+": "+msg)
	}))
	defer h.Close()

	path := writeScript(t, t.TempDir(), "chatty.lua", `quill.log("starting up")`)
	if err := h.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(logged) != 1 || logged[0] != "chatty.lua: starting up" {
		t.Errorf("logged = %v", logged)
	}
}

func TestClose(t *testing.T) {
	h := NewHost(&fakeEditor{})
	h.Close()
	h.Close()

	err := h.Load(filepath.Join(t.TempDir(), "late.lua"))
	if !errors.Is(err, ErrHostClosed) {
		t.Errorf("Load after Close: %v, want ErrHostClosed", err)
	}
}
