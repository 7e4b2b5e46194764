package syllabus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/examcoach-ai/coach-server/internal/syllabus"
)

func TestLoadDir_InstallsOverlay(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "bitsat.yaml"), []byte(`
exam_type: "BITSAT"
subjects:
  Physics:
    Mechanics: 22
    Optics: 12
  English:
    Comprehension: 18
`), 0o644)

	table := syllabus.NewTable()
	if err := table.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	weights := table.ForExam("BITSAT")
	if got := weights.Weight("Physics", "Mechanics"); got != 22 {
		t.Errorf("Weight(Physics, Mechanics) = %v, want 22", got)
	}
	if got := weights.Weight("English", "Comprehension"); got != 18 {
		t.Errorf("Weight(English, Comprehension) = %v, want 18", got)
	}
}

func TestLoadDir_OverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "neet.yaml"), []byte(`
exam_type: "NEET"
subjects:
  Physics:
    Mechanics: 40
`), 0o644)

	table := syllabus.NewTable()
	if err := table.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	weights := table.ForExam("NEET")
	if got := weights.Weight("Physics", "Mechanics"); got != 40 {
		t.Errorf("Weight = %v, want overlay value 40", got)
	}
	// Replaced table no longer carries built-in entries.
	if got := weights.Weight("Biology", "Genetics"); got != syllabus.DefaultWeight {
		t.Errorf("Weight = %v, want %v after replacement", got, syllabus.DefaultWeight)
	}
}

func TestLoadDir_SkipsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{not yaml"), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644)
	os.WriteFile(filepath.Join(dir, "no-exam.yaml"), []byte("subjects:\n  Physics:\n    Optics: 5\n"), 0o644)

	table := syllabus.NewTable()
	if err := table.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}

	// Built-ins untouched.
	if got := table.ForExam("JEE Mains").Weight("Physics", "Mechanics"); got != 25 {
		t.Errorf("Weight = %v, want built-in 25", got)
	}
}

func TestLoadDir_EmptyDir(t *testing.T) {
	table := syllabus.NewTable()
	if err := table.LoadDir(t.TempDir()); err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
}
