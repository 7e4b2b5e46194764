package syllabus

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// overlayFile is the YAML shape of a weightage overlay:
//
//	exam_type: "JEE Mains 2026"
//	subjects:
//	  Physics:
//	    Mechanics: 25
//	    Thermodynamics: 15
type overlayFile struct {
	ExamType string                        `yaml:"exam_type"`
	Subjects map[string]map[string]float64 `yaml:"subjects"`
}

// LoadDir walks a directory of YAML overlay files and installs each as
// the weightage table for its exam type, replacing a built-in of the
// same name. Invalid files are skipped with a warning; an unreadable
// root is an error.
func (t *Table) LoadDir(rootDir string) error {
	loaded := 0
	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		if t.loadOverlay(path) {
			loaded++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("loading weightage overlays: %w", err)
	}

	slog.Info("syllabus weightage loaded", "dir", rootDir, "overlays", loaded)
	return nil
}

func (t *Table) loadOverlay(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("skipping unreadable weightage file", "path", path, "error", err)
		return false
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		slog.Warn("skipping invalid weightage YAML", "path", path, "error", err)
		return false
	}

	if overlay.ExamType == "" || len(overlay.Subjects) == 0 {
		return false // not an overlay file
	}

	weights := make(examWeights, len(overlay.Subjects))
	for subject, topics := range overlay.Subjects {
		weights[subject] = subjectWeights(topics)
	}
	t.setExam(overlay.ExamType, weights)
	return true
}
