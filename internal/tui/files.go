package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"chartdeck/internal/chart"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".json" || ext == ".csv" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no .json or .csv files in current directory"
	}
}

// loadPath loads supported dataset formats into the model.
func (m *Model) loadPath(p string) {
	m.selPath = p
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".json":
		s, title, err := chart.LoadJSON(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.installSeries(s, title, filepath.Base(p))
	case ".csv":
		s, title, err := chart.LoadCSV(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.installSeries(s, title, filepath.Base(p))
	default:
		m.status = "unsupported file: " + ext
	}
}
