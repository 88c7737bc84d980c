package chart

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"
)

type jsonPoint struct {
	Label    string         `json:"label"`
	Value    float64        `json:"value"`
	Color    string         `json:"color,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Children []jsonPoint    `json:"children,omitempty"`
}

type jsonDataset struct {
	Title string      `json:"title"`
	Data  []jsonPoint `json:"data"`
}

// LoadJSON reads a dataset file: either {"title": ..., "data": [...]}
// or a bare array of points. Children nest recursively for drill-down.
func LoadJSON(path string) (Series, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return ParseJSON(b)
}

// ParseJSON decodes a JSON dataset from raw bytes.
func ParseJSON(b []byte) (Series, string, error) {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" {
		return nil, "", errors.New("empty dataset")
	}
	var ds jsonDataset
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(b, &ds.Data); err != nil {
			return nil, "", err
		}
	} else if err := json.Unmarshal(b, &ds); err != nil {
		return nil, "", err
	}
	s := toSeries(ds.Data)
	if len(s) == 0 {
		return nil, "", errors.New("no data points found")
	}
	return s, ds.Title, nil
}

func toSeries(pts []jsonPoint) Series {
	if len(pts) == 0 {
		return nil
	}
	out := make(Series, 0, len(pts))
	for _, p := range pts {
		out = append(out, DataPoint{
			Label:    p.Label,
			Value:    sanitize(p.Value),
			Color:    p.Color,
			Metadata: p.Metadata,
			Children: toSeries(p.Children),
		})
	}
	return out
}

// LoadCSV reads a CSV with label/value columns. Column detection:
// label|name|category and value|amount|total|count (case-insensitive),
// plus an optional color column. Malformed rows are skipped.
func LoadCSV(path string) (Series, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, "", err
	}
	if len(recs) == 0 {
		return nil, "", errors.New("empty csv")
	}
	idxLabel, idxValue, idxColor := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "label", "name", "category":
			if idxLabel == -1 {
				idxLabel = i
			}
		case "value", "amount", "total", "count":
			if idxValue == -1 {
				idxValue = i
			}
		case "color", "colour":
			if idxColor == -1 {
				idxColor = i
			}
		}
	}
	if idxLabel == -1 || idxValue == -1 {
		return nil, "", errors.New("csv: label/value columns not found")
	}
	var s Series
	for _, row := range recs[1:] {
		if idxLabel >= len(row) || idxValue >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idxValue]), 64)
		if err != nil {
			continue
		}
		p := DataPoint{Label: strings.TrimSpace(row[idxLabel]), Value: sanitize(v)}
		if idxColor != -1 && idxColor < len(row) {
			p.Color = strings.TrimSpace(row[idxColor])
		}
		s = append(s, p)
	}
	if len(s) == 0 {
		return nil, "", errors.New("csv: no valid rows parsed")
	}
	return s, "", nil
}
