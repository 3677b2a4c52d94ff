package data

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"inventory-release/internal/model"
)

// LoadPriceSeries reads a price series from a .json, .yaml/.yml or .csv file.
// CSV files need a header row with a "price" column; other columns are ignored.
// A missing name defaults to the file's base name.
func LoadPriceSeries(path string) (*model.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s *model.PriceSeries
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		s, err = DecodeJSON(f)
	case ".yaml", ".yml":
		s, err = DecodeYAML(f)
	case ".csv":
		s, err = DecodeCSV(f)
	default:
		return nil, fmt.Errorf("unsupported price file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

func DecodeJSON(r io.Reader) (*model.PriceSeries, error) {
	var s model.PriceSeries
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func DecodeYAML(r io.Reader) (*model.PriceSeries, error) {
	var s model.PriceSeries
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func DecodeCSV(r io.Reader) (*model.PriceSeries, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty csv")
	}
	col := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), "price") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.New(`csv header has no "price" column`)
	}

	s := &model.PriceSeries{Prices: make([]float64, 0, len(rows)-1)}
	for i, row := range rows[1:] {
		if col >= len(row) {
			return nil, fmt.Errorf("row %d: missing price", i+2)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		s.Prices = append(s.Prices, p)
	}
	return s, nil
}
