// Package flan parses and plots fluorescence anisotropy data exported from
// the Horiba Fluorolog-3.
package flan

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// headerLines is the fixed instrument-header boilerplate at the top of every
// Fluorolog export.
const headerLines = 2

// LoadTable reads a delimited numeric table from path, skipping the first
// two lines unconditionally. Fields may be separated by any mix of commas
// and whitespace. The table is returned column-major: data[0] is the first
// column, data[1] the second, and so on. Every data row must have the same
// number of fields as the first.
func LoadTable(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	// Header
	for i := 0; i < headerLines; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("load table %s: %w", path, err)
			}
			return nil, fmt.Errorf("load table %s: fewer than %d header lines", path, headerLines)
		}
	}

	var cols [][]float64
	line := headerLines

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})

		if cols == nil {
			cols = make([][]float64, len(fields))
		} else if len(fields) != len(cols) {
			return nil, fmt.Errorf("load table %s: line %d has %d fields, want %d", path, line, len(fields), len(cols))
		}

		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("load table %s: line %d: %w", path, line, err)
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load table %s: %w", path, err)
	}

	return cols, nil
}

// loadXY loads a table and returns its first two columns.
func loadXY(path string) ([]float64, []float64, error) {
	data, err := LoadTable(path)
	if err != nil {
		return nil, nil, err
	}
	if len(data) < 2 {
		return nil, nil, fmt.Errorf("load table %s: need 2 columns, have %d", path, len(data))
	}
	return data[0], data[1], nil
}
