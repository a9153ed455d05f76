package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names recognised in the header row.
const (
	ColumnShowID      = "show_id"
	ColumnType        = "type"
	ColumnTitle       = "title"
	ColumnDirector    = "director"
	ColumnCast        = "cast"
	ColumnCountry     = "country"
	ColumnDateAdded   = "date_added"
	ColumnReleaseYear = "release_year"
	ColumnRating      = "rating"
	ColumnDuration    = "duration"
	ColumnListedIn    = "listed_in"
	ColumnDescription = "description"
)

// RequiredColumns must all be present in the header row.
var RequiredColumns = []string{
	ColumnTitle,
	ColumnDescription,
	ColumnListedIn,
	ColumnCast,
	ColumnDirector,
	ColumnType,
}

var (
	// ErrMissingColumns reports a header without one or more required columns.
	ErrMissingColumns = errors.New("catalog missing required columns")
	// ErrEmptySource reports a source without a header row.
	ErrEmptySource = errors.New("catalog source is empty")
)

// MissingColumnsError lists every required column absent from the header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumns, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error { return ErrMissingColumns }

// Load reads a catalog CSV file from disk.
func Load(path string) ([]Title, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	titles, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return titles, nil
}

// Read parses catalog CSV data. The header is validated by column presence;
// rows shorter than the header are padded with empty cells and extra cells are
// ignored.
func Read(r io.Reader) ([]Title, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptySource
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := indexHeader(header)
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var titles []Title
	line, _ := reader.FieldPos(0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record after line %d: %w", line, err)
		}
		line, _ = reader.FieldPos(0)
		if isBlankRecord(record) {
			continue
		}
		cell := func(name string) string {
			pos, ok := index[name]
			if !ok || pos >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[pos])
		}
		titles = append(titles, Title{
			Row:         len(titles),
			ShowID:      cell(ColumnShowID),
			Type:        cell(ColumnType),
			Title:       cell(ColumnTitle),
			Director:    cell(ColumnDirector),
			Cast:        cell(ColumnCast),
			Country:     cell(ColumnCountry),
			DateAdded:   cell(ColumnDateAdded),
			ReleaseYear: cell(ColumnReleaseYear),
			Rating:      cell(ColumnRating),
			Duration:    cell(ColumnDuration),
			ListedIn:    cell(ColumnListedIn),
			Description: cell(ColumnDescription),
		})
	}
	return titles, nil
}

func indexHeader(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	return index
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
