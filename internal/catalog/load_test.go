package catalog_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelmatch/internal/catalog"
)

const sampleCSV = "\ufeffshow_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description\n" +
	"s1,Movie,Dick Johnson Is Dead,Kirsten Johnson,,United States,\"September 25, 2021\",2020,PG-13,90 min,Documentaries,\"As her father nears the end of his life, filmmaker Kirsten Johnson stages his death.\"\n" +
	"s2,TV Show,Blood & Water,,\"Ama Qamata, Khosi Ngema\",South Africa,\"September 24, 2021\",2021,TV-MA,2 Seasons,\"International TV Shows, TV Dramas\",\"After crossing paths at a party, a Cape Town teen sets out to prove whether a swimming star is her sister.\"\n" +
	",,,,,,,,,,,\n" +
	"s3,TV Show,Dark,,Louis Hofmann,Germany,,2020,TV-MA,3 Seasons\n"

func TestReadParsesRows(t *testing.T) {
	titles, err := catalog.Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(titles) != 3 {
		t.Fatalf("expected 3 titles, got %d", len(titles))
	}
	for i, title := range titles {
		if title.Row != i {
			t.Fatalf("title %d has row %d", i, title.Row)
		}
	}
	first := titles[0]
	if first.ShowID != "s1" || first.Title != "Dick Johnson Is Dead" || first.Cast != "" {
		t.Fatalf("unexpected first title: %+v", first)
	}
	if titles[1].ListedIn != "International TV Shows, TV Dramas" {
		t.Fatalf("unexpected listed_in: %q", titles[1].ListedIn)
	}
	short := titles[2]
	if short.Title != "Dark" || short.ListedIn != "" || short.Description != "" {
		t.Fatalf("short row should pad missing cells: %+v", short)
	}
}

func TestCombinedTextUsesSimilarityFields(t *testing.T) {
	title := catalog.Title{
		Title:       "Movie A",
		Description: "war drama",
		ListedIn:    "Dramas",
		Cast:        "Jane Doe",
		Director:    "John Roe",
		Type:        "Movie",
		Country:     "Nowhere",
	}
	got := title.CombinedText()
	want := "war drama Dramas Jane Doe John Roe Movie"
	if got != want {
		t.Fatalf("CombinedText = %q, want %q", got, want)
	}

	docs := catalog.Documents([]catalog.Title{title, {}})
	if len(docs) != 2 || docs[0] != want || strings.TrimSpace(docs[1]) != "" {
		t.Fatalf("unexpected documents: %q", docs)
	}
}

func TestReadRejectsMissingColumns(t *testing.T) {
	_, err := catalog.Read(strings.NewReader("title,type,cast\nDark,TV Show,Someone\n"))
	if !errors.Is(err, catalog.ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
	var missing *catalog.MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnsError, got %T", err)
	}
	want := []string{"description", "listed_in", "director"}
	if strings.Join(missing.Columns, ",") != strings.Join(want, ",") {
		t.Fatalf("missing columns = %v, want %v", missing.Columns, want)
	}
}

func TestReadHeaderIsCaseInsensitive(t *testing.T) {
	data := " Title ,DESCRIPTION,Listed_In,Cast,Director,Type\nDark,time travel,TV,,,TV Show\n"
	titles, err := catalog.Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(titles) != 1 || titles[0].Title != "Dark" || titles[0].Description != "time travel" {
		t.Fatalf("unexpected titles: %+v", titles)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestReadErrorReportsSourceLine(t *testing.T) {
	errBoom := errors.New("disk gone")
	data := strings.Join(catalog.RequiredColumns, ",") + "\n" +
		",,,,,\n" +
		",,,,,\n" +
		"Dark,time travel,TV,,,TV Show\n"
	_, err := catalog.Read(io.MultiReader(strings.NewReader(data), failingReader{err: errBoom}))
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected underlying read error, got %v", err)
	}
	if !strings.Contains(err.Error(), "after line 4") {
		t.Fatalf("expected error to name line 4, got %v", err)
	}
}

func TestReadEmptySource(t *testing.T) {
	if _, err := catalog.Read(strings.NewReader("")); !errors.Is(err, catalog.ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestReadHeaderOnlyIsEmptyCatalog(t *testing.T) {
	titles, err := catalog.Read(strings.NewReader(strings.Join(catalog.RequiredColumns, ",") + "\n"))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(titles) != 0 {
		t.Fatalf("expected empty catalog, got %d titles", len(titles))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	titles, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(titles) != 3 {
		t.Fatalf("expected 3 titles, got %d", len(titles))
	}
}
