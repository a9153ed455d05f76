package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// CatalogRow is a compact catalog record for fixtures.
type CatalogRow struct {
	Type        string
	Title       string
	Director    string
	Cast        string
	ListedIn    string
	Description string
}

// CatalogHeader is the Netflix export column order.
var CatalogHeader = []string{
	"show_id", "type", "title", "director", "cast", "country", "date_added",
	"release_year", "rating", "duration", "listed_in", "description",
}

// WriteCatalog writes rows as a CSV catalog at path.
func WriteCatalog(t testing.TB, path string, rows []CatalogRow) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CatalogHeader); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for i, row := range rows {
		typ := row.Type
		if typ == "" {
			typ = "Movie"
		}
		record := []string{
			"s" + strconv.Itoa(i+1), typ, row.Title, row.Director, row.Cast, "",
			"", "", "", "", row.ListedIn, row.Description,
		}
		if err := w.Write(record); err != nil {
			t.Fatalf("write row %d: %v", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
}

// SampleCatalog returns a small catalog with clear genre clusters.
func SampleCatalog() []CatalogRow {
	return []CatalogRow{
		{Type: "TV Show", Title: "Dark", ListedIn: "International TV Shows, TV Mysteries", Description: "A missing child sets four families on a frantic hunt through time travel mysteries."},
		{Type: "TV Show", Title: "Stranger Things", ListedIn: "TV Horror, TV Mysteries", Description: "When a young boy vanishes, a small town uncovers a mystery involving secret experiments."},
		{Type: "TV Show", Title: "The OA", ListedIn: "TV Mysteries, TV Sci-Fi", Description: "A young woman missing for years returns with mysterious abilities."},
		{Type: "Movie", Title: "Chef's Table Special", ListedIn: "Documentaries", Description: "Chefs share kitchen secrets and recipes."},
		{Type: "Movie", Title: "Salt Fat Acid Heat", ListedIn: "Documentaries", Description: "A chef travels to learn kitchen recipes."},
		{Type: "Movie", Title: "The Dark Knight", Director: "Christopher Nolan", ListedIn: "Action & Adventure", Description: "Batman faces the Joker in Gotham."},
	}
}
