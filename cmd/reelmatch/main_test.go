package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"

	"reelmatch/internal/api"
	"reelmatch/internal/config"
	"reelmatch/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	opts = append([]testsupport.ConfigOption{testsupport.WithCatalogRows(testsupport.SampleCatalog()...)}, opts...)
	cfg := testsupport.NewConfig(t, opts...)
	cfg.Logging.Level = "error"
	base := testsupport.BaseDir(cfg)
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)
	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", needle, haystack)
	}
}

func TestRecommendTable(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"recommend", "Dark", "-n", "2", "--no-posters"}, env.configPath)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	requireContains(t, out, `Because you searched "Dark"`)
	requireContains(t, out, "SCORE")
	if strings.Contains(out, "POSTER") {
		t.Fatalf("poster column should be absent with --no-posters:\n%s", out)
	}
}

func TestRecommendSubstringJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"recommend", "stranger", "--json", "-n", "3"}, env.configPath)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	var view api.RecommendationView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if view.Resolved != "Stranger Things" || !view.SubstringMatch || len(view.Items) != 3 {
		t.Fatalf("unexpected view: %+v", view)
	}
	for _, item := range view.Items {
		if item.Poster == nil || item.Poster.Status != "placeholder" || item.Poster.Reason != "provider_disabled" {
			t.Fatalf("expected disabled-provider placeholder, got %+v", item.Poster)
		}
	}
}

func TestRecommendErrors(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"recommend", "Zzzznonexistent"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), `"Zzzznonexistent" was not found`) {
		t.Fatalf("expected not found message, got %v", err)
	}

	_, _, err = runCLI(t, []string{"recommend"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "please enter") {
		t.Fatalf("expected empty query message, got %v", err)
	}

	missing := filepath.Join(env.baseDir, "missing.csv")
	_, _, err = runCLI(t, []string{"--catalog", missing, "recommend", "Dark"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "catalog is not loaded") {
		t.Fatalf("expected index not ready message, got %v", err)
	}
}

func TestRecommendSavePosters(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := filepath.Join(env.baseDir, "posters")
	out, _, err := runCLI(t, []string{"recommend", "Dark", "-n", "2", "--save-posters", dir}, env.configPath)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	requireContains(t, out, "POSTER")
	requireContains(t, out, "FILE")
	matches, _ := filepath.Glob(filepath.Join(dir, "0*.png"))
	if len(matches) != 2 {
		t.Fatalf("expected 2 exported posters, got %v", matches)
	}
	for _, path := range matches {
		requireContains(t, out, path)
	}
}

func TestPosterCommandWritesPlaceholder(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "out", "dark.png")
	out, _, err := runCLI(t, []string{"poster", "Dark", "--out", target}, env.configPath)
	if err != nil {
		t.Fatalf("poster: %v", err)
	}
	requireContains(t, out, "[WARN] placeholder (provider_disabled)")
	f, err := os.Open(target)
	if err != nil {
		t.Fatalf("open poster: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode poster: %v", err)
	}
	if img.Bounds().Dx() != 140 || img.Bounds().Dy() != 210 {
		t.Fatalf("unexpected placeholder size %v", img.Bounds())
	}
}

func TestCatalogStats(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"catalog", "stats", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("catalog stats: %v", err)
	}
	var stats api.CatalogStats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Titles != len(testsupport.SampleCatalog()) || stats.Vocabulary == 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestHistoryCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"recommend", "Dark", "--no-posters"}, env.configPath); err != nil {
		t.Fatalf("recommend: %v", err)
	}
	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "Dark")

	out, _, err = runCLI(t, []string{"history", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed 1 history entries")

	out, _, _ = runCLI(t, []string{"history"}, env.configPath)
	requireContains(t, out, "No queries recorded yet.")
}

func TestConfigInitValidateShow(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithTMDB("secret-key-1234", "http://127.0.0.1:1", ""))

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "[OK] tmdb")
	requireContains(t, out, "titles)")

	out, _, err = runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "****1234")
	if strings.Contains(out, "secret-key") {
		t.Fatalf("api key leaked:\n%s", out)
	}

	out, _, err = runCLI(t, []string{"config", "validate", "--catalog", filepath.Join(env.baseDir, "absent.csv")}, env.configPath)
	if err == nil {
		t.Fatal("expected validate to fail for a missing catalog")
	}
	requireContains(t, out, "absent.csv (error:")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
}

func TestMaskSecret(t *testing.T) {
	cases := map[string]string{"": "", "abc": "****", "abcdefgh": "****efgh"}
	for in, want := range cases {
		if got := maskSecret(in); got != want {
			t.Errorf("maskSecret(%q) = %q, want %q", in, got, want)
		}
	}
}
