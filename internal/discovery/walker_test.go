package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
		t.Fatalf("failed to create file %s: %v", path, err)
	}
}

func contains(files []string, suffix string) bool {
	for _, f := range files {
		if filepath.ToSlash(f) == suffix || filepath.Base(f) == suffix {
			return true
		}
	}
	return false
}

func TestWalker_SuiteFiles(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cvr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	writeFile(t, filepath.Join(tmpDir, "default", "ssh_spec.rb"))
	writeFile(t, filepath.Join(tmpDir, "default", "controls", "nginx_spec.rb"))
	writeFile(t, filepath.Join(tmpDir, "default", "README.md"))
	writeFile(t, filepath.Join(tmpDir, "default", "roles", "web_spec.rb"))
	writeFile(t, filepath.Join(tmpDir, "default", "data_bags", "users", "admin_spec.rb"))
	// Same file name as one under roles/, but outside any reserved dir
	writeFile(t, filepath.Join(tmpDir, "default", "controls", "web_spec.rb"))
	// Reserved name nested deeper than the first level is not excluded
	writeFile(t, filepath.Join(tmpDir, "default", "controls", "roles", "deep_spec.rb"))

	walker := NewWalker([]string{"data", "data_bags", "environments", "nodes", "roles"})

	t.Run("finds rb files and skips reserved first-level dirs", func(t *testing.T) {
		files := walker.SuiteFiles(tmpDir, "default")

		if len(files) != 4 {
			t.Fatalf("expected 4 suite files, got %d: %v", len(files), files)
		}
		if contains(files, "admin_spec.rb") {
			t.Error("files under data_bags/ should be excluded")
		}
		if !contains(files, "deep_spec.rb") {
			t.Error("reserved names below the first level should not be excluded")
		}
	})

	t.Run("same-named file outside a reserved dir is included", func(t *testing.T) {
		files := walker.SuiteFiles(tmpDir, "default")

		var webSpecs []string
		for _, f := range files {
			if filepath.Base(f) == "web_spec.rb" {
				webSpecs = append(webSpecs, f)
			}
		}
		if len(webSpecs) != 1 {
			t.Fatalf("expected exactly 1 web_spec.rb, got %d: %v", len(webSpecs), webSpecs)
		}
		if filepath.Base(filepath.Dir(webSpecs[0])) != "controls" {
			t.Errorf("expected the included web_spec.rb to be under controls/, got %s", webSpecs[0])
		}
	})

	t.Run("non-rb files are excluded", func(t *testing.T) {
		files := walker.SuiteFiles(tmpDir, "default")
		if contains(files, "README.md") {
			t.Error("non-.rb files should be excluded")
		}
	})

	t.Run("missing suite directory yields empty result", func(t *testing.T) {
		files := walker.SuiteFiles(tmpDir, "nonexistent")
		if len(files) != 0 {
			t.Errorf("expected empty result, got %v", files)
		}
	})
}

func TestWalker_Helpers(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cvr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	walker := NewWalker([]string{"roles"})

	t.Run("missing helpers directory yields empty result", func(t *testing.T) {
		files := walker.Helpers(tmpDir)
		if len(files) != 0 {
			t.Errorf("expected empty result, got %v", files)
		}
	})

	writeFile(t, filepath.Join(tmpDir, "helpers", "spec_helper.rb"))
	writeFile(t, filepath.Join(tmpDir, "helpers", "shared", "matchers.rb"))
	writeFile(t, filepath.Join(tmpDir, "helpers", "shared", "deep", "fixture.json"))
	// Reserved names do not apply to helper discovery
	writeFile(t, filepath.Join(tmpDir, "helpers", "roles", "role_helper.rb"))

	t.Run("finds nested files with any extension", func(t *testing.T) {
		files := walker.Helpers(tmpDir)
		if len(files) != 4 {
			t.Fatalf("expected 4 helper files, got %d: %v", len(files), files)
		}
		if !contains(files, "fixture.json") {
			t.Error("helper discovery should not filter by extension")
		}
		if !contains(files, "role_helper.rb") {
			t.Error("reserved names should not exclude helper files")
		}
	})

	t.Run("directories themselves are excluded", func(t *testing.T) {
		files := walker.Helpers(tmpDir)
		for _, f := range files {
			info, err := os.Stat(f)
			if err != nil {
				t.Fatalf("stat %s: %v", f, err)
			}
			if info.IsDir() {
				t.Errorf("directory %s should not be listed", f)
			}
		}
	})
}
