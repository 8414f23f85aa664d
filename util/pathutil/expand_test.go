package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}

	t.Run("tilde prefix", func(t *testing.T) {
		got, err := Expand("~/menus/pick.yml")
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		want := filepath.Join(home, "menus", "pick.yml")
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("bare tilde", func(t *testing.T) {
		got, err := Expand("~")
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		if got != home {
			t.Errorf("got %q, want %q", got, home)
		}
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv("PICK_TEST_DIR", "/tmp/menus")
		got, err := Expand("$PICK_TEST_DIR/pick.yml")
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		if got != "/tmp/menus/pick.yml" {
			t.Errorf("got %q, want /tmp/menus/pick.yml", got)
		}
	})

	t.Run("relative becomes absolute", func(t *testing.T) {
		got, err := Expand("menus/pick.yml")
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("got %q, want an absolute path", got)
		}
	})

	t.Run("mid-path tilde untouched", func(t *testing.T) {
		got, err := Expand("/srv/~backup/pick.yml")
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		if got != "/srv/~backup/pick.yml" {
			t.Errorf("got %q, want /srv/~backup/pick.yml", got)
		}
	})
}
