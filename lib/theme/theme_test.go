// Copyright 2026 The Hexkit Authors
// SPDX-License-Identifier: Apache-2.0

package theme

import (
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		preference Preference
		system     Theme
		want       Theme
	}{
		{PreferLight, Dark, Light},
		{PreferDark, Light, Dark},
		{FollowSystem, Dark, Dark},
		{FollowSystem, Light, Light},
		{"garbage", Light, Light},
	}
	for _, test := range tests {
		if got := Resolve(test.preference, test.system); got != test.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", test.preference, test.system, got, test.want)
		}
	}
}

func TestToggle(t *testing.T) {
	if Toggle(Dark) != Light || Toggle(Light) != Dark {
		t.Error("Toggle does not flip the theme")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "hexkit", "theme")}

	// Absent file means follow-system.
	preference, err := store.Load()
	if err != nil {
		t.Fatalf("Load on absent file: %v", err)
	}
	if preference != FollowSystem {
		t.Errorf("Load on absent file = %q, want %q", preference, FollowSystem)
	}

	if err := store.Save(PreferDark); err != nil {
		t.Fatalf("Save: %v", err)
	}
	preference, err = store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if preference != PreferDark {
		t.Errorf("Load after Save = %q, want %q", preference, PreferDark)
	}
}

func TestFileStoreCorruptValue(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "theme")}
	if err := store.Save("neon"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	preference, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if preference != FollowSystem {
		t.Errorf("Load of unrecognized value = %q, want %q", preference, FollowSystem)
	}
}

func TestColorsKnownThemes(t *testing.T) {
	if Colors(Dark) == (Palette{}) {
		t.Error("dark palette is empty")
	}
	if Colors(Light) == (Palette{}) {
		t.Error("light palette is empty")
	}
	if Colors("unknown") != Colors(Dark) {
		t.Error("unknown theme does not fall back to dark")
	}
}
