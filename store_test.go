package goalplan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "plan.json"))
	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want default document for a missing file", err)
	}
	if doc.Settings.Currency != "INR" {
		t.Errorf("Currency = %q, want default", doc.Settings.Currency)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	s := NewStore(path)

	doc := planWith(
		[]Holding{holding("fd", CategoryFixedDeposit, 300000)},
		[]Goal{oneTimeGoal("trip", 400000, 6, inYears(2))},
	)
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	back, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(back.Goals) != 1 || back.Goals[0].Name != "trip" {
		t.Errorf("loaded goals = %+v, want the saved goal", back.Goals)
	}
	if len(back.Assets.Items) != 1 || !back.Assets.Items[0].Value.Equal(D(300000)) {
		t.Errorf("loaded holdings = %+v, want the saved holding", back.Assets.Items)
	}
}

func TestStoreLastWriteWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	s := NewStore(path)

	first := planWith(nil, []Goal{oneTimeGoal("a", 100, 0, inYears(2))})
	second := planWith(nil, []Goal{oneTimeGoal("b", 200, 0, inYears(3))})
	if err := s.Save(first); err != nil {
		t.Fatalf("Save(first) error = %v", err)
	}
	if err := s.Save(second); err != nil {
		t.Fatalf("Save(second) error = %v", err)
	}

	doc, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Fully replaced, no merge.
	if len(doc.Goals) != 1 || doc.Goals[0].ID != "b" {
		t.Errorf("loaded goals = %+v, want only the second document's goal", doc.Goals)
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := os.WriteFile(path, []byte("###"), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want silent recovery from a corrupt file", err)
	}
	if len(doc.Goals) != 0 {
		t.Errorf("recovered document = %+v, want defaults", doc)
	}
}

func TestFindPlanFile(t *testing.T) {
	// A file path, existing or not, is taken as is.
	path := filepath.Join(t.TempDir(), "plan.json")
	s, err := FindPlan(path)
	if err != nil {
		t.Fatalf("FindPlan() error = %v", err)
	}
	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}
}

func TestFindPlanDirectory(t *testing.T) {
	dir := t.TempDir()

	// Empty directory: fall back to plan.json inside it.
	s, err := FindPlan(dir)
	if err != nil {
		t.Fatalf("FindPlan() error = %v", err)
	}
	if want := filepath.Join(dir, "plan.json"); s.Path() != want {
		t.Errorf("Path() = %q, want fallback %q", s.Path(), want)
	}

	// One document: discover it, whatever its name.
	path := filepath.Join(dir, "family.json")
	if err := NewStore(path).Save(DefaultPlan()); err != nil {
		t.Fatal(err)
	}
	s, err = FindPlan(dir)
	if err != nil {
		t.Fatalf("FindPlan() error = %v", err)
	}
	if s.Path() != path {
		t.Errorf("Path() = %q, want discovered %q", s.Path(), path)
	}

	// Two documents: ambiguous, refuse to pick.
	if err := NewStore(filepath.Join(dir, "other.json")).Save(DefaultPlan()); err != nil {
		t.Fatal(err)
	}
	if _, err := FindPlan(dir); err == nil {
		t.Error("FindPlan() = nil error, want an ambiguity error for two plans")
	}
}

func TestFindPlanSkipsDotfiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".plan-123.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := FindPlan(dir)
	if err != nil {
		t.Fatalf("FindPlan() error = %v", err)
	}
	if want := filepath.Join(dir, "plan.json"); s.Path() != want {
		t.Errorf("Path() = %q, want %q: a leftover temp file must not count as a plan", s.Path(), want)
	}
}

func TestStoreGenerateID(t *testing.T) {
	s := NewStore("unused")
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := s.GenerateID()
		if id == "" {
			t.Fatal("GenerateID() returned an empty id")
		}
		if seen[id] {
			t.Fatalf("GenerateID() repeated %q", id)
		}
		seen[id] = true
	}
}
