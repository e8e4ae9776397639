package metadata

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const sampleMetadata = `models:
  - name: openai/gpt-4o
    display_name: GPT-4o
    description: Flagship multimodal model.
    access: limited
    num_parameters: -1
    release_date: "2024-05-13"
    tags: [text, full_functionality_text]
    deployment_names:
      - myorg/gpt-4o-proxy
  - name: org/legacy
    display_name: Legacy
    access: open
`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, MetadataFile)
	if err := os.WriteFile(path, []byte(sampleMetadata), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore()
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	md, err := s.Get("openai/gpt-4o")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if md.DisplayName != "GPT-4o" || md.Access != AccessLimited {
		t.Fatalf("record mismatch: %+v", md)
	}
	if !slices.Equal(md.DeploymentNames, []string{"myorg/gpt-4o-proxy"}) {
		t.Fatalf("deployment_names mismatch: %v", md.DeploymentNames)
	}

	legacy, err := s.Get("org/legacy")
	if err != nil {
		t.Fatalf("Get legacy: %v", err)
	}
	if legacy.DeploymentNames != nil {
		t.Fatalf("undeclared list should stay unset, got %v", legacy.DeploymentNames)
	}
}

func TestLoadFile_RecordWithoutName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, MetadataFile)
	if err := os.WriteFile(path, []byte("models:\n  - display_name: Anonymous\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewStore().LoadFile(path); err == nil {
		t.Fatalf("nameless record should fail")
	}
}

func TestLoadDir_MissingFile(t *testing.T) {
	s := NewStore()
	if err := s.LoadDir(t.TempDir()); err != nil {
		t.Fatalf("LoadDir on empty dir: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("nothing should be stored, got %v", s.Names())
	}
}
