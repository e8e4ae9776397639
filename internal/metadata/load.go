package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MetadataFile is the file name looked up inside a base directory.
const MetadataFile = "model_metadata.yaml"

// metadataDoc mirrors the top-level shape of a metadata file: a mapping
// with the single key "models".
type metadataDoc struct {
	Models []*ModelMetadata `yaml:"models"`
}

// LoadFile stores every record in the file, in file order. A later record
// with the same name replaces an earlier one.
func (s *Store) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read metadata file %s: %w", path, err)
	}
	var doc metadataDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("invalid metadata YAML %s: %w", path, err)
	}
	for _, md := range doc.Models {
		if md.Name == "" {
			return fmt.Errorf("metadata record without a name in %s", path)
		}
		s.Put(md)
	}
	return nil
}

// LoadDir stores records from base/model_metadata.yaml. A missing file
// means there is nothing to store and is not an error.
func (s *Store) LoadDir(base string) error {
	path := filepath.Join(base, MetadataFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return s.LoadFile(path)
}
