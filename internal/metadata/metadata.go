// Package metadata holds descriptive records about models, independent of
// any particular deployment of them.
package metadata

import (
	"errors"
	"fmt"
)

// AccessPolicy describes who may use a model.
type AccessPolicy string

const (
	AccessOpen    AccessPolicy = "open"
	AccessLimited AccessPolicy = "limited"
	AccessClosed  AccessPolicy = "closed"
)

// Tags applied to models exposing a plain-text interface. Synthesized
// records carry both.
const (
	TextModelTag                  = "text"
	FullFunctionalityTextModelTag = "full_functionality_text"
)

// UnknownReleaseDate marks records whose release date was never declared.
const UnknownReleaseDate = "unknown"

// UnknownNumParameters marks records whose parameter count was never declared.
const UnknownNumParameters = -1

// ModelMetadata describes a model. DeploymentNames may grow after the record
// is stored; every other field is fixed at creation.
type ModelMetadata struct {
	Name          string       `yaml:"name"`
	DisplayName   string       `yaml:"display_name"`
	Description   string       `yaml:"description"`
	Access        AccessPolicy `yaml:"access"`
	NumParameters int          `yaml:"num_parameters"`
	ReleaseDate   string       `yaml:"release_date"`
	Tags          []string     `yaml:"tags"`

	// DeploymentNames lists the deployments serving this model, in
	// registration order. nil means the list was never declared; readers
	// should go through DeploymentNamesView.
	DeploymentNames []string `yaml:"deployment_names,omitempty"`
}

// DeploymentNamesView returns the effective deployment-name list: the stored
// list when one was declared, otherwise just the record's own name. The
// fallback is computed at read time and never written back to the record.
func (m *ModelMetadata) DeploymentNamesView() []string {
	if m.DeploymentNames != nil {
		return m.DeploymentNames
	}
	return []string{m.Name}
}

// NewDefault returns the minimal metadata record synthesized for a model
// that is known only through its deployments.
func NewDefault(name string) *ModelMetadata {
	return &ModelMetadata{
		Name:          name,
		DisplayName:   name,
		Description:   "",
		Access:        AccessLimited,
		NumParameters: UnknownNumParameters,
		ReleaseDate:   UnknownReleaseDate,
		Tags:          []string{TextModelTag, FullFunctionalityTextModelTag},
	}
}

// ErrModelNotFound indicates a model name with no metadata record.
var ErrModelNotFound = errors.New("model metadata not found")

// Store keeps metadata records keyed by model name, remembering insertion
// order for stable listings.
type Store struct {
	byName map[string]*ModelMetadata
	order  []string
}

// NewStore returns an empty metadata store.
func NewStore() *Store {
	return &Store{byName: make(map[string]*ModelMetadata)}
}

// Get returns the record for name.
func (s *Store) Get(name string) (*ModelMetadata, error) {
	md, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return md, nil
}

// Put inserts or replaces the record under its own name.
func (s *Store) Put(md *ModelMetadata) {
	if _, exists := s.byName[md.Name]; !exists {
		s.order = append(s.order, md.Name)
	}
	s.byName[md.Name] = md
}

// Names returns every stored model name in insertion order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.byName)
}
