package deploy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DeploymentsFile is the file name looked up inside a base directory.
const DeploymentsFile = "model_deployments.yaml"

// deploymentsDoc mirrors the top-level shape of a deployments file: a
// mapping with the single key "model_deployments".
type deploymentsDoc struct {
	ModelDeployments []ModelDeployment `yaml:"model_deployments"`
}

// ParseFile decodes a deployments file without registering anything.
func ParseFile(path string) ([]ModelDeployment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read deployments file %s: %w", path, err)
	}
	var doc deploymentsDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("invalid deployments YAML %s: %w", path, err)
	}
	return doc.ModelDeployments, nil
}

// WriteFile writes deployments to path in the same single-key mapping shape
// ParseFile reads.
func WriteFile(path string, deployments []ModelDeployment) error {
	b, err := yaml.Marshal(deploymentsDoc{ModelDeployments: deployments})
	if err != nil {
		return fmt.Errorf("cannot encode deployments: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("cannot write deployments file %s: %w", path, err)
	}
	return nil
}

// ValidateRecord checks the fields a deployment cannot be registered
// without.
func ValidateRecord(d ModelDeployment) error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("deployment is missing a name")
	}
	if d.ClientSpec.ClassName == "" {
		return fmt.Errorf("deployment %s is missing client_spec.class_name", d.Name)
	}
	return nil
}

// RegisterBatch registers each deployment in order. It stops at the first
// invalid record; deployments registered before it stay registered, since batch
// registration is not transactional.
func (r *Registry) RegisterBatch(deployments []ModelDeployment) error {
	for _, d := range deployments {
		if err := ValidateRecord(d); err != nil {
			return err
		}
		r.Register(d)
	}
	return nil
}

// LoadFile registers every deployment in the file, in file order. Order
// matters: a later record with the same name overwrites an earlier one.
func (r *Registry) LoadFile(path string) error {
	deployments, err := ParseFile(path)
	if err != nil {
		return err
	}
	r.log.Info().Str("path", path).Int("count", len(deployments)).Msg("reading model deployments")
	return r.RegisterBatch(deployments)
}

// LoadDir registers deployments from base/model_deployments.yaml. A missing
// file means there is nothing to register and is not an error.
func (r *Registry) LoadDir(base string) error {
	path := filepath.Join(base, DeploymentsFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		r.log.Debug().Str("path", path).Msg("no deployments file, nothing to register")
		return nil
	}
	return r.LoadFile(path)
}
