// Package deploy tracks model deployments, the named, reachable instances of a
// model, and keeps each one linked to a model metadata record.
package deploy

import (
	"fmt"
	"strings"

	"github.com/shakatoday/helm/internal/objspec"
)

// ModelDeployment is an accessible instance of a model, e.g. a hosted
// endpoint. A model can have several deployments. Records are immutable once
// registered and live for the process lifetime.
type ModelDeployment struct {
	// Name of the deployment, conventionally "<host_group>/<engine>",
	// e.g. "huggingface/t5-11b". Globally unique within a registry.
	Name string `yaml:"name"`

	// ClientSpec describes how to build the client for this deployment.
	ClientSpec objspec.Spec `yaml:"client_spec"`

	// ModelName is the model this deployment serves. Empty means the
	// deployment name doubles as the model name.
	ModelName string `yaml:"model_name,omitempty"`

	// TokenizerName for this deployment. Empty means the window service
	// infers it.
	TokenizerName string `yaml:"tokenizer_name,omitempty"`

	// WindowServiceSpec describes how to build the window service, when one
	// is declared.
	WindowServiceSpec *objspec.Spec `yaml:"window_service_spec,omitempty"`

	// MaxSequenceLength for this deployment. Zero means undeclared.
	MaxSequenceLength int `yaml:"max_sequence_length,omitempty"`

	// MaxRequestLength for this deployment. Zero means it follows
	// MaxSequenceLength; read it through RequestLength.
	MaxRequestLength int `yaml:"max_request_length,omitempty"`
}

// EffectiveModelName returns the model this deployment serves: ModelName
// when set, the deployment's own name otherwise.
func (d ModelDeployment) EffectiveModelName() string {
	if d.ModelName != "" {
		return d.ModelName
	}
	return d.Name
}

// HostGroup returns the first '/'-delimited segment of the deployment name,
// e.g. "huggingface" from "huggingface/t5-11b". This can differ from the
// model's creator organization.
func (d ModelDeployment) HostGroup() string {
	group, _, _ := strings.Cut(d.Name, "/")
	return group
}

// Engine returns everything after the first '/' of the deployment name,
// e.g. "j1-jumbo" from "ai21/j1-jumbo". A name with no '/' has no engine.
func (d ModelDeployment) Engine() (string, error) {
	_, engine, found := strings.Cut(d.Name, "/")
	if !found {
		return "", fmt.Errorf("deployment name %q has no engine segment", d.Name)
	}
	return engine, nil
}

// RequestLength returns the maximum request length, following
// MaxSequenceLength when MaxRequestLength was never declared.
func (d ModelDeployment) RequestLength() int {
	if d.MaxRequestLength != 0 {
		return d.MaxRequestLength
	}
	return d.MaxSequenceLength
}
