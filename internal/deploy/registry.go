package deploy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/shakatoday/helm/internal/metadata"
	"github.com/shakatoday/helm/internal/objspec"
)

var (
	// ErrDeploymentNotFound indicates a deployment name that is not
	// registered.
	ErrDeploymentNotFound = errors.New("model deployment not found")

	// ErrNoDefaultDeployment indicates a model with no registered
	// deployment and no usable deployment-name list.
	ErrNoDefaultDeployment = errors.New("no default deployment for model")
)

// Registry owns the table of model deployments and keeps every deployment
// linked to a metadata record in its store.
//
// Registration is expected to happen in a single sequential load phase
// before any readers query the registry; the registry takes no locks.
type Registry struct {
	deployments map[string]ModelDeployment
	order       []string
	metadata    *metadata.Store
	log         zerolog.Logger
}

// NewRegistry returns an empty registry backed by store.
func NewRegistry(store *metadata.Store, log zerolog.Logger) *Registry {
	return &Registry{
		deployments: make(map[string]ModelDeployment),
		metadata:    store,
		log:         log,
	}
}

// Metadata exposes the linked metadata store.
func (r *Registry) Metadata() *metadata.Store {
	return r.metadata
}

// Register adds d to the registry, silently overwriting any deployment with
// the same name, and links it to a metadata record for its model: an
// existing record gains the deployment name (once), and a model never
// declared gets a synthesized default record.
func (r *Registry) Register(d ModelDeployment) {
	if _, exists := r.deployments[d.Name]; !exists {
		r.order = append(r.order, d.Name)
	}
	r.deployments[d.Name] = d
	r.log.Debug().Str("deployment", d.Name).Msg("registered model deployment")

	modelName := d.EffectiveModelName()
	md, err := r.metadata.Get(modelName)
	if err != nil {
		md = metadata.NewDefault(modelName)
		md.DeploymentNames = []string{d.Name}
		r.metadata.Put(md)
		r.log.Info().Str("model", modelName).Msg("synthesized default metadata for model")
		return
	}

	if !slices.Contains(md.DeploymentNamesView(), d.Name) {
		if md.DeploymentNames == nil {
			// The implicit self-name view is read-time only; the stored
			// list starts empty.
			md.DeploymentNames = []string{}
		}
		md.DeploymentNames = append(md.DeploymentNames, d.Name)
	}
}

// Get returns the deployment registered under name.
func (r *Registry) Get(name string) (ModelDeployment, error) {
	d, ok := r.deployments[name]
	if !ok {
		return ModelDeployment{}, fmt.Errorf("%w: %s", ErrDeploymentNotFound, name)
	}
	return d, nil
}

// Names returns every registered deployment name in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// ByHostGroup returns the names of every registered deployment in group, in
// registration order.
func (r *Registry) ByHostGroup(group string) []string {
	var out []string
	for _, name := range r.order {
		if r.deployments[name].HostGroup() == group {
			out = append(out, name)
		}
	}
	return out
}

// HostGroupOf returns the host group of the deployment registered under
// name.
func (r *Registry) HostGroupOf(name string) (string, error) {
	d, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return d.HostGroup(), nil
}

// DefaultFor returns the deployment to use for md when none is requested
// explicitly: the deployment named like the model itself when one is
// registered, otherwise the first listed deployment. The self-named
// deployment wins regardless of list order. A listed deployment that was
// never registered is an error, not skipped.
func (r *Registry) DefaultFor(md *metadata.ModelMetadata) (ModelDeployment, error) {
	if d, ok := r.deployments[md.Name]; ok {
		return d, nil
	}
	if len(md.DeploymentNames) > 0 {
		first := md.DeploymentNames[0]
		d, ok := r.deployments[first]
		if !ok {
			return ModelDeployment{}, fmt.Errorf("%w: %s", ErrDeploymentNotFound, first)
		}
		return d, nil
	}
	return ModelDeployment{}, fmt.Errorf("%w: %s", ErrNoDefaultDeployment, md.Name)
}

// MetadataFor returns the metadata record linked to the deployment
// registered under name. Registration guarantees the linkage, so a metadata
// miss here is an invariant violation and surfaces as the store's own
// not-found error.
func (r *Registry) MetadataFor(name string) (*metadata.ModelMetadata, error) {
	d, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return r.metadata.Get(d.EffectiveModelName())
}

// Client constructs the client for the deployment registered under name,
// merging extra arguments (typically credentials) into the client spec's
// own.
func (r *Registry) Client(name string, resolver *objspec.Resolver, extra map[string]any) (any, error) {
	d, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return resolver.Construct(d.ClientSpec, extra)
}
