package cmd

import (
	"strings"

	"github.com/shakatoday/helm/internal/config"
	"github.com/shakatoday/helm/internal/deploy"
)

// apiKeyName maps a host group to the credential key consulted for it,
// e.g. "openai" becomes "OPENAI_API_KEY". Values are resolved through the
// process environment first, then <base>/.env.
func apiKeyName(hostGroup string) string {
	return strings.ToUpper(strings.ReplaceAll(hostGroup, "-", "_")) + "_API_KEY"
}

// clientExtraArgs builds the extra constructor arguments merged into a
// deployment's client spec when its client is constructed: the host group's
// api key, when one is configured. Nil when no credential is configured.
func clientExtraArgs(d deploy.ModelDeployment) (map[string]any, error) {
	v, err := config.GetConfigValue(apiKeyName(d.HostGroup()))
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, nil
	}
	return map[string]any{"api_key": v}, nil
}
