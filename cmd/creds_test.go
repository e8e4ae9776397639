package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shakatoday/helm/internal/config"
	"github.com/shakatoday/helm/internal/deploy"
	"github.com/shakatoday/helm/internal/metadata"
	"github.com/shakatoday/helm/internal/objspec"
)

func TestAPIKeyName(t *testing.T) {
	if got := apiKeyName("openai"); got != "OPENAI_API_KEY" {
		t.Fatalf("apiKeyName(openai) = %q", got)
	}
	if got := apiKeyName("together-ai"); got != "TOGETHER_AI_API_KEY" {
		t.Fatalf("apiKeyName(together-ai) = %q", got)
	}
}

func TestClientExtraArgs_EnvThenDotEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv(config.EnvBasePath, base)
	t.Setenv("OPENAI_API_KEY", "")
	d := deploy.ModelDeployment{Name: "openai/gpt-4o"}

	extras, err := clientExtraArgs(d)
	if err != nil {
		t.Fatalf("clientExtraArgs: %v", err)
	}
	if extras != nil {
		t.Fatalf("no credential configured, got %v", extras)
	}

	env := filepath.Join(base, ".env")
	if err := os.WriteFile(env, []byte("OPENAI_API_KEY=sk-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	extras, err = clientExtraArgs(d)
	if err != nil {
		t.Fatalf("clientExtraArgs: %v", err)
	}
	if extras["api_key"] != "sk-dotenv" {
		t.Fatalf("dotenv credential mismatch: %v", extras)
	}

	t.Setenv("OPENAI_API_KEY", "sk-env")
	extras, err = clientExtraArgs(d)
	if err != nil {
		t.Fatalf("clientExtraArgs: %v", err)
	}
	if extras["api_key"] != "sk-env" {
		t.Fatalf("process env should win, got %v", extras)
	}
}

func TestClientExtraArgs_MergedIntoClientConstruction(t *testing.T) {
	t.Setenv(config.EnvBasePath, t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-test")

	reg := deploy.NewRegistry(metadata.NewStore(), zerolog.Nop())
	reg.Register(deploy.ModelDeployment{
		Name: "openai/gpt-4o",
		ClientSpec: objspec.Spec{
			ClassName: "clients.OpenAIClient",
			Args:      map[string]any{"base_url": "https://proxy.internal"},
		},
	})

	resolver := objspec.NewResolver()
	var got map[string]any
	resolver.Register("clients.OpenAIClient", func(args map[string]any) (any, error) {
		got = args
		return struct{}{}, nil
	})

	d, err := reg.Get("openai/gpt-4o")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	extras, err := clientExtraArgs(d)
	if err != nil {
		t.Fatalf("clientExtraArgs: %v", err)
	}
	if _, err := reg.Client("openai/gpt-4o", resolver, extras); err != nil {
		t.Fatalf("Client: %v", err)
	}
	if got["api_key"] != "sk-test" {
		t.Fatalf("credential not merged into constructor args: %v", got)
	}
	if got["base_url"] != "https://proxy.internal" {
		t.Fatalf("spec's own args lost: %v", got)
	}
}
