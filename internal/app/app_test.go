package app

import "testing"

func TestApp_Names(t *testing.T) {
	a := &App{Name: "pg", ImageName: "postgres", ImageTag: "15.3"}

	if got := a.GetContainerName(); got != "pg" {
		t.Errorf("expected container name to default to app name, got %q", got)
	}
	if got := a.GetVolumeName(); got != "pg-volume" {
		t.Errorf("expected pg-volume, got %q", got)
	}
	if got := a.Image(); got != "postgres:15.3" {
		t.Errorf("expected postgres:15.3, got %q", got)
	}

	a.ContainerName = "pg-container"
	a.VolumeName = "pgdata"
	a.ImageTag = ""
	if got := a.GetContainerName(); got != "pg-container" {
		t.Errorf("expected pg-container, got %q", got)
	}
	if got := a.GetVolumeName(); got != "pgdata" {
		t.Errorf("expected pgdata, got %q", got)
	}
	if got := a.Image(); got != "postgres" {
		t.Errorf("expected postgres, got %q", got)
	}
}

func TestAWSProvider_SetProviderEnvVars(t *testing.T) {
	env := map[string]string{}
	AWSProvider{}.SetProviderEnvVars(env)
	if len(env) != 0 {
		t.Fatalf("expected no keys from an empty provider, got %v", env)
	}

	AWSProvider{Region: "us-east-1", Profile: "dev"}.SetProviderEnvVars(env)
	expected := map[string]string{
		AWSRegionEnvVar:        "us-east-1",
		AWSDefaultRegionEnvVar: "us-east-1",
		AWSProfileEnvVar:       "dev",
	}
	for key, want := range expected {
		if env[key] != want {
			t.Errorf("expected %s=%q, got %q", key, want, env[key])
		}
	}
}

func TestApp_Credential(t *testing.T) {
	a := &App{}
	if _, ok := a.Credential("", "POSTGRES_PASSWORD"); ok {
		t.Error("expected no credential without a secrets file")
	}

	a.SecretsFileEntries = map[string]any{"POSTGRES_PASSWORD": "s3cr3t"}
	if got, ok := a.Credential("", "POSTGRES_PASSWORD"); !ok || got != "s3cr3t" {
		t.Errorf("expected s3cr3t, got %q", got)
	}
	if got, ok := a.Credential("typed", "POSTGRES_PASSWORD"); !ok || got != "typed" {
		t.Errorf("expected explicit value to win, got %q", got)
	}
}
