// Package app describes the parts of a containerized application that every
// database variant shares: naming, image, ports, volume, and the layered
// environment inputs.
package app

import (
	"fmt"

	"github.com/railwayapp/dbenv/internal/environment"
	"github.com/railwayapp/dbenv/internal/environment/types"
)

// App is the generic container description. It is built once per
// deployment request and only read afterwards.
type App struct {
	Name string

	ImageName string
	ImageTag  string

	// ContainerName defaults to Name when empty.
	ContainerName string

	// OpenContainerPort publishes ContainerPort on HostPort.
	OpenContainerPort bool
	ContainerPort     int
	HostPort          int

	CreateVolume bool
	// VolumeName defaults to "<name>-volume" when empty.
	VolumeName          string
	VolumeContainerPath string

	// BaseEnv is the pass-through container_env mapping.
	BaseEnv map[string]string
	// EnvFileEntries and SecretsFileEntries are loaded upstream from the
	// env file and secrets file; either may be nil.
	EnvFileEntries     types.Values
	SecretsFileEntries types.Values
	// EnvVars are the user's explicit overrides.
	EnvVars types.Values

	AWS AWSProvider
}

// GetContainerName returns the addressable name of the container.
func (a *App) GetContainerName() string {
	if a.ContainerName != "" {
		return a.ContainerName
	}
	return a.Name
}

// GetVolumeName returns the name of the data volume.
func (a *App) GetVolumeName() string {
	if a.VolumeName != "" {
		return a.VolumeName
	}
	return fmt.Sprintf("%s-volume", a.Name)
}

// Image returns the image reference, name:tag.
func (a *App) Image() string {
	if a.ImageTag == "" {
		return a.ImageName
	}
	return fmt.Sprintf("%s:%s", a.ImageName, a.ImageTag)
}

// Credential resolves a database credential: the explicitly configured
// value, else the secrets file entry stored under key.
func (a *App) Credential(explicit, key string) (string, bool) {
	return environment.ResolveCredential(explicit, a.SecretsFileEntries, key)
}

// EnvSource returns the layers shared by every variant. Variants add their
// credentials and settings before handing the source to an Assembler.
func (a *App) EnvSource() environment.Source {
	return environment.Source{
		Base:        a.BaseEnv,
		Provider:    a.AWS,
		EnvFile:     a.EnvFileEntries,
		SecretsFile: a.SecretsFileEntries,
		Explicit:    a.EnvVars,
	}
}
