package schema

import (
	"github.com/railwayapp/dbenv/internal/dbapp"
	"github.com/railwayapp/dbenv/internal/environment/types"
)

// Project is a set of resolved database containers
type Project struct {
	Name     string    `json:"name"`
	Services []Service `json:"services"`
}

// Service is a database container with its resolved environment
type Service struct {
	Name          string            `json:"name"`
	Engine        string            `json:"engine"`
	Image         string            `json:"image"`
	ContainerName string            `json:"containerName"`
	Environment   map[string]EnvVar `json:"environment,omitempty"`
	Ports         []Port            `json:"ports,omitempty"`
	Volumes       []Volume          `json:"volumes,omitempty"`
	Connection    Connection        `json:"connection"`
}

// EnvVar represents an environment variable with metadata
type EnvVar struct {
	Value     string `json:"value"`
	Type      string `json:"type"`
	Sensitive bool   `json:"sensitive"`
}

// Port maps a container port to a host port
type Port struct {
	Container int  `json:"container"`
	Host      int  `json:"host,omitempty"`
	IsPublic  bool `json:"isPublic"`
}

// Volume is a named volume mounted into the container
type Volume struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// Connection holds the DbApp parameters as other services see them
type Connection struct {
	Driver string `json:"driver,omitempty"`
	User   string `json:"user,omitempty"`
	Schema string `json:"schema,omitempty"`
	Host   string `json:"host,omitempty"`
	Port   int    `json:"port,omitempty"`
}

func NewProject(name string) *Project {
	return &Project{
		Name:     name,
		Services: make([]Service, 0),
	}
}

func (p *Project) AddService(service Service) {
	p.Services = append(p.Services, service)
}

// NewService describes svc with the given assembled environment. Sensitive
// values are masked when redact is set.
func NewService(svc dbapp.Service, env map[string]string, redact bool) Service {
	base := svc.Base()
	service := Service{
		Name:          base.Name,
		Engine:        svc.Engine(),
		Image:         base.Image(),
		ContainerName: base.GetContainerName(),
		Environment:   make(map[string]EnvVar, len(env)),
		Ports:         make([]Port, 0),
		Volumes:       make([]Volume, 0),
	}

	for _, result := range types.Annotate(env) {
		value := result.Value
		if redact {
			value = types.Mask(value, result.Sensitive)
		}
		service.Environment[result.VarName] = EnvVar{
			Value:     value,
			Type:      result.Type.String(),
			Sensitive: result.Sensitive,
		}
	}

	if base.ContainerPort > 0 {
		port := Port{Container: base.ContainerPort, IsPublic: base.OpenContainerPort}
		if base.OpenContainerPort {
			port.Host = base.HostPort
		}
		service.Ports = append(service.Ports, port)
	}

	if base.CreateVolume && base.VolumeContainerPath != "" {
		service.Volumes = append(service.Volumes, Volume{
			Name:   base.GetVolumeName(),
			Target: base.VolumeContainerPath,
		})
	}

	service.Connection.Driver, _ = svc.Driver()
	service.Connection.User, _ = svc.User()
	service.Connection.Schema, _ = svc.Schema()
	service.Connection.Host, _ = svc.Host()
	service.Connection.Port, _ = svc.Port()

	return service
}
