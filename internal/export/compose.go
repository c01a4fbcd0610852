package export

import (
	"strconv"

	composeTypes "github.com/compose-spec/compose-go/v2/types"
	"github.com/railwayapp/dbenv/internal/schema"
)

// ComposeExporter writes a docker compose file with one service per
// database container.
type ComposeExporter struct{}

func (e *ComposeExporter) Name() string {
	return "compose"
}

func (e *ComposeExporter) Export(project *schema.Project) ([]byte, error) {
	composeProject := &composeTypes.Project{
		Name:     project.Name,
		Services: composeTypes.Services{},
	}

	for _, service := range project.Services {
		composeService := composeTypes.ServiceConfig{
			Name:          service.Name,
			Image:         service.Image,
			ContainerName: service.ContainerName,
			Environment:   composeTypes.MappingWithEquals{},
		}

		for key, envVar := range service.Environment {
			value := envVar.Value
			composeService.Environment[key] = &value
		}

		for _, port := range service.Ports {
			if !port.IsPublic {
				continue
			}
			composeService.Ports = append(composeService.Ports, composeTypes.ServicePortConfig{
				Target:    uint32(port.Container),
				Published: strconv.Itoa(port.Host),
				Protocol:  "tcp",
				Mode:      "ingress",
			})
		}

		for _, volume := range service.Volumes {
			composeService.Volumes = append(composeService.Volumes, composeTypes.ServiceVolumeConfig{
				Type:   composeTypes.VolumeTypeVolume,
				Source: volume.Name,
				Target: volume.Target,
			})
			if composeProject.Volumes == nil {
				composeProject.Volumes = composeTypes.Volumes{}
			}
			composeProject.Volumes[volume.Name] = composeTypes.VolumeConfig{Name: volume.Name}
		}

		composeProject.Services[service.Name] = composeService
	}

	return composeProject.MarshalYAML()
}

func NewComposeExporter() Exporter {
	return &ComposeExporter{}
}
