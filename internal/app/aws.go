package app

const (
	AWSRegionEnvVar        = "AWS_REGION"
	AWSDefaultRegionEnvVar = "AWS_DEFAULT_REGION"
	AWSProfileEnvVar       = "AWS_PROFILE"
)

// AWSProvider injects the AWS region and profile into a container
// environment. Unset fields add nothing.
type AWSProvider struct {
	Region  string
	Profile string
}

func (p AWSProvider) SetProviderEnvVars(env map[string]string) {
	if p.Region != "" {
		env[AWSRegionEnvVar] = p.Region
		env[AWSDefaultRegionEnvVar] = p.Region
	}
	if p.Profile != "" {
		env[AWSProfileEnvVar] = p.Profile
	}
}
