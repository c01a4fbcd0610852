package config

// Definition is the on-disk description of a database service. Keys are
// snake_case in YAML, TOML and JSON definition files.
type Definition struct {
	Engine string `mapstructure:"engine"`
	Name   string `mapstructure:"name"`

	Image Image `mapstructure:"image"`

	ContainerName     string `mapstructure:"container_name"`
	OpenContainerPort bool   `mapstructure:"open_container_port"`
	ContainerPort     int    `mapstructure:"container_port"`
	HostPort          int    `mapstructure:"host_port"`

	CreateVolume        bool   `mapstructure:"create_volume"`
	VolumeName          string `mapstructure:"volume_name"`
	VolumeContainerPath string `mapstructure:"volume_container_path"`

	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBSchema   string `mapstructure:"db_schema"`
	DBDriver   string `mapstructure:"db_driver"`

	Postgres PostgresSettings `mapstructure:"postgres"`
	MySQL    MySQLSettings    `mapstructure:"mysql"`

	// Paths are relative to the definition file.
	EnvFile     string `mapstructure:"env_file"`
	SecretsFile string `mapstructure:"secrets_file"`

	AWSRegion  string `mapstructure:"aws_region"`
	AWSProfile string `mapstructure:"aws_profile"`

	// Read case-sensitively from the raw file, see Loader.Load.
	ContainerEnv map[string]string `mapstructure:"-"`
	EnvVars      map[string]any    `mapstructure:"-"`
}

type Image struct {
	Name string `mapstructure:"name"`
	Tag  string `mapstructure:"tag"`
}

// PostgresSettings are the postgres image settings. A nil PGData keeps the
// default data directory; an empty string removes it.
type PostgresSettings struct {
	PGData         *string `mapstructure:"pgdata"`
	InitDBArgs     string  `mapstructure:"initdb_args"`
	InitDBWalDir   string  `mapstructure:"initdb_waldir"`
	HostAuthMethod string  `mapstructure:"host_auth_method"`
	PasswordFile   string  `mapstructure:"password_file"`
	UserFile       string  `mapstructure:"user_file"`
	DBFile         string  `mapstructure:"db_file"`
	InitDBArgsFile string  `mapstructure:"initdb_args_file"`
}

type MySQLSettings struct {
	RootPassword       string `mapstructure:"root_password"`
	AllowEmptyPassword string `mapstructure:"allow_empty_password"`
	RandomRootPassword string `mapstructure:"random_root_password"`
	OnetimePassword    string `mapstructure:"onetime_password"`
	InitDBSkipTZInfo   string `mapstructure:"initdb_skip_tzinfo"`
	PasswordFile       string `mapstructure:"password_file"`
	RootPasswordFile   string `mapstructure:"root_password_file"`
	UserFile           string `mapstructure:"user_file"`
	DatabaseFile       string `mapstructure:"database_file"`
}
