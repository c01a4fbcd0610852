package config

import (
	"fmt"

	"github.com/railwayapp/dbenv/internal/app"
	"github.com/railwayapp/dbenv/internal/dbapp"
	"github.com/railwayapp/dbenv/internal/environment/types"
)

// Build creates the service described by def. envFile and secretsFile are
// the pre-loaded file entries and may be nil.
func Build(def *Definition, envFile, secretsFile types.Values) (dbapp.Service, error) {
	switch def.Engine {
	case "", dbapp.EnginePostgres:
		return buildPostgres(def, envFile, secretsFile), nil
	case dbapp.EngineMySQL:
		return buildMySQL(def, envFile, secretsFile), nil
	default:
		return nil, fmt.Errorf("%q: %w", def.Engine, ErrUnknownEngine)
	}
}

func buildPostgres(def *Definition, envFile, secretsFile types.Values) *dbapp.Postgres {
	pg := dbapp.NewPostgres(def.Name)
	applyApp(&pg.App, def, envFile, secretsFile)

	pg.DBUser = def.DBUser
	pg.DBPassword = def.DBPassword
	pg.DBSchema = def.DBSchema
	if def.DBDriver != "" {
		pg.DBDriver = def.DBDriver
	}

	s := def.Postgres
	if s.PGData != nil {
		pg.PGData = *s.PGData
	}
	pg.InitDBArgs = s.InitDBArgs
	pg.InitDBWalDir = s.InitDBWalDir
	pg.HostAuthMethod = s.HostAuthMethod
	pg.PasswordFile = s.PasswordFile
	pg.UserFile = s.UserFile
	pg.DBFile = s.DBFile
	pg.InitDBArgsFile = s.InitDBArgsFile
	return pg
}

func buildMySQL(def *Definition, envFile, secretsFile types.Values) *dbapp.MySQL {
	my := dbapp.NewMySQL(def.Name)
	applyApp(&my.App, def, envFile, secretsFile)

	my.DBUser = def.DBUser
	my.DBPassword = def.DBPassword
	my.DBSchema = def.DBSchema
	if def.DBDriver != "" {
		my.DBDriver = def.DBDriver
	}

	s := def.MySQL
	my.RootPassword = s.RootPassword
	my.AllowEmptyPassword = s.AllowEmptyPassword
	my.RandomRootPassword = s.RandomRootPassword
	my.OnetimePassword = s.OnetimePassword
	my.InitDBSkipTZInfo = s.InitDBSkipTZInfo
	my.PasswordFile = s.PasswordFile
	my.RootPasswordFile = s.RootPasswordFile
	my.UserFile = s.UserFile
	my.DatabaseFile = s.DatabaseFile
	return my
}

// applyApp overlays the definition on the variant defaults.
func applyApp(a *app.App, def *Definition, envFile, secretsFile types.Values) {
	if def.Image.Name != "" {
		a.ImageName = def.Image.Name
	}
	if def.Image.Tag != "" {
		a.ImageTag = def.Image.Tag
	}
	if def.ContainerPort > 0 {
		a.ContainerPort = def.ContainerPort
	}
	if def.HostPort > 0 {
		a.HostPort = def.HostPort
	}
	if def.VolumeContainerPath != "" {
		a.VolumeContainerPath = def.VolumeContainerPath
	}

	a.ContainerName = def.ContainerName
	a.OpenContainerPort = def.OpenContainerPort
	a.CreateVolume = def.CreateVolume
	a.VolumeName = def.VolumeName
	a.BaseEnv = def.ContainerEnv
	a.EnvVars = def.EnvVars
	a.EnvFileEntries = envFile
	a.SecretsFileEntries = secretsFile
	a.AWS = app.AWSProvider{Region: def.AWSRegion, Profile: def.AWSProfile}
}
