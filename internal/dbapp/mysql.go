package dbapp

import (
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/railwayapp/dbenv/internal/app"
	"github.com/railwayapp/dbenv/internal/environment"
	"github.com/railwayapp/dbenv/internal/environment/types"
)

// Environment keys read by the mysql image.
// Check: https://hub.docker.com/_/mysql
const (
	MySQLUserKey               = "MYSQL_USER"
	MySQLPasswordKey           = "MYSQL_PASSWORD"
	MySQLDatabaseKey           = "MYSQL_DATABASE"
	MySQLRootPasswordKey       = "MYSQL_ROOT_PASSWORD"
	MySQLAllowEmptyPasswordKey = "MYSQL_ALLOW_EMPTY_PASSWORD"
	MySQLRandomRootPasswordKey = "MYSQL_RANDOM_ROOT_PASSWORD"
	MySQLOnetimePasswordKey    = "MYSQL_ONETIME_PASSWORD"
	MySQLInitDBSkipTZInfoKey   = "MYSQL_INITDB_SKIP_TZINFO"
	MySQLPasswordFileKey       = "MYSQL_PASSWORD_FILE"
	MySQLRootPasswordFileKey   = "MYSQL_ROOT_PASSWORD_FILE"
	MySQLUserFileKey           = "MYSQL_USER_FILE"
	MySQLDatabaseFileKey       = "MYSQL_DATABASE_FILE"
)

const (
	EngineMySQL = "mysql"

	DefaultMySQLPort   = 3306
	DefaultMySQLDriver = "mysql"
)

// MySQL is a containerized MySQL database.
type MySQL struct {
	app.App

	DBUser     string
	DBPassword string
	DBSchema   string
	DBDriver   string

	RootPassword       string
	AllowEmptyPassword string
	RandomRootPassword string
	OnetimePassword    string
	InitDBSkipTZInfo   string
	PasswordFile       string
	RootPasswordFile   string
	UserFile           string
	DatabaseFile       string
}

// NewMySQL returns a MySQL with the image defaults.
func NewMySQL(name string) *MySQL {
	if name == "" {
		name = EngineMySQL
	}
	return &MySQL{
		App: app.App{
			Name:                name,
			ImageName:           "mysql",
			ImageTag:            "8.0",
			OpenContainerPort:   true,
			ContainerPort:       DefaultMySQLPort,
			HostPort:            DefaultMySQLPort,
			CreateVolume:        true,
			VolumeContainerPath: "/var/lib/mysql",
		},
		DBDriver: DefaultMySQLDriver,
	}
}

func (m *MySQL) Engine() string {
	return EngineMySQL
}

func (m *MySQL) Base() *app.App {
	return &m.App
}

func (m *MySQL) User() (string, bool) {
	return m.Credential(m.DBUser, MySQLUserKey)
}

func (m *MySQL) Password() (string, bool) {
	return m.Credential(m.DBPassword, MySQLPasswordKey)
}

func (m *MySQL) Schema() (string, bool) {
	return m.Credential(m.DBSchema, MySQLDatabaseKey)
}

func (m *MySQL) Driver() (string, bool) {
	return optional(m.DBDriver)
}

func (m *MySQL) Host() (string, bool) {
	return optional(m.GetContainerName())
}

func (m *MySQL) Port() (int, bool) {
	return optionalPort(m.ContainerPort)
}

func (m *MySQL) LocalHost() string {
	return "localhost"
}

func (m *MySQL) LocalPort() (int, bool) {
	return optionalPort(m.HostPort)
}

func (m *MySQL) EnvSource() environment.Source {
	src := m.App.EnvSource()
	src.Credentials = []environment.Credential{
		{Key: MySQLUserKey, Explicit: m.DBUser},
		{Key: MySQLPasswordKey, Explicit: m.DBPassword},
		{Key: MySQLDatabaseKey, Explicit: m.DBSchema},
		{Key: MySQLRootPasswordKey, Explicit: m.RootPassword},
	}
	src.Settings = []types.Setting{
		{Key: MySQLAllowEmptyPasswordKey, Value: m.AllowEmptyPassword},
		{Key: MySQLRandomRootPasswordKey, Value: m.RandomRootPassword},
		{Key: MySQLOnetimePasswordKey, Value: m.OnetimePassword},
		{Key: MySQLInitDBSkipTZInfoKey, Value: m.InitDBSkipTZInfo},
		{Key: MySQLPasswordFileKey, Value: m.PasswordFile},
		{Key: MySQLRootPasswordFileKey, Value: m.RootPasswordFile},
		{Key: MySQLUserFileKey, Value: m.UserFile},
		{Key: MySQLDatabaseFileKey, Value: m.DatabaseFile},
	}
	return src
}

func (m *MySQL) ContainerEnv() map[string]string {
	return environment.NewAssembler().Build(m.EnvSource())
}

// DSN returns a go-sql-driver/mysql data source name.
func (m *MySQL) DSN() (string, error) {
	// connectionURL reports the same missing parameters the DSN needs
	if _, err := connectionURL("mysql", m); err != nil {
		return "", err
	}

	user, _ := m.User()
	host, _ := m.Host()
	port, _ := m.Port()

	cfg := mysql.NewConfig()
	cfg.User = user
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	if password, ok := m.Password(); ok {
		cfg.Passwd = password
	}
	if schema, ok := m.Schema(); ok {
		cfg.DBName = schema
	}
	return cfg.FormatDSN(), nil
}
