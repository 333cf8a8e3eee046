// Package fixture provides ready-made lifecycle hooks for suites.
package fixture

import (
	"database/sql"
	"fmt"
	"os"
	"regexp"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/minunit/minunit/pkg/unit"
)

var databaseNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)

// MySQLDatabase is a scratch database created before a suite's tests and
// dropped after them. Its BeforeClass and AfterClass methods are unit.Hook values.
type MySQLDatabase struct {
	Name string // Database name, e.g. testing_users

	cfg *mysql.Config
	db  *sql.DB
}

// NewMySQLDatabase creates a fixture for the database prefix_suffix. The server
// connection comes from DB_HOST, DB_PORT, DB_USERNAME and DB_PASSWORD, after
// loading envFile if it exists. An empty prefix falls back to DB_DATABASE_PREFIX, then "testing".
func NewMySQLDatabase(envFile, prefix, suffix string) (*MySQLDatabase, error) {
	if envFile != "" {
		// .env file might not exist, that's okay - use environment variables
		_ = godotenv.Load(envFile)
	}

	if prefix == "" {
		prefix = getenv("DB_DATABASE_PREFIX", "testing")
	}
	name := fmt.Sprintf("%s_%s", prefix, suffix)
	if !databaseNamePattern.MatchString(name) {
		return nil, fmt.Errorf("invalid database name: %s", name)
	}

	return &MySQLDatabase{Name: name, cfg: ServerConfig()}, nil
}

// ServerConfig builds a server-level connection config (no database selected) from the environment
func ServerConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%s", getenv("DB_HOST", "127.0.0.1"), getenv("DB_PORT", "3306"))
	cfg.User = getenv("DB_USERNAME", "root")
	cfg.Passwd = os.Getenv("DB_PASSWORD")
	return cfg
}

// DSN returns the data source name of the scratch database
func (m *MySQLDatabase) DSN() string {
	cfg := m.cfg.Clone()
	cfg.DBName = m.Name
	return cfg.FormatDSN()
}

// DB returns the connection to the scratch database; nil outside BeforeClass/AfterClass
func (m *MySQLDatabase) DB() *sql.DB {
	return m.db
}

// BeforeClass creates the database and opens a connection to it
func (m *MySQLDatabase) BeforeClass() error {
	server, err := sql.Open("mysql", m.cfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer server.Close()

	if err := server.Ping(); err != nil {
		return fmt.Errorf("failed to ping database server: %w", err)
	}
	if _, err := server.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", m.Name)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", m.Name, err)
	}

	db, err := sql.Open("mysql", m.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", m.Name, err)
	}
	m.db = db
	return nil
}

// AfterClass closes the connection and drops the database
func (m *MySQLDatabase) AfterClass() error {
	if m.db != nil {
		if _, err := m.db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", m.Name)); err != nil {
			return fmt.Errorf("failed to drop database %s: %w", m.Name, err)
		}
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close database %s: %w", m.Name, err)
		}
		m.db = nil
	}
	return nil
}

// Hooks returns suite hooks wired to the database lifecycle
func (m *MySQLDatabase) Hooks() unit.Hooks {
	return unit.Hooks{
		BeforeClass: m.BeforeClass,
		AfterClass:  m.AfterClass,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
