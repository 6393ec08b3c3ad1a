package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/moveplanner/estimator/internal/config"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed sql
var embedded embed.FS

// MigrateStore runs the sql migrations of the configured database. The
// migrations are read from cfg.Service.MigrationFolder when set, otherwise from
// the ones shipped with the binary.
func MigrateStore(db *gorm.DB, cfg *config.Config) error {
	goose.SetLogger(&logger{})

	dialect := "postgres"
	if cfg.IsSqlite() {
		dialect = "sqlite3"
	}

	migrations, err := migrationFS(cfg.Service.MigrationFolder, dialect)
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return goose.Up(sqlDB, ".")
}

func migrationFS(folder, dialect string) (fs.FS, error) {
	if folder == "" {
		return fs.Sub(embedded, "sql/"+dialect)
	}

	fi, err := os.Stat(folder)
	if err != nil {
		return nil, err
	}

	if !fi.Mode().IsDir() {
		return nil, fmt.Errorf("failed to open migration folder: %s is not a folder", folder)
	}

	return os.DirFS(folder), nil
}

/*
logger implements goose.Logger interface

	type Logger interface {
		Fatalf(format string, v ...interface{})
		Printf(format string, v ...interface{})
	}
*/
type logger struct{}

func (m *logger) Printf(format string, v ...interface{}) { zap.S().Named("migrations").Infof(format, v...) }
func (m *logger) Fatalf(format string, v ...interface{}) { zap.S().Named("migrations").Fatalf(format, v...) }
