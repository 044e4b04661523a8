package db

import (
	"fmt"
	"os"
	"path/filepath"

	"marketplace/config"
	"marketplace/logging"
	"marketplace/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre a conexão com o banco configurado (sqlite3 por padrão)
// e roda o automigrate quando habilitado.
func Connect() (*gorm.DB, error) {
	db, err := Open(conf)
	if err != nil {
		return nil, err
	}

	if conf.ShouldMigrate() {
		if err := Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// Open só conecta, sem migrar.
func Open(c config.Configuration) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	log := logging.Logger()

	switch c.Database {
	case config.DATABASE_POSTGRES:
		log.Info("Utilizando conexão com o postgresql...")
		db, err = gorm.Open("postgres", PostgresDSN(c))
	default:
		log.Info("Utilizando conexão com o sqlite3...")
		if dir := filepath.Dir(c.DbPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		db, err = gorm.Open("sqlite3", SqliteDSN(c.DbPath))
		if err == nil {
			// um writer por vez no arquivo
			db.DB().SetMaxOpenConns(1)
		}
	}

	if err != nil {
		log.WithError(err).Error("erro ao conectar no banco")
		return nil, err
	}

	Configure(db, c)
	return db, nil
}

// Configure liga o log de SQL (via logrus) quando o nível é debug.
func Configure(db *gorm.DB, c config.Configuration) {
	db.SetLogger(logging.Logger())
	db.LogMode(c.LogLevel == "debug")
}

func PostgresDSN(c config.Configuration) string {
	dsn := "host=" + c.DbHost + " port=" + c.DbPort
	dsn += " user=" + c.DbUser + " dbname=" + c.DbName
	dsn += " password=" + c.DbPass
	return dsn + " sslmode=disable"
}

// SqliteDSN liga as foreign keys, que o sqlite deixa desligadas por padrão.
func SqliteDSN(path string) string {
	return path + "?_foreign_keys=on"
}

// Migrate cria/atualiza as tabelas na ordem pais -> filhos.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...).Error; err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	logging.Logger().Info("automigrate concluído")
	return nil
}
