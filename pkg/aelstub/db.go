package aelstub

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// OpenDB opens the stub's database. dsn is a file path for sqlite and a go-sql-driver
// DSN for mysql.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch driver {
	case DriverSQLite, "":
		return gorm.Open(sqlite.Open(dsn), gormConfig)
	case DriverMySQL:
		return gorm.Open(mysql.Open(dsn), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

const maxDBRetries = 5

// MustConnectToDB will attempt to connect to the database maxDBRetries times. If it isn't successful
// after that number of retries then it will call log.Fatalf(), which will cause the server to exit.
// Between retry attempts it will sleep for 3 seconds.
func MustConnectToDB(driver, dsn string) *gorm.DB {
	retryCount := 1
	for {
		db, err := OpenDB(driver, dsn)
		switch {
		case err == nil:
			return db
		case retryCount >= maxDBRetries:
			log.Fatalf("Failed to open %s db: %s", driver, err)
		default:
			retryCount++
			time.Sleep(3 * time.Second)
		}
	}
}
