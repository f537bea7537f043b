package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/eternal-wealth/toolkit/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
}

// NewDb returns the shared in-memory sqlite database with the sessions table migrated.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file:integration?mode=memory&cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(&model.SessionModel{}); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn}
}

// ClearDB removes every stored session.
func (d *Db) ClearDB() error {
	return d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.SessionModel{}).Error
}

// CountSessions returns the number of stored session rows.
func (d *Db) CountSessions() (int64, error) {
	var count int64
	err := d.DbConn.Model(&model.SessionModel{}).Count(&count).Error
	return count, err
}
