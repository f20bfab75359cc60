package dao

import (
	"database/sql"

	"github.com/daodao97/xgo/xdb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// messages 列保存 JSON 编码的 {role, content} 数组
const schema = `CREATE TABLE IF NOT EXISTS conversations (
	id INTEGER PRIMARY KEY,
	name TEXT,
	messages TEXT
)`

// Bootstrap 首次启动时建表，幂等，需在 xdb.Inits 之前执行
func Bootstrap(configs []xdb.Config) error {
	for _, c := range configs {
		db, err := sql.Open(c.Driver, c.DSN)
		if err != nil {
			return err
		}
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return err
		}
		if err := db.Close(); err != nil {
			return err
		}
	}
	return nil
}
