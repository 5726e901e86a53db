package dailywords

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver   string
	User     string
	Password string
	Addr     string
	Port     string
	DB       string
	Path     string // sqlite only
}

func NewDBConfig(user, password, addr, port, db string) *DBConfig {
	return &DBConfig{
		Driver:   DriverMySQL,
		User:     user,
		Password: password,
		Addr:     addr,
		Port:     port,
		DB:       db,
	}
}

func NewSQLiteDBConfig(path string) *DBConfig {
	return &DBConfig{
		Driver: DriverSQLite,
		Path:   path,
	}
}

func (c *DBConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL, "":
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Addr, c.Port)
		mc.DBName = c.DB
		return mc.FormatDSN(), nil
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     net.JoinHostPort(c.Addr, c.Port),
			Path:     "/" + c.DB,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	case DriverSQLite:
		return c.Path, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

func NewDBClient(dbConfig *DBConfig) (*sqlx.DB, error) {
	dsn, err := dbConfig.DSN()
	if err != nil {
		return nil, err
	}
	driver := dbConfig.Driver
	if driver == "" {
		driver = DriverMySQL
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	// sqlite: one connection, otherwise every pooled connection to
	// ":memory:" sees its own empty database
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

type StorageRdbImpl struct {
	DB *sqlx.DB
}

func NewStorageRdbImpl(db *sqlx.DB) *StorageRdbImpl {
	return &StorageRdbImpl{
		DB: db,
	}
}

const createWordsTable = `create table if not exists words (
	Word varchar(255) not null,
	Count integer not null,
	Date char(8) not null
)`

func (s *StorageRdbImpl) EnsureSchema() error {
	_, err := s.DB.Exec(createWordsTable)
	return err
}

// 1行ずつ挿入する。トランザクションは張らないので、途中で失敗した場合はそれまでの行が残る
func (s *StorageRdbImpl) AddWords(words RankedWordList, date time.Time) error {
	for _, w := range words {
		_, err := s.DB.NamedExec(`insert into words (Word, Count, Date) values (:word, :count, :date)`,
			NewWordRecord(w.Word, w.Count, date))
		if err != nil {
			return fmt.Errorf("insert word %q: %w", w.Word, err)
		}
	}
	return nil
}

func (s *StorageRdbImpl) GetWords(date time.Time) ([]WordRecord, error) {
	records := []WordRecord{}
	query := s.DB.Rebind(`select Word as word, Count as count, Date as date from words where Date = ? order by Count desc, Word`)
	if err := s.DB.Select(&records, query, DateString(date)); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *StorageRdbImpl) CountWords(date time.Time) (int, error) {
	var count int
	row := s.DB.QueryRow(s.DB.Rebind(`select count(*) from words where Date = ?`), DateString(date))
	if err := row.Scan(&count); err != nil {
		return -1, err
	}
	return count, nil
}
