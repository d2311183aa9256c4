package sql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Close releases the connection pool.
func (r *GormRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	sqliteUniqueFailed   = "UNIQUE constraint failed"
	errNotInitialisedMsg = "repository not initialised"
)

// translateError 将各数据库驱动的唯一约束冲突统一为 gorm.ErrDuplicatedKey。
// gorm 的 TranslateError 已覆盖大部分情况，这里兜底处理未经翻译的驱动错误。
func translateError(err error) error {
	if err == nil || errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", gorm.ErrDuplicatedKey, pgErr.ConstraintName)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%w: %s", gorm.ErrDuplicatedKey, myErr.Message)
	}

	if strings.Contains(err.Error(), sqliteUniqueFailed) {
		return fmt.Errorf("%w: %v", gorm.ErrDuplicatedKey, err)
	}
	return err
}

func errNotInitialised() error {
	return errors.New(errNotInitialisedMsg)
}
