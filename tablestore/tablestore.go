// Package tablestore persists named best-response tables in a SQLite
// database, one row per profile.
package tablestore

import (
	"context"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/timpalpant/bestresponse"
)

// ErrNotFound is returned when no table is stored under a name.
var ErrNotFound = errors.New("table not found")

const insertBatchSize = 2000

type tableRecord struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"uniqueIndex;not null"`
	NumOpponents  int    `gorm:"not null"`
	NumStrategies int    `gorm:"not null"`
	NumEntries    int    `gorm:"not null"`
	CreatedAt     time.Time
}

func (tableRecord) TableName() string {
	return "best_response_tables"
}

type entryRecord struct {
	TableID  uint   `gorm:"primaryKey;autoIncrement:false"`
	Rank     int    `gorm:"column:profile_rank;primaryKey;autoIncrement:false"`
	Profile  string `gorm:"not null"`
	Strategy int    `gorm:"not null"`
}

func (entryRecord) TableName() string {
	return "best_response_entries"
}

// Store is a handle on a table database.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path. An empty
// path opens a private in-memory database.
func Open(path string) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        insertBatchSize,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", dsn)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "accessing sql interface")
	}
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&tableRecord{}, &entryRecord{}); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "migrating schema")
	}

	glog.V(1).Infof("Opened table store %q", dsn)
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Save stores t under name, replacing any table previously saved there.
func (s *Store) Save(ctx context.Context, name string, t *bestresponse.Table) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteTable(tx, name); err != nil {
			return err
		}

		rec := tableRecord{
			Name:          name,
			NumOpponents:  t.NumOpponents(),
			NumStrategies: t.NumStrategies(),
			NumEntries:    t.Len(),
		}
		if err := tx.Create(&rec).Error; err != nil {
			return errors.Wrapf(err, "creating table %q", name)
		}

		entries := make([]entryRecord, 0, t.Len())
		rank := 0
		t.Iter(func(profile bestresponse.Profile, best int) {
			entries = append(entries, entryRecord{
				TableID:  rec.ID,
				Rank:     rank,
				Profile:  profile.String(),
				Strategy: best,
			})
			rank++
		})

		if err := tx.CreateInBatches(entries, insertBatchSize).Error; err != nil {
			return errors.Wrapf(err, "inserting %d entries of table %q", len(entries), name)
		}

		glog.V(1).Infof("Saved table %q (%d entries)", name, len(entries))
		return nil
	})
}

func deleteTable(tx *gorm.DB, name string) error {
	var existing tableRecord
	err := tx.Where("name = ?", name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	} else if err != nil {
		return errors.Wrapf(err, "finding table %q", name)
	}

	if err := tx.Where("table_id = ?", existing.ID).Delete(&entryRecord{}).Error; err != nil {
		return errors.Wrapf(err, "deleting entries of table %q", name)
	}

	return tx.Delete(&existing).Error
}

// Load reads the table stored under name.
func (s *Store) Load(ctx context.Context, name string) (*bestresponse.Table, error) {
	db := s.db.WithContext(ctx)
	rec, err := findTable(db, name)
	if err != nil {
		return nil, err
	}

	var entries []entryRecord
	if err := db.Where("table_id = ?", rec.ID).Order("profile_rank").Find(&entries).Error; err != nil {
		return nil, errors.Wrapf(err, "reading entries of table %q", name)
	}

	best := make([]int, len(entries))
	for i, e := range entries {
		if e.Rank != i {
			return nil, errors.Errorf("table %q is missing entry %d", name, i)
		}
		best[i] = e.Strategy
	}

	return bestresponse.NewTable(rec.NumOpponents, rec.NumStrategies, best)
}

// Lookup returns the stored best response to profile without loading the
// whole table.
func (s *Store) Lookup(ctx context.Context, name string, profile bestresponse.Profile) (int, error) {
	db := s.db.WithContext(ctx)
	rec, err := findTable(db, name)
	if err != nil {
		return 0, err
	}

	if len(profile) != rec.NumOpponents {
		return 0, errors.Errorf("profile %v has %d opponents, table %q has %d",
			profile, len(profile), name, rec.NumOpponents)
	}

	rank, err := bestresponse.ProfileRank(profile, rec.NumStrategies)
	if err != nil {
		return 0, err
	}

	var entry entryRecord
	if err := db.Where("table_id = ? AND profile_rank = ?", rec.ID, rank).First(&entry).Error; err != nil {
		return 0, errors.Wrapf(err, "reading entry %v of table %q", profile, name)
	}

	return entry.Strategy, nil
}

// List returns the names of all stored tables in alphabetical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&tableRecord{}).Order("name").Pluck("name", &names).Error
	return names, errors.Wrap(err, "listing tables")
}

func findTable(db *gorm.DB, name string) (*tableRecord, error) {
	var rec tableRecord
	err := db.Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	} else if err != nil {
		return nil, errors.Wrapf(err, "finding table %q", name)
	}

	return &rec, nil
}
