package shared

import (
	"errors"
	"testing"
)

func TestMigrationRunner(t *testing.T) {
	t.Run("loadMigrations", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("failed to load migrations: %v", err)
		}

		if len(migrations) != 2 {
			t.Fatalf("expected 2 migrations, got %d", len(migrations))
		}

		for i := 1; i < len(migrations); i++ {
			if migrations[i].Version <= migrations[i-1].Version {
				t.Errorf("migrations not sorted: version %d comes after %d", migrations[i].Version, migrations[i-1].Version)
			}
		}

		if migrations[0].Name != "create_tables" {
			t.Errorf("expected first migration name create_tables, got %q", migrations[0].Name)
		}

		for _, m := range migrations {
			if m.Up == "" {
				t.Errorf("migration version %d missing up SQL", m.Version)
			}
			if m.Down == "" {
				t.Errorf("migration version %d missing down SQL", m.Version)
			}
		}
	})

	t.Run("RunMigrations And Rollback", func(t *testing.T) {
		db, err := NewDatabase(MemoryPath)
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		for _, table := range []string{"authors", "magazines", "articles"} {
			if _, err := db.Exec("SELECT 1 FROM " + table + " LIMIT 1"); err != nil {
				t.Errorf("%s table should exist after migrations: %v", table, err)
			}
		}

		rolled, err := RollbackMigration(db)
		if err != nil {
			t.Fatalf("failed to rollback migration: %v", err)
		}
		if rolled.Version != 2 {
			t.Errorf("expected to roll back version 2, got %d", rolled.Version)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("failed to query schema_migrations after rollback: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 applied migration after rollback, got %d", count)
		}

		if _, err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback second migration: %v", err)
		}

		if _, err := db.Exec("SELECT 1 FROM authors LIMIT 1"); err == nil {
			t.Error("authors table should be gone after rolling back every migration")
		}

		if _, err := RollbackMigration(db); !errors.Is(err, ErrIllegalOperation) {
			t.Errorf("expected ErrIllegalOperation with nothing to roll back, got %v", err)
		}
	})

	t.Run("Idempotent Migrations", func(t *testing.T) {
		db, err := NewDatabase(MemoryPath)
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		first, err := ApplyMigrations(db)
		if err != nil {
			t.Fatalf("failed to run migrations first time: %v", err)
		}

		second, err := ApplyMigrations(db)
		if err != nil {
			t.Fatalf("failed to run migrations second time: %v", err)
		}

		migrations, _ := loadMigrations()
		if first != len(migrations) {
			t.Errorf("expected %d migrations on first run, got %d", len(migrations), first)
		}
		if second != 0 {
			t.Errorf("expected no migrations on second run, got %d", second)
		}
	})

	t.Run("MigrationStatus", func(t *testing.T) {
		db, err := NewDatabase(MemoryPath)
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		states, err := MigrationStatus(db)
		if err != nil {
			t.Fatalf("failed to get status: %v", err)
		}
		for _, s := range states {
			if s.Applied() {
				t.Errorf("migration %d should be pending", s.Version)
			}
		}

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		states, err = MigrationStatus(db)
		if err != nil {
			t.Fatalf("failed to get status: %v", err)
		}
		for _, s := range states {
			if !s.Applied() {
				t.Errorf("migration %d should be applied", s.Version)
			}
		}
	})
}
