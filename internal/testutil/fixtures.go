// Package testutil seeds an in-memory inventory database for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/jackaholy/Cheminv2.0/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// Ids of the lab seeded by SeedLab.
const (
	RoomScience101 int64 = 1
	RoomScience202 int64 = 2

	ShelfA   int64 = 1
	ShelfB   int64 = 2
	CabinetC int64 = 3

	Sigma  int64 = 1
	Fisher int64 = 2

	Water      int64 = 1
	HeavyWater int64 = 2
	Ethanol    int64 = 3
	Acetone    int64 = 4
	AceticAcid int64 = 5
	Propanol   int64 = 6
)

// NewSQLiteDB returns an empty in-memory database with the schema applied.
func NewSQLiteDB(t testing.TB) *sqlx.DB {
	t.Helper()
	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.ApplySchema(context.Background(), db))
	return db
}

// SeedLab fills db with two rooms, three shelves, two manufacturers and six
// chemicals. Bottles by sticker:
//
//	1001  Water        Sigma   Shelf A    (101)  live
//	12345 Ethanol      Sigma   Shelf A    (101)  live
//	1003  Ethanol      Fisher  Cabinet C  (202)  live
//	1004  Acetone      Fisher  Shelf B    (101)  live
//	1005  Acetic Acid  Sigma   Cabinet C  (202)  dead
//	1006  2-Propanol   Fisher  Cabinet C  (202)  live
//	1007  Ethanol      Fisher  Shelf B    (101)  dead
//
// Heavy Water has no bottles.
func SeedLab(t testing.TB, db *sqlx.DB) {
	t.Helper()
	stmts := []string{
		`INSERT INTO storage_class (id, name) VALUES (1, 'Flammable'), (2, 'General')`,
		`INSERT INTO location (id, building, room) VALUES (1, 'Science', '101'), (2, 'Science', '202')`,
		`INSERT INTO sub_location (id, name, location_id) VALUES (1, 'Shelf A', 1), (2, 'Shelf B', 1), (3, 'Cabinet C', 2)`,
		`INSERT INTO manufacturer (id, name) VALUES (1, 'Sigma'), (2, 'Fisher')`,
		`INSERT INTO chemical (id, name, alphabetical_name, formula, storage_class_id) VALUES
            (1, 'Water', 'Water', 'H2O', 2),
            (2, 'Heavy Water', 'Water, Heavy', 'D2O', 2),
            (3, 'Ethanol', 'Ethanol', 'C2H5OH', 1),
            (4, 'Acetone', 'Acetone', 'C3H6O', 1),
            (5, 'Acetic Acid', 'Acetic Acid', 'C2H4O2', 2),
            (6, '2-Propanol', 'Propanol, 2-', 'C3H8O', 1)`,
		`INSERT INTO chemical_manufacturer (id, chemical_id, manufacturer_id, product_number) VALUES
            (1, 1, 1, 'W-100'),
            (2, 3, 1, 'E-200'),
            (3, 3, 2, 'E-201'),
            (4, 4, 2, 'A-300'),
            (5, 5, 1, 'AA-1'),
            (6, 6, 2, 'IPA-1')`,
		`INSERT INTO inventory (id, sticker_number, chemical_manufacturer_id, sub_location_id, product_number, is_dead, who_updated, msds) VALUES
            (1, 1001, 1, 1, NULL, FALSE, 'anne', 'https://example.com/msds/water'),
            (2, 12345, 2, 1, 'E-200-1L', FALSE, NULL, NULL),
            (3, 1003, 3, 3, NULL, FALSE, NULL, ''),
            (4, 1004, 4, 2, NULL, FALSE, NULL, NULL),
            (5, 1005, 5, 3, NULL, TRUE, NULL, NULL),
            (6, 1006, 6, 3, NULL, FALSE, NULL, NULL),
            (7, 1007, 3, 2, NULL, TRUE, NULL, NULL)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
}
