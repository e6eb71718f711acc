package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackaholy/Cheminv2.0/internal/model"
	"github.com/jackaholy/Cheminv2.0/internal/search"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const graphQuery = `
    SELECT
        c.id AS chemical_id, c.name AS chemical_name, c.alphabetical_name,
        c.formula, c.storage_class_id, sc.name AS storage_class_name,
        cm.id AS link_id, cm.manufacturer_id, m.name AS manufacturer_name,
        cm.product_number AS link_product_number,
        i.id AS bottle_id, i.sticker_number, i.product_number AS bottle_product_number,
        i.is_dead, i.last_updated, i.who_updated, i.msds,
        s.id AS shelf_id, s.name AS shelf_name,
        l.id AS location_id, l.building, l.room
    FROM chemical c
    LEFT JOIN storage_class sc ON sc.id = c.storage_class_id
    LEFT JOIN chemical_manufacturer cm ON cm.chemical_id = c.id
    LEFT JOIN manufacturer m ON m.id = cm.manufacturer_id
    LEFT JOIN inventory i ON i.chemical_manufacturer_id = cm.id
    LEFT JOIN sub_location s ON s.id = i.sub_location_id
    LEFT JOIN location l ON l.id = s.location_id`

const graphOrder = ` ORDER BY c.id, cm.id, i.id`

// graphRow is one row of the chemical graph join. Everything right of the
// chemical is nullable because of the outer joins.
type graphRow struct {
	ChemicalID          int64          `db:"chemical_id"`
	ChemicalName        string         `db:"chemical_name"`
	AlphabeticalName    string         `db:"alphabetical_name"`
	Formula             sql.NullString `db:"formula"`
	StorageClassID      int64          `db:"storage_class_id"`
	StorageClassName    sql.NullString `db:"storage_class_name"`
	LinkID              sql.NullInt64  `db:"link_id"`
	ManufacturerID      sql.NullInt64  `db:"manufacturer_id"`
	ManufacturerName    sql.NullString `db:"manufacturer_name"`
	LinkProductNumber   sql.NullString `db:"link_product_number"`
	BottleID            sql.NullInt64  `db:"bottle_id"`
	StickerNumber       sql.NullInt64  `db:"sticker_number"`
	BottleProductNumber sql.NullString `db:"bottle_product_number"`
	IsDead              sql.NullBool   `db:"is_dead"`
	LastUpdated         sql.NullTime   `db:"last_updated"`
	WhoUpdated          sql.NullString `db:"who_updated"`
	MSDS                sql.NullString `db:"msds"`
	ShelfID             sql.NullInt64  `db:"shelf_id"`
	ShelfName           sql.NullString `db:"shelf_name"`
	LocationID          sql.NullInt64  `db:"location_id"`
	Building            sql.NullString `db:"building"`
	Room                sql.NullString `db:"room"`
}

// FetchChemicals runs the predicate and the graph traversal as one query.
func (r *PGRepository) FetchChemicals(ctx context.Context, p search.Predicate) ([]model.Chemical, error) {
	if p.Empty {
		return []model.Chemical{}, nil
	}

	where, args := whereClause(p, foldFor(r.DB.DriverName()))
	query, args, err := sqlx.In(graphQuery+where+graphOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("expand chemical query: %w", err)
	}
	query = r.DB.Rebind(query)

	var rows []graphRow
	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select chemical graph: %w", err)
	}
	return assembleGraphs(rows), nil
}

// assembleGraphs folds join rows, already ordered by chemical, link and
// bottle id, into fully populated chemicals.
func assembleGraphs(rows []graphRow) []model.Chemical {
	chemicals := []model.Chemical{}
	chemIdx := map[int64]int{}
	linkIdx := map[int64]int{}

	for _, row := range rows {
		ci, ok := chemIdx[row.ChemicalID]
		if !ok {
			chem := model.Chemical{
				ID:               row.ChemicalID,
				Name:             row.ChemicalName,
				AlphabeticalName: row.AlphabeticalName,
				Formula:          nullString(row.Formula),
				StorageClassID:   row.StorageClassID,
				Links:            []model.ManufacturerLink{},
			}
			if row.StorageClassName.Valid {
				chem.StorageClass = &model.StorageClass{ID: row.StorageClassID, Name: row.StorageClassName.String}
			}
			chemicals = append(chemicals, chem)
			ci = len(chemicals) - 1
			chemIdx[row.ChemicalID] = ci
		}
		chem := &chemicals[ci]

		if !row.LinkID.Valid {
			continue
		}
		li, ok := linkIdx[row.LinkID.Int64]
		if !ok {
			link := model.ManufacturerLink{
				ID:             row.LinkID.Int64,
				ChemicalID:     row.ChemicalID,
				ManufacturerID: row.ManufacturerID.Int64,
				ProductNumber:  nullString(row.LinkProductNumber),
				Bottles:        []model.Bottle{},
			}
			if row.ManufacturerName.Valid {
				link.Manufacturer = &model.Manufacturer{ID: row.ManufacturerID.Int64, Name: row.ManufacturerName.String}
			}
			chem.Links = append(chem.Links, link)
			li = len(chem.Links) - 1
			linkIdx[row.LinkID.Int64] = li
		}
		link := &chem.Links[li]

		if !row.BottleID.Valid {
			continue
		}
		bottle := model.Bottle{
			ID:                 row.BottleID.Int64,
			StickerNumber:      row.StickerNumber.Int64,
			ManufacturerLinkID: link.ID,
			ShelfID:            row.ShelfID.Int64,
			ProductNumber:      nullString(row.BottleProductNumber),
			IsDead:             row.IsDead.Bool,
			WhoUpdated:         nullString(row.WhoUpdated),
			MSDS:               nullString(row.MSDS),
		}
		if row.LastUpdated.Valid {
			t := row.LastUpdated.Time
			bottle.LastUpdated = &t
		}
		if row.ShelfID.Valid {
			bottle.Shelf = &model.Shelf{
				ID:         row.ShelfID.Int64,
				Name:       row.ShelfName.String,
				LocationID: row.LocationID.Int64,
			}
			if row.LocationID.Valid {
				bottle.Shelf.Location = &model.Location{
					ID:       row.LocationID.Int64,
					Building: row.Building.String,
					Room:     row.Room.String,
				}
			}
		}
		link.Bottles = append(link.Bottles, bottle)
	}
	return chemicals
}

func (r *PGRepository) MissingIDs(ctx context.Context, kind search.EntityKind, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	var table string
	switch kind {
	case search.KindLocation:
		table = "location"
	case search.KindShelf:
		table = "sub_location"
	case search.KindManufacturer:
		table = "manufacturer"
	default:
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}

	query, args, err := sqlx.In(`SELECT id FROM `+table+` WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	var found []int64
	if err := r.DB.SelectContext(ctx, &found, query, args...); err != nil {
		return nil, fmt.Errorf("select %s ids: %w", table, err)
	}

	present := make(map[int64]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	missing := []int64{}
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
