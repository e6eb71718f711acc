package model

// Chemical is a kind of substance, independent of any container.
type Chemical struct {
	ID               int64              `db:"id" json:"id"`
	Name             string             `db:"name" json:"name"`
	AlphabeticalName string             `db:"alphabetical_name" json:"alphabetical_name"`
	Formula          *string            `db:"formula" json:"formula"`
	StorageClassID   int64              `db:"storage_class_id" json:"storage_class_id"`
	StorageClass     *StorageClass      `db:"-" json:"storage_class"`
	Links            []ManufacturerLink `db:"-" json:"manufacturers"`
}

// SortName is the name used for alphabetical listings.
func (c *Chemical) SortName() string {
	if c.AlphabeticalName != "" {
		return c.AlphabeticalName
	}
	return c.Name
}

type StorageClass struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Manufacturer struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// ManufacturerLink joins a chemical to one of its suppliers and owns the
// bottles bought from that supplier.
type ManufacturerLink struct {
	ID             int64         `db:"id" json:"id"`
	ChemicalID     int64         `db:"chemical_id" json:"chemical_id"`
	ManufacturerID int64         `db:"manufacturer_id" json:"manufacturer_id"`
	Manufacturer   *Manufacturer `db:"-" json:"manufacturer"`
	ProductNumber  *string       `db:"product_number" json:"product_number"`
	Bottles        []Bottle      `db:"-" json:"bottles"`
}
