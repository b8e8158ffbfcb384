package equipment

import (
	"time"

	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type Equipment struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Category      string        `json:"category"`
	Condition     string        `json:"condition"`
	PurchaseDate  time.Time     `json:"purchase_date"`
	PurchasePrice *float64      `json:"purchase_price,omitempty"`
	Maintenance   []Maintenance `json:"maintenance,omitempty"`
}

type Maintenance struct {
	ID          int64     `json:"id"`
	EquipmentID int64     `json:"equipment_id"`
	Date        time.Time `json:"date"`
	Cost        float64   `json:"cost"`
	Description *string   `json:"description,omitempty"`
}

func FromDataModel(dm *datamodel.Equipment) *Equipment {
	e := &Equipment{
		ID:            dm.ID,
		Name:          dm.Name,
		Category:      dm.Category,
		Condition:     dm.Condition,
		PurchaseDate:  dm.PurchaseDate,
		PurchasePrice: dm.PurchasePrice,
	}
	for i := range dm.Maintenance {
		e.Maintenance = append(e.Maintenance, *maintenanceFromDataModel(&dm.Maintenance[i]))
	}
	return e
}

func FromDataModelSlice(dms []datamodel.Equipment) []*Equipment {
	items := make([]*Equipment, 0, len(dms))
	for i := range dms {
		items = append(items, FromDataModel(&dms[i]))
	}
	return items
}

func maintenanceFromDataModel(dm *datamodel.Maintenance) *Maintenance {
	return &Maintenance{
		ID:          dm.ID,
		EquipmentID: dm.EquipmentID,
		Date:        dm.Date,
		Cost:        dm.Cost,
		Description: dm.Description,
	}
}

func MaintenanceFromDataModelSlice(dms []datamodel.Maintenance) []*Maintenance {
	records := make([]*Maintenance, 0, len(dms))
	for i := range dms {
		records = append(records, maintenanceFromDataModel(&dms[i]))
	}
	return records
}
