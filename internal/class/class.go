package class

import (
	"time"

	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type Class struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	StartTime   time.Time       `json:"start_time"`
	DurationMin int             `json:"duration_min"`
	TrainerID   *int64          `json:"trainer_id,omitempty"`
	Trainer     *TrainerSummary `json:"trainer,omitempty"`
}

type TrainerSummary struct {
	ID             int64  `json:"id"`
	Specialization string `json:"specialization"`
}

func FromDataModel(dm *datamodel.Class) *Class {
	c := &Class{
		ID:          dm.ID,
		Name:        dm.Name,
		StartTime:   dm.StartTime,
		DurationMin: dm.DurationMin,
		TrainerID:   dm.TrainerID,
	}
	if dm.Trainer != nil {
		c.Trainer = &TrainerSummary{
			ID:             dm.Trainer.ID,
			Specialization: dm.Trainer.Specialization,
		}
	}
	return c
}

func FromDataModelSlice(dms []datamodel.Class) []*Class {
	classes := make([]*Class, 0, len(dms))
	for i := range dms {
		classes = append(classes, FromDataModel(&dms[i]))
	}
	return classes
}
