package checkin

import (
	"time"

	"github.com/frahmantamala/gym-management/internal/core/datamodel"
)

type CheckIn struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CheckInTime time.Time `json:"check_in_time"`
}

func FromDataModel(dm *datamodel.CheckIn) *CheckIn {
	return &CheckIn{
		ID:          dm.ID,
		UserID:      dm.UserID,
		CheckInTime: dm.CheckInTime,
	}
}

func FromDataModelSlice(dms []datamodel.CheckIn) []*CheckIn {
	checkIns := make([]*CheckIn, 0, len(dms))
	for i := range dms {
		checkIns = append(checkIns, FromDataModel(&dms[i]))
	}
	return checkIns
}
