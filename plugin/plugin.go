package plugin

import (
	"context"

	"github.com/uselessgoddess/suns/model"
)

type Plugin interface {
	GetInstitution() string
	// Departments коды специальностей из пресета
	Departments() []string
	GetTimetable(ctx context.Context, department string, year int) (model.Timetable, error)
}
