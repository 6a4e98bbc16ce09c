package converter

import "github.com/uselessgoddess/suns/model"

type IConverter interface {
	Write(schedule model.Schedule, out string) error
}
