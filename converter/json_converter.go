package converter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/uselessgoddess/suns/model"
)

// JSONConverter пишет только само расписание, в том же виде, что отдаёт API.
// out "-" значит stdout.
type JSONConverter struct {
	Pretty bool
}

func (j JSONConverter) Write(schedule model.Schedule, out string) error {
	if out == "" {
		return fmt.Errorf("-output can not be empty")
	}

	var ret []byte
	var err error
	if j.Pretty {
		ret, err = json.MarshalIndent(schedule.Timetable, "", "  ")
	} else {
		ret, err = json.Marshal(schedule.Timetable)
	}
	if err != nil {
		return err
	}

	if out == "-" {
		_, err = os.Stdout.Write(append(ret, '\n'))
		return err
	}
	return os.WriteFile(out, ret, 0644)
}
