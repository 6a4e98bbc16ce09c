package plugin

import (
	"fmt"

	"github.com/uselessgoddess/suns/config"
	"github.com/uselessgoddess/suns/plugin/vsu"
)

func NewPlugin(name string, cfg *config.Config, departments config.Departments) (Plugin, error) {
	switch name {
	case vsu.Institution, "vsu":
		p, err := vsu.New(cfg, departments)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%s не найден", name)
	}
}
