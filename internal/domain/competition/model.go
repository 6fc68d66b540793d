package competition

import (
	"fmt"
	"strconv"
)

// Competition is a football league tracked on the standings pages.
type Competition struct {
	ID   int    `yaml:"id" validate:"required,gt=0"`
	Name string `yaml:"name" validate:"required"`
}

func (c Competition) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("competition id must be greater than zero")
	}
	if c.Name == "" {
		return fmt.Errorf("competition name is required")
	}

	return nil
}

// FileName is the per-competition page the index links to.
func (c Competition) FileName() string {
	return strconv.Itoa(c.ID) + ".txt"
}
