package category

import "fmt"

// Line identifies a product line; each line keeps its own category table.
type Line string

const (
	LineDevice       Line = "device"
	LineHeatedDevice Line = "heated-device"
	LineStick        Line = "stick"
)

var lineTables = map[Line]string{
	LineDevice:       "device_categories",
	LineHeatedDevice: "heated_device_categories",
	LineStick:        "stick_categories",
}

// Lines lists every product line in display order.
func Lines() []Line {
	return []Line{LineDevice, LineHeatedDevice, LineStick}
}

// Table returns the category table backing the line.
func (l Line) Table() (string, error) {
	t, ok := lineTables[l]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLine, string(l))
	}
	return t, nil
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Input struct {
	Name string `json:"name" validate:"required,max=256"`
}
