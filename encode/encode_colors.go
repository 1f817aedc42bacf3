package encode

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
	AnnotationColor
	CheckColor
	FailColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			CommentColor:    color.BlueString,
			KeyColor:        color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor:      color.RGB(128, 216, 236).SprintfFunc(),
			SepColor:        color.RGB(255, 0, 196).SprintfFunc(),
			AnnotationColor: color.RGB(74, 92, 138).SprintfFunc(),
			CheckColor:      color.New(color.FgYellow, color.Bold).SprintfFunc(),
			FailColor:       color.New(color.FgRed, color.Bold).SprintfFunc(),
		},
	}
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
