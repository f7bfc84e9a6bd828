package main

import (
	"fmt"
	"strconv"
	"strings"

	"snapframe/internal/app"
	"snapframe/internal/interaction"
	"snapframe/pkg/geometry"
)

// drawOp is one -draw flag: a tool and the press/release points that
// would produce the element interactively.
type drawOp struct {
	tool     app.Tool
	from, to geometry.Point2D
	content  string
}

// parseDraw parses "rectangle:x1,y1,x2,y2", "arrow:x1,y1,x2,y2",
// "text:x,y" or "text:x,y:content".
func parseDraw(s string) (drawOp, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return drawOp{}, fmt.Errorf("draw %q: want tool:coords", s)
	}
	tool, err := app.ParseTool(parts[0])
	if err != nil {
		return drawOp{}, fmt.Errorf("draw %q: %w", s, err)
	}

	var coords []float64
	for _, f := range strings.Split(parts[1], ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return drawOp{}, fmt.Errorf("draw %q: bad coordinate %q", s, f)
		}
		coords = append(coords, v)
	}

	op := drawOp{tool: tool}
	switch tool {
	case app.ToolText:
		if len(coords) != 2 {
			return drawOp{}, fmt.Errorf("draw %q: text takes x,y", s)
		}
		op.from = geometry.Pt(coords[0], coords[1])
		if len(parts) == 3 {
			op.content = parts[2]
		}
	case app.ToolRectangle, app.ToolArrow:
		if len(coords) != 4 || len(parts) == 3 {
			return drawOp{}, fmt.Errorf("draw %q: %s takes x1,y1,x2,y2", s, tool)
		}
		op.from = geometry.Pt(coords[0], coords[1])
		op.to = geometry.Pt(coords[2], coords[3])
	default:
		return drawOp{}, fmt.Errorf("draw %q: no drawing tool", s)
	}
	return op, nil
}

// apply replays op through the controller the way the canvas would.
func (op drawOp) apply(s *app.State, c *interaction.Controller) {
	c.SelectTool(op.tool)
	c.PointerDown(op.from)
	if op.tool != app.ToolText {
		c.PointerUp(op.to)
		return
	}
	i := s.Elements.Len() - 1
	if op.content != "" {
		c.EditText(i, op.content)
	}
	c.Blur(i)
}
