package snake

import (
	"strconv"

	"cellsnake/internal/core"
)

// Parameters reports the live game values for HUDs and status lines.
func (g *Game) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Snake",
			Params: []core.Parameter{
				intParam("length", "Length", g.snake.Length),
				intParam("turn", "Turn", g.ticks),
				stringParam("direction", "Direction", g.snake.Direction.String()),
				stringParam("state", "State", g.state.String()),
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("rows", "Rows", g.cfg.Rows),
				intParam("cols", "Cols", g.cfg.Cols),
				intParam("max_length", "Max length", g.cfg.MaxLength),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
