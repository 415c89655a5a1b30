package scene

import (
	"fmt"
	"strconv"
	"strings"
)

type ActionKind int

const (
	ActionExplode ActionKind = iota
	ActionHover
	ActionUnhover
	ActionSelect
	ActionWait
)

// Action is one scripted input, e.g. "explode", "hover:Camera", "wait:30".
type Action struct {
	Kind  ActionKind
	Part  string
	Ticks int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionExplode:
		return "explode"
	case ActionHover:
		return "hover:" + a.Part
	case ActionUnhover:
		return "unhover"
	case ActionSelect:
		return "select:" + a.Part
	case ActionWait:
		return "wait:" + strconv.Itoa(a.Ticks)
	}
	return "?"
}

// ParseAction parses a single action. Part names are not checked here;
// an unknown part is a no-op when applied.
func ParseAction(s string) (Action, error) {
	verb, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	verb = strings.ToLower(strings.TrimSpace(verb))
	arg = strings.TrimSpace(arg)

	switch verb {
	case "explode", "toggle":
		return Action{Kind: ActionExplode}, nil
	case "unhover":
		return Action{Kind: ActionUnhover}, nil
	case "hover", "select":
		if !hasArg || arg == "" {
			return Action{}, fmt.Errorf("%w: %s needs a part name", ErrBadArgument, verb)
		}
		kind := ActionHover
		if verb == "select" {
			kind = ActionSelect
		}
		return Action{Kind: kind, Part: arg}, nil
	case "wait":
		n, err := strconv.Atoi(arg)
		if !hasArg || err != nil || n < 0 {
			return Action{}, fmt.Errorf("%w: wait needs a tick count, got %q", ErrBadArgument, arg)
		}
		return Action{Kind: ActionWait, Ticks: n}, nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// ParseScript parses a comma separated list of actions. Empty entries are skipped.
func ParseScript(script string) ([]Action, error) {
	var out []Action
	for i, field := range strings.Split(script, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		a, err := ParseAction(field)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Apply feeds one action into the scene. Wait actions tick the scene.
func (s *Scene) Apply(a Action) {
	switch a.Kind {
	case ActionExplode:
		s.ctrl.ToggleExplode()
	case ActionHover:
		s.ctrl.HoverName(a.Part)
	case ActionUnhover:
		s.ctrl.ClearHover()
	case ActionSelect:
		s.ctrl.SelectName(a.Part)
	case ActionWait:
		for i := 0; i < a.Ticks; i++ {
			s.Tick()
		}
	}
}
