package flex

import (
	"fmt"
	"strings"

	"github.com/matzehuels/windowgram/pkg/errors"
	"github.com/matzehuels/windowgram/pkg/group"
	"github.com/matzehuels/windowgram/pkg/windowgram"
)

// Group is one join request: the panes to merge and the identifier of the
// merged pane.
type Group struct {
	Panes string
	Name  byte
}

func (g Group) String() string { return fmt.Sprintf("%s.%c", g.Panes, g.Name) }

// ParseGroup reads a group written as "panes" or "panes.name". Without a name
// the first pane names the result. Duplicate panes are dropped.
func ParseGroup(s string) (Group, error) {
	if strings.Count(s, ".") > 1 {
		return Group{}, errors.New(errors.ErrCodeInvalidInput, "group %q has more than one rename operator", s)
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '.' && !windowgram.IsPaneID(c) {
			return Group{}, errors.New(errors.ErrCodeInvalidInput, "group %q has invalid characters", s)
		}
	}
	left, right, named := strings.Cut(s, ".")
	if left == "" {
		return Group{}, errors.New(errors.ErrCodeInvalidInput, "group %q has no panes", s)
	}
	if !named {
		right = left[:1]
	}
	switch len(right) {
	case 0:
		return Group{}, errors.New(errors.ErrCodeInvalidInput, "group %q has an empty rename", s)
	case 1:
	default:
		return Group{}, errors.New(errors.ErrCodeInvalidInput, "group %q must be renamed to a single pane", s)
	}

	var panes []byte
	for i := 0; i < len(left); i++ {
		if strings.IndexByte(string(panes), left[i]) < 0 {
			panes = append(panes, left[i])
		}
	}
	return Group{Panes: string(panes), Name: right[0]}, nil
}

// Join merges each group into a single pane. Every group must already form a
// rectangle; incomplete groups fail with the panes that would complete them.
// A pane may appear in only one group and names may not collide with panes
// that remain.
func Join(w *windowgram.Windowgram, groups []Group) (*windowgram.Windowgram, error) {
	if len(groups) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no groups specified")
	}

	used := w.Used()
	clipped := ""
	for _, g := range groups {
		for i := 0; i < len(g.Panes); i++ {
			c := g.Panes[i]
			if strings.IndexByte(clipped, c) >= 0 {
				return nil, errors.New(errors.ErrCodeInvalidPanes,
					"group %s uses pane %c which was already used by a previous group", g, c)
			}
			if strings.IndexByte(used, c) < 0 {
				return nil, errors.New(errors.ErrCodeInvalidPanes,
					"group %s uses pane %c which is not in the windowgram", g, c)
			}
		}
		clipped += g.Panes
	}

	remaining := windowgram.Subtract(used, clipped)
	for _, g := range groups {
		if strings.IndexByte(remaining, g.Name) >= 0 {
			return nil, errors.New(errors.ErrCodeInvalidPanes,
				"group %s is renamed to %c which is in use", g, g.Name)
		}
		remaining += string(g.Name)
	}

	layers := make([]windowgram.Layer, 0, len(groups))
	for _, g := range groups {
		switch res := group.Analyze(w, g.Panes); res.Status {
		case group.InvalidPanes:
			return nil, errors.New(errors.ErrCodeInvalidPanes, "group %s has invalid panes: %s", g, res.Invalid)
		case group.InsufficientPanes:
			return nil, errors.New(errors.ErrCodeIncompleteGroup,
				"group %s is not a rectangle, but it would be if you add: %s", g, res.Suggestions)
		}
		mask, err := windowgram.GenerateMask(w, g.Panes)
		if err != nil {
			return nil, err
		}
		layers = append(layers, windowgram.Layer{Variant: w.Replace(g.Panes, g.Name), Mask: mask})
	}
	return windowgram.Composite(w, layers)
}
