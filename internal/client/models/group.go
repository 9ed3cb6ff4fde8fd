package models

import (
	"fmt"
	"strings"
)

// DefaultLocation is used when a group lookup names no location.
const DefaultLocation = "LS1"

// Group is an interest group tied to a location.
type Group struct {
	ID        int64   `json:"id,omitempty"`
	Name      string  `json:"name" validate:"required"`
	Location  string  `json:"location" validate:"required"`
	MemberIDs []int64 `json:"memberIds" validate:"min=1,dive,gt=0"`
}

func (g Group) String() string {
	ids := make([]string, len(g.MemberIDs))
	for i, id := range g.MemberIDs {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("%s @ %s [members: %s]", g.Name, g.Location, strings.Join(ids, ", "))
}
