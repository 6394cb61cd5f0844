package resource

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// GlobalID is the zero value of ID, representing the ID of the abstract
// top-level "global" entity to which all resources belong.
var GlobalID = ID{}

// idShortLen is the number of hex characters of the uuid included in the
// string representation of an ID.
const idShortLen = 8

// ID uniquely identifies a resource, e.g. a server tab.
type ID struct {
	id uuid.UUID
	// Kind of resource, e.g. tab, server, etc.
	kind Kind
}

func NewID(k Kind) ID {
	return ID{
		id:   uuid.New(),
		kind: k,
	}
}

func (id ID) Kind() Kind {
	return id.kind
}

func (id ID) String() string {
	if id == GlobalID {
		return Global.String()
	}
	short := strings.ReplaceAll(id.id.String(), "-", "")[:idShortLen]
	return fmt.Sprintf("%s-%s", id.kind, short)
}

func (id ID) LogValue() slog.Value {
	return slog.StringValue(id.String())
}
