package spdx

import (
	"strings"
)

// LicenseItemKind discriminates the LicenseItem sum type.
type LicenseItemKind uint8

const (
	// ItemSPDX is a license on the SPDX list.
	ItemSPDX LicenseItemKind = iota
	// ItemOther is a LicenseRef-, optionally DocumentRef- qualified,
	// reference to a license outside the list.
	ItemOther
)

// LicenseItem is a single license term: either a recognized SPDX id,
// possibly widened to later versions, or a license reference.
type LicenseItem struct {
	Kind LicenseItemKind

	// ID is the license, for ItemSPDX.
	ID LicenseID
	// OrLater widens ItemSPDX to the named version or any later one.
	OrLater bool

	// DocRef optionally names the external SPDX document the
	// reference lives in, for ItemOther.
	DocRef string
	// LicRef is the locally unique license reference, for ItemOther.
	LicRef string
}

// Compare orders items: SPDX ids (by registry index) before references
// (by doc ref then license ref). OrLater does not participate, so a
// plain claim and an or-later requirement for the same license compare
// equal; Licensee.Satisfies is what tells them apart.
func (li LicenseItem) Compare(o LicenseItem) int {
	if li.Kind != o.Kind {
		if li.Kind == ItemSPDX {
			return -1
		}
		return 1
	}
	if li.Kind == ItemSPDX {
		return li.ID.Compare(o.ID)
	}
	if c := strings.Compare(li.DocRef, o.DocRef); c != 0 {
		return c
	}
	return strings.Compare(li.LicRef, o.LicRef)
}

func (li LicenseItem) String() string {
	if li.Kind == ItemSPDX {
		// GNU-family ids spell or-later in the name itself.
		if li.OrLater && !li.ID.IsGNU() {
			return li.ID.Name + "+"
		}
		return li.ID.Name
	}
	var sb strings.Builder
	if li.DocRef != "" {
		sb.WriteString("DocumentRef-")
		sb.WriteString(li.DocRef)
		sb.WriteByte(':')
	}
	sb.WriteString("LicenseRef-")
	sb.WriteString(li.LicRef)
	return sb.String()
}

// AdditionItemKind discriminates the AdditionItem sum type.
type AdditionItemKind uint8

const (
	// AdditionNone means the requirement carries no addition; it is
	// the zero value so a bare LicenseReq needs no construction.
	AdditionNone AdditionItemKind = iota
	// AdditionSPDX is an exception on the SPDX list.
	AdditionSPDX
	// AdditionOther is an AdditionRef-, optionally DocumentRef-
	// qualified, reference to additional text outside the list.
	AdditionOther
)

// AdditionItem is the additional text attached to a license term with
// WITH: an SPDX exception, an addition reference, or nothing.
type AdditionItem struct {
	Kind AdditionItemKind

	// ID is the exception, for AdditionSPDX.
	ID ExceptionID

	// DocRef optionally names the external SPDX document, for
	// AdditionOther.
	DocRef string
	// AddRef is the locally unique addition reference, for
	// AdditionOther.
	AddRef string
}

// Compare orders additions: none, then SPDX exceptions by registry
// index, then references by doc ref then addition ref.
func (ai AdditionItem) Compare(o AdditionItem) int {
	if ai.Kind != o.Kind {
		if ai.Kind < o.Kind {
			return -1
		}
		return 1
	}
	switch ai.Kind {
	case AdditionSPDX:
		return ai.ID.Compare(o.ID)
	case AdditionOther:
		if c := strings.Compare(ai.DocRef, o.DocRef); c != 0 {
			return c
		}
		return strings.Compare(ai.AddRef, o.AddRef)
	}
	return 0
}

func (ai AdditionItem) String() string {
	if ai.Kind == AdditionSPDX {
		return ai.ID.Name
	}
	var sb strings.Builder
	if ai.DocRef != "" {
		sb.WriteString("DocumentRef-")
		sb.WriteString(ai.DocRef)
		sb.WriteByte(':')
	}
	sb.WriteString("AdditionRef-")
	sb.WriteString(ai.AddRef)
	return sb.String()
}

// LicenseReq is a single license requirement: a license term plus an
// optional addition attached with WITH. Most of the time these are
// produced by parsing, but they can be built by hand for evaluation
// predicates.
type LicenseReq struct {
	License  LicenseItem
	Addition AdditionItem
}

// Req builds the requirement a bare use of the id means in an
// expression. GNU-family '-or-later' ids imply the or-later widening;
// everything else starts exact.
func (id LicenseID) Req() LicenseReq {
	return LicenseReq{
		License: LicenseItem{
			Kind:    ItemSPDX,
			ID:      id,
			OrLater: id.IsGNU() && strings.HasSuffix(id.Name, "-or-later"),
		},
	}
}

// Compare orders requirements lexicographically: license first, then
// addition.
func (r LicenseReq) Compare(o LicenseReq) int {
	if c := r.License.Compare(o.License); c != 0 {
		return c
	}
	return r.Addition.Compare(o.Addition)
}

func (r LicenseReq) String() string {
	if r.Addition.Kind == AdditionNone {
		return r.License.String()
	}
	return r.License.String() + " WITH " + r.Addition.String()
}
