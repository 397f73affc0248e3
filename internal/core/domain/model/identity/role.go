package identity

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// Group is a role group stored in the identity store.
type Group string

const (
	GroupManager      Group = "Manager"
	GroupDeliveryCrew Group = "Delivery crew"
)

// ManagedGroups lists the groups whose membership a Manager can edit.
func ManagedGroups() []Group {
	return []Group{GroupManager, GroupDeliveryCrew}
}

// ParseGroupSlug maps the URL segment used by the groups endpoints to a Group.
func ParseGroupSlug(slug string) (Group, error) {
	switch slug {
	case "manager":
		return GroupManager, nil
	case "delivery-crew":
		return GroupDeliveryCrew, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("group", fmt.Errorf("%q is not a role group", slug))
	}
}

// Slug is the inverse of ParseGroupSlug.
func (g Group) Slug() string {
	switch g {
	case GroupManager:
		return "manager"
	case GroupDeliveryCrew:
		return "delivery-crew"
	default:
		return ""
	}
}

// MemberNoun names a single member of the group in messages.
func (g Group) MemberNoun() string {
	switch g {
	case GroupManager:
		return "manager"
	case GroupDeliveryCrew:
		return "delivery crew"
	default:
		return string(g)
	}
}

// Validate rejects groups other than the managed role groups.
func (g Group) Validate() error {
	if g != GroupManager && g != GroupDeliveryCrew {
		return errs.NewValueIsInvalidErrorWithCause("group", fmt.Errorf("%q is not a role group", string(g)))
	}
	return nil
}

// Role is the single effective role of an actor.
type Role int

const (
	// Customer is the default role: no recognized group.
	Customer Role = iota
	DeliveryCrew
	Manager
)

// RoleFromGroups resolves the effective role. Manager wins over Delivery crew.
func RoleFromGroups(groups []Group) Role {
	role := Customer
	for _, g := range groups {
		switch g {
		case GroupManager:
			return Manager
		case GroupDeliveryCrew:
			role = DeliveryCrew
		}
	}
	return role
}

func (r Role) String() string {
	switch r {
	case Manager:
		return "Manager"
	case DeliveryCrew:
		return "Delivery Crew"
	case Customer:
		return "Customer"
	default:
		return "Unknown"
	}
}
