package policy

import (
	"context"
	"slices"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleStaff     Role = "staff"
	RoleAssociate Role = "project_associate"
)

type Action string

const (
	RecordCreate  Action = "record:create"
	RecordView    Action = "record:view"
	RecordUpdate  Action = "record:update"
	RecordDelete  Action = "record:delete"
	RecordRestore Action = "record:restore"

	StaffManage Action = "staff:manage"

	AssociateCreate  Action = "associate:create"
	AssociateView    Action = "associate:view"
	AssociateUpdate  Action = "associate:update"
	AssociateDelete  Action = "associate:delete"
	AssociateRestore Action = "associate:restore"

	WorkCreate   Action = "work:create"
	WorkView     Action = "work:view"
	WorkUpdate   Action = "work:update"
	WorkProgress Action = "work:progress"
	WorkDelay    Action = "work:delay"
	WorkDelete   Action = "work:delete"
	WorkRestore  Action = "work:restore"
)

// Claims is the authenticated identity consulted by every decision.
type Claims struct {
	Role    Role
	StaffID string
}

// Resource describes the entity a decision is about. OwnerID is the staff_id
// that owns the entity (a record's staff, a work item's associate, an
// account's own id). Supervisors is the associate's assigned_staff set, for
// resources reached through an associate.
type Resource struct {
	OwnerID     string
	Supervisors []string
}

// Condition is an ownership predicate attached to a role in a rule. A nil
// condition means the role may perform the action on any resource.
type Condition func(Claims, Resource) bool

func owner(c Claims, r Resource) bool {
	return r.OwnerID != "" && r.OwnerID == c.StaffID
}

func supervisor(c Claims, r Resource) bool {
	return slices.Contains(r.Supervisors, c.StaffID)
}

// rules is the single role×action matrix. Admin does not appear: the admin
// check short-circuits in Allow before the table is consulted. A role absent
// from an action's entry is denied.
var rules = map[Action]map[Role]Condition{
	RecordCreate:  {RoleStaff: owner}, // staff may only create records they own
	RecordView:    {RoleStaff: owner},
	RecordUpdate:  {RoleStaff: owner},
	RecordDelete:  {RoleStaff: owner},
	RecordRestore: {RoleStaff: owner},

	StaffManage: {}, // admin only

	AssociateCreate:  {}, // admin only
	AssociateView:    {RoleStaff: supervisor},
	AssociateUpdate:  {RoleStaff: supervisor},
	AssociateDelete:  {}, // admin only
	AssociateRestore: {}, // admin only

	WorkCreate:   {RoleStaff: supervisor},
	WorkView:     {RoleStaff: supervisor, RoleAssociate: owner},
	WorkUpdate:   {RoleStaff: supervisor},
	WorkProgress: {RoleStaff: supervisor, RoleAssociate: owner},
	WorkDelay:    {RoleStaff: supervisor, RoleAssociate: owner},
	WorkDelete:   {RoleStaff: supervisor},
	WorkRestore:  {RoleStaff: supervisor},
}

// Allow is the uniform policy decision: may claims perform action on the
// resource. Pure; the one lookup-dependent check lives in CanAccessWork.
func Allow(c Claims, a Action, r Resource) bool {
	if c.Role == RoleAdmin {
		return true
	}
	roleRules, ok := rules[a]
	if !ok {
		return false
	}
	cond, ok := roleRules[c.Role]
	if !ok {
		return false
	}
	if cond == nil {
		return true
	}
	return cond(c, r)
}

// AssignedStaffLookup resolves the assigned_staff set of a project associate
// by staff id.
type AssignedStaffLookup func(ctx context.Context, associateID string) ([]string, error)

// CanAccessWork decides whether claims may act on a work item owned by the
// given associate. For staff this needs the associate's assigned_staff set,
// resolved through lookup; the other roles decide without I/O.
func CanAccessWork(ctx context.Context, c Claims, a Action, workOwnerID string, lookup AssignedStaffLookup) (bool, error) {
	res := Resource{OwnerID: workOwnerID}
	if c.Role == RoleStaff {
		supervisors, err := lookup(ctx, workOwnerID)
		if err != nil {
			return false, err
		}
		res.Supervisors = supervisors
	}
	return Allow(c, a, res), nil
}
