package model

// Role is the closed set of portal roles. Anything outside this set is
// rejected at the edges so role checks can switch exhaustively.
type Role string

const (
	RoleUser  Role = "user"
	RoleJudge Role = "judge"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleJudge, RoleAdmin:
		return true
	}
	return false
}

// TeamRole is a member's standing inside a team, distinct from Role.
type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
)

func (r TeamRole) Valid() bool {
	switch r {
	case TeamRoleOwner, TeamRoleAdmin, TeamRoleMember:
		return true
	}
	return false
}

// Project lifecycle states.
const (
	ProjectDraft     = "draft"
	ProjectSubmitted = "submitted"
)
