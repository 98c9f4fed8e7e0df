package domain

// Role is the effective role of a user relative to one club.
type Role string

const (
	RoleOwner     Role = "OWNER"
	RoleAdmin     Role = "ADMIN"
	RoleMember    Role = "MEMBER"
	RolePending   Role = "PENDING"
	RoleNonMember Role = "NON_MEMBER"
)

// IsRecordRole reports whether the role can be stored in a MemberRecord.
// Owner is carried by Club.OwnerID and NonMember is the absence of a record.
func (r Role) IsRecordRole() bool {
	switch r {
	case RoleAdmin, RoleMember, RolePending:
		return true
	case RoleOwner, RoleNonMember:
		return false
	default:
		return false
	}
}

// AtLeastMember reports whether the role grants read/post access to club content.
func (r Role) AtLeastMember() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	case RolePending, RoleNonMember:
		return false
	default:
		return false
	}
}

// CanModerate reports whether the role may approve, reject and kick.
func (r Role) CanModerate() bool {
	switch r {
	case RoleOwner, RoleAdmin:
		return true
	case RoleMember, RolePending, RoleNonMember:
		return false
	default:
		return false
	}
}

func ParseRecordRole(s string) (Role, bool) {
	r := Role(s)
	if !r.IsRecordRole() {
		return "", false
	}
	return r, true
}
