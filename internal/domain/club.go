package domain

import "time"

type Club struct {
	ID          string
	Name        string
	Description string
	OwnerID     string
	Members     map[string]MemberRecord
	IsPrivate   bool
	IsActive    bool
	Version     int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type MemberRecord struct {
	UserID   string
	Role     Role
	JoinedAt time.Time
}

// Clone returns a deep copy so that callers can derive a new roster
// without touching the snapshot they loaded.
func (c *Club) Clone() *Club {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Members = make(map[string]MemberRecord, len(c.Members))
	for id, rec := range c.Members {
		cp.Members[id] = rec
	}
	if c.UpdatedAt != nil {
		t := *c.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}

// MemberCount counts the owner plus every Member and Admin record.
func (c *Club) MemberCount() int {
	count := 1
	for _, rec := range c.Members {
		if rec.Role == RoleMember || rec.Role == RoleAdmin {
			count++
		}
	}
	return count
}

// Record returns the roster record for userID, if any.
func (c *Club) Record(userID string) (MemberRecord, bool) {
	rec, ok := c.Members[userID]
	return rec, ok
}
