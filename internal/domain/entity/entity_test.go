package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoles_Allows(t *testing.T) {
	tests := []struct {
		name     string
		roles    Roles
		required Role
		want     bool
	}{
		{name: "admin reaches admin", roles: Roles{RoleAdmin}, required: RoleAdmin, want: true},
		{name: "admin reaches reader", roles: Roles{RoleAdmin}, required: RoleReader, want: true},
		{name: "reader does not reach admin", roles: Roles{RoleReader}, required: RoleAdmin, want: false},
		{name: "no roles", roles: nil, required: RoleReader, want: false},
		{name: "unknown required role", roles: Roles{RoleAdmin}, required: Role("owner"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.roles.Allows(tt.required))
		})
	}
}

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"reader", "owner", "admin", "reader"})

	assert.Equal(t, Roles{RoleReader, RoleAdmin}, roles)
	assert.Equal(t, []string{"reader", "admin"}, roles.ToStrings())
}

func TestSyncSnapshot_CloneIsDeep(t *testing.T) {
	sale := decimal.RequireFromString("1.9")
	parent := "10"
	original := &SyncSnapshot{
		TenantKey:  TenantKey(7),
		Tenant:     &Tenant{ID: 7, Name: "Demo d.o.o."},
		Articles:   []Article{{ID: "1", SalePrice: &sale, Images: []string{"/a.jpg"}}},
		Categories: []Category{{ID: "11", ParentID: &parent}},
		Version:    3,
	}

	clone := original.Clone()
	clone.Tenant.Name = "changed"
	clone.Articles[0].Images[0] = "/b.jpg"
	*clone.Articles[0].SalePrice = decimal.Zero
	*clone.Categories[0].ParentID = "99"

	assert.Equal(t, "Demo d.o.o.", original.Tenant.Name)
	assert.Equal(t, "/a.jpg", original.Articles[0].Images[0])
	assert.Equal(t, "1.9", original.Articles[0].SalePrice.String())
	assert.Equal(t, "10", *original.Categories[0].ParentID)
	assert.Nil(t, (*SyncSnapshot)(nil).Clone())
}

func TestSyncSnapshot_SyncedAndAge(t *testing.T) {
	now := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)

	empty := EmptySnapshot(TenantKey(7))
	assert.Equal(t, "company-7", empty.TenantKey)
	assert.False(t, empty.IsSynced())
	assert.Zero(t, empty.Age(now))

	synced := &SyncSnapshot{Version: 1, LastSync: now.Add(-90 * time.Minute)}
	assert.True(t, synced.IsSynced())
	assert.Equal(t, 90*time.Minute, synced.Age(now))
}
