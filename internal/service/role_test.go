package service_test

import (
	"context"
	"errors"
	"testing"

	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"
	"hackathon-portal/internal/testutil"

	"github.com/google/uuid"
)

func TestRoleForDefaultsToUser(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	roles := service.NewRoleService(gdb)

	p := testutil.CreateProfile(t, gdb, "nobody@test", "Nobody")
	if got := roles.RoleFor(ctx, p.ID); got != model.RoleUser {
		t.Errorf("RoleFor without assignment = %v, want user", got)
	}
	// an identity that does not even exist still resolves
	if got := roles.RoleFor(ctx, uuid.New()); got != model.RoleUser {
		t.Errorf("RoleFor unknown identity = %v, want user", got)
	}
	if got := roles.RoleFor(ctx, uuid.Nil); got != model.RoleUser {
		t.Errorf("RoleFor nil identity = %v, want user", got)
	}
}

func TestRoleForAssigned(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	roles := service.NewRoleService(gdb)

	judge := testutil.CreateProfile(t, gdb, "judge@test", "Judge")
	testutil.AssignRole(t, gdb, judge.ID, model.RoleJudge)
	admin := testutil.CreateProfile(t, gdb, "admin@test", "Admin")
	testutil.AssignRole(t, gdb, admin.ID, model.RoleAdmin)

	if got := roles.RoleFor(ctx, judge.ID); got != model.RoleJudge {
		t.Errorf("RoleFor judge = %v", got)
	}
	if !roles.HasRole(ctx, admin.ID, model.RoleAdmin) {
		t.Error("HasRole(admin, admin) = false")
	}
	if roles.HasRole(ctx, judge.ID, model.RoleAdmin) {
		t.Error("HasRole(judge, admin) = true")
	}
}

func TestRoleForInvalidStoredValue(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	roles := service.NewRoleService(gdb)

	p := testutil.CreateProfile(t, gdb, "weird@test", "Weird")
	if err := gdb.Create(&model.RoleAssignment{ProfileID: p.ID, Role: "superuser"}).Error; err != nil {
		t.Fatalf("insert bad assignment: %v", err)
	}
	if got := roles.RoleFor(ctx, p.ID); got != model.RoleUser {
		t.Errorf("RoleFor with invalid stored role = %v, want user", got)
	}
}

func TestAssignRole(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	roles := service.NewRoleService(gdb)

	admin := testutil.CreateProfile(t, gdb, "admin@test", "Admin")
	testutil.AssignRole(t, gdb, admin.ID, model.RoleAdmin)
	user := testutil.CreateProfile(t, gdb, "user@test", "User")

	// non-admins cannot assign
	if err := roles.Assign(ctx, user.ID, user.ID, model.RoleAdmin); !errors.Is(err, service.ErrNotPermitted) {
		t.Fatalf("Assign by user: err = %v, want ErrNotPermitted", err)
	}

	if err := roles.Assign(ctx, admin.ID, user.ID, model.RoleJudge); err != nil {
		t.Fatalf("Assign judge: %v", err)
	}
	if got := roles.RoleFor(ctx, user.ID); got != model.RoleJudge {
		t.Errorf("role after assign = %v, want judge", got)
	}

	// re-assignment replaces, never duplicates
	if err := roles.Assign(ctx, admin.ID, user.ID, model.RoleAdmin); err != nil {
		t.Fatalf("Assign admin: %v", err)
	}
	var count int64
	gdb.Model(&model.RoleAssignment{}).Where("profile_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("assignment rows = %d, want 1", count)
	}

	if err := roles.Assign(ctx, admin.ID, user.ID, "czar"); !errors.Is(err, service.ErrValidation) {
		t.Fatalf("Assign invalid role: err = %v, want ErrValidation", err)
	}
}
