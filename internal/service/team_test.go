package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"
	"hackathon-portal/internal/testutil"
)

func TestTeamCreateMakesOwnerMembership(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	svc := service.NewTeamService(gdb, service.NewRoleService(gdb))

	owner := testutil.CreateProfile(t, gdb, "owner@test", "Owner")
	team, err := svc.Create(ctx, owner.ID, model.TeamRequest{Name: "Null Pointers", Description: "we deref"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if team.MaxMembers != service.DefaultMaxMembers {
		t.Errorf("max members = %d, want default %d", team.MaxMembers, service.DefaultMaxMembers)
	}

	_, members, err := svc.Get(ctx, team.ID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if len(members) != 1 || members[0].Role != model.TeamRoleOwner || members[0].ProfileID != owner.ID {
		t.Fatalf("members = %+v, want single owner membership", members)
	}
}

func TestTeamMemberCap(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	svc := service.NewTeamService(gdb, service.NewRoleService(gdb))

	owner := testutil.CreateProfile(t, gdb, "owner@test", "Owner")
	team, err := svc.Create(ctx, owner.ID, model.TeamRequest{Name: "Tiny", MaxMembers: 2})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	second := testutil.CreateProfile(t, gdb, "second@test", "Second")
	if _, err := svc.AddMember(ctx, owner.ID, team.ID, model.AddMemberRequest{ProfileID: second.ID}); err != nil {
		t.Fatalf("add second member: %v", err)
	}

	third := testutil.CreateProfile(t, gdb, "third@test", "Third")
	_, err = svc.AddMember(ctx, owner.ID, team.ID, model.AddMemberRequest{ProfileID: third.ID})
	if !errors.Is(err, service.ErrValidation) {
		t.Fatalf("add beyond cap: err = %v, want ErrValidation", err)
	}
}

func TestTeamMemberPermissions(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	svc := service.NewTeamService(gdb, service.NewRoleService(gdb))

	owner := testutil.CreateProfile(t, gdb, "owner@test", "Owner")
	team, err := svc.Create(ctx, owner.ID, model.TeamRequest{Name: "Gophers"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	stranger := testutil.CreateProfile(t, gdb, "stranger@test", "Stranger")
	member := testutil.CreateProfile(t, gdb, "member@test", "Member")

	if _, err := svc.AddMember(ctx, stranger.ID, team.ID, model.AddMemberRequest{ProfileID: member.ID}); !errors.Is(err, service.ErrNotPermitted) {
		t.Fatalf("add by stranger: err = %v, want ErrNotPermitted", err)
	}
	if _, err := svc.AddMember(ctx, owner.ID, team.ID, model.AddMemberRequest{ProfileID: member.ID, Role: model.TeamRoleOwner}); !errors.Is(err, service.ErrValidation) {
		t.Fatalf("add second owner: err = %v, want ErrValidation", err)
	}
	if _, err := svc.AddMember(ctx, owner.ID, team.ID, model.AddMemberRequest{ProfileID: member.ID}); err != nil {
		t.Fatalf("add member: %v", err)
	}

	// owner can never be removed
	if err := svc.RemoveMember(ctx, owner.ID, team.ID, owner.ID); !errors.Is(err, service.ErrValidation) {
		t.Fatalf("remove owner: err = %v, want ErrValidation", err)
	}
	// members may remove themselves
	if err := svc.RemoveMember(ctx, member.ID, team.ID, member.ID); err != nil {
		t.Fatalf("self-removal: %v", err)
	}
}

func TestTeamListActiveOnly(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	svc := service.NewTeamService(gdb, service.NewRoleService(gdb))

	owner := testutil.CreateProfile(t, gdb, "owner@test", "Owner")
	for i := 0; i < 2; i++ {
		if _, err := svc.Create(ctx, owner.ID, model.TeamRequest{Name: fmt.Sprintf("Team %d", i)}); err != nil {
			t.Fatalf("create team %d: %v", i, err)
		}
	}
	gdb.Model(&model.Team{}).Where("name = ?", "Team 0").Update("active", false)

	teams, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 || teams[0].Name != "Team 1" {
		t.Fatalf("teams = %+v, want only the active team", teams)
	}
}
