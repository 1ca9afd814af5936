package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"
	"hackathon-portal/internal/testutil"
)

func TestCreateThreadCaps(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	svc := service.NewDiscussionService(gdb, service.NewRoleService(gdb))

	author := testutil.CreateProfile(t, gdb, "author@test", "Author")

	tests := []struct {
		name    string
		title   string
		body    string
		wantErr bool
	}{
		{"ok", "Where do we submit decks?", "Is the deck link required?", false},
		{"empty title", "", "body", true},
		{"title at cap", strings.Repeat("t", service.MaxTitleLen), "body", false},
		{"title over cap", strings.Repeat("t", service.MaxTitleLen+1), "body", true},
		{"body over cap", "title", strings.Repeat("b", service.MaxBodyLen+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateThread(ctx, author.ID, tt.title, tt.body)
			if tt.wantErr && !errors.Is(err, service.ErrValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestDeleteThreadCascadesReplies(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	svc := service.NewDiscussionService(gdb, service.NewRoleService(gdb))

	author := testutil.CreateProfile(t, gdb, "author@test", "Author")
	replier := testutil.CreateProfile(t, gdb, "replier@test", "Replier")

	thread, err := svc.CreateThread(ctx, author.ID, "Team formation", "Looking for a designer")
	if err != nil {
		t.Fatalf("create thread: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.CreateReply(ctx, replier.ID, thread.ID, "interested"); err != nil {
			t.Fatalf("create reply %d: %v", i, err)
		}
	}

	var d model.Discussion
	gdb.First(&d, "id = ?", thread.ID)
	if d.ReplyCount != 3 {
		t.Fatalf("reply_count = %d, want 3", d.ReplyCount)
	}

	if err := svc.DeleteThread(ctx, author.ID, thread.ID); err != nil {
		t.Fatalf("delete thread: %v", err)
	}

	var replies int64
	gdb.Model(&model.Reply{}).Where("discussion_id = ?", thread.ID).Count(&replies)
	if replies != 0 {
		t.Fatalf("orphaned replies = %d, want 0", replies)
	}
}

func TestDeletePermissions(t *testing.T) {
	gdb := testutil.OpenTestDB(t)
	ctx := context.Background()
	svc := service.NewDiscussionService(gdb, service.NewRoleService(gdb))

	author := testutil.CreateProfile(t, gdb, "author@test", "Author")
	other := testutil.CreateProfile(t, gdb, "other@test", "Other")
	admin := testutil.CreateProfile(t, gdb, "admin@test", "Admin")
	testutil.AssignRole(t, gdb, admin.ID, model.RoleAdmin)

	thread, err := svc.CreateThread(ctx, author.ID, "Rules question", "")
	if err != nil {
		t.Fatalf("create thread: %v", err)
	}
	reply, err := svc.CreateReply(ctx, other.ID, thread.ID, "same question")
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}

	if err := svc.DeleteReply(ctx, author.ID, reply.ID); !errors.Is(err, service.ErrNotPermitted) {
		t.Fatalf("delete reply by non-author: err = %v, want ErrNotPermitted", err)
	}
	if err := svc.DeleteReply(ctx, admin.ID, reply.ID); err != nil {
		t.Fatalf("delete reply by admin: %v", err)
	}

	if err := svc.DeleteThread(ctx, other.ID, thread.ID); !errors.Is(err, service.ErrNotPermitted) {
		t.Fatalf("delete thread by non-author: err = %v, want ErrNotPermitted", err)
	}
	if err := svc.DeleteThread(ctx, admin.ID, thread.ID); err != nil {
		t.Fatalf("delete thread by admin: %v", err)
	}
}
