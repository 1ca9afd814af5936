package model

import "github.com/google/uuid"

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
	Role    Role    `json:"role"`
}

type ProfileUpdateRequest struct {
	Name  string            `json:"name"`
	Links map[string]string `json:"links"`
}

type ProjectRequest struct {
	Title       string     `json:"title" binding:"required"`
	TeamName    string     `json:"team_name"`
	TeamID      *uuid.UUID `json:"team_id"`
	Description string     `json:"description"`
	Problem     string     `json:"problem"`
	Solution    string     `json:"solution"`
	Learnings   string     `json:"learnings"`
	TechStack   []string   `json:"tech_stack"`
	RepoURL     string     `json:"repo_url"`
	DemoURL     string     `json:"demo_url"`
	DeckURL     string     `json:"deck_url"`
	Status      string     `json:"status"`
}

type LikeResponse struct {
	Liked      bool `json:"liked"`
	TotalLikes int  `json:"total_likes"`
}

type ViewResponse struct {
	TotalViews int `json:"total_views"`
}

type FeedbackRequest struct {
	Scores        map[string]int `json:"scores" binding:"required"`
	PublicComment string         `json:"public_comment"`
	PrivateNote   string         `json:"private_note"`
}

// PublicFeedback is one anonymized entry of a project's public comment feed.
type PublicFeedback struct {
	PublicComment string  `json:"public_comment"`
	Average       float64 `json:"average"`
}

// FullFeedback adds judge identity and the private note; judges and admins only.
type FullFeedback struct {
	JudgeID       uuid.UUID      `json:"judge_id"`
	JudgeName     string         `json:"judge_name"`
	Scores        map[string]int `json:"scores"`
	Average       float64        `json:"average"`
	PublicComment string         `json:"public_comment"`
	PrivateNote   string         `json:"private_note"`
}

type LeaderboardEntry struct {
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
	TeamName    string    `json:"team_name"`
	ProjectAvg  float64   `json:"project_avg"`
}

type DiscussionRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

type ReplyRequest struct {
	Body string `json:"body" binding:"required"`
}

type UpdateRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

type TeamRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	MaxMembers  int    `json:"max_members"`
}

type AddMemberRequest struct {
	ProfileID uuid.UUID `json:"profile_id" binding:"required"`
	Role      TeamRole  `json:"role"`
}

type RegistrationRequest struct {
	TeamName string               `json:"team_name" binding:"required"`
	Members  []RegistrationMember `json:"members" binding:"max=4"`
}

type RegistrationMember struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type RoleRequest struct {
	Role Role `json:"role" binding:"required"`
}
