package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Profile struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `json:"-"`
	Name      string         `json:"name"`
	Links     datatypes.JSON `json:"links,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type RoleAssignment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	ProfileID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"profile_id"`
	Role      Role      `gorm:"not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Team struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`
	MaxMembers  int       `gorm:"default:5" json:"max_members"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type TeamMember struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	TeamID    uuid.UUID `gorm:"type:uuid;uniqueIndex:uk_team_profile;not null" json:"team_id"`
	ProfileID uuid.UUID `gorm:"type:uuid;uniqueIndex:uk_team_profile;not null" json:"profile_id"`
	Role      TeamRole  `gorm:"default:member" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Project struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	TeamName    string         `json:"team_name"`
	TeamID      *uuid.UUID     `gorm:"type:uuid" json:"team_id,omitempty"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;index;not null" json:"owner_id"`
	Description string         `json:"description"`
	Problem     string         `json:"problem"`
	Solution    string         `json:"solution"`
	Learnings   string         `json:"learnings"`
	TechStack   datatypes.JSON `json:"tech_stack,omitempty"`
	RepoURL     string         `json:"repo_url"`
	DemoURL     string         `json:"demo_url"`
	DeckURL     string         `json:"deck_url"`
	Likes       int            `gorm:"default:0" json:"likes"`
	Views       int            `gorm:"default:0" json:"views"`
	Status      string         `gorm:"default:draft" json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type Like struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;uniqueIndex:uk_project_liker;not null" json:"project_id"`
	ProfileID uuid.UUID `gorm:"type:uuid;uniqueIndex:uk_project_liker;not null" json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
}

type View struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	ProjectID uuid.UUID  `gorm:"type:uuid;index;not null" json:"project_id"`
	ProfileID *uuid.UUID `gorm:"type:uuid" json:"profile_id,omitempty"`
	Origin    string     `json:"origin,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type JudgeFeedback struct {
	ID            int            `gorm:"primaryKey" json:"id"`
	ProjectID     uuid.UUID      `gorm:"type:uuid;uniqueIndex:uk_project_judge;not null" json:"project_id"`
	JudgeID       uuid.UUID      `gorm:"type:uuid;uniqueIndex:uk_project_judge;not null" json:"judge_id"`
	Scores        datatypes.JSON `json:"scores"`
	PublicComment string         `json:"public_comment"`
	PrivateNote   string         `json:"-"`
	Average       float64        `json:"average"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type Discussion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Body       string    `json:"body"`
	AuthorID   uuid.UUID `gorm:"type:uuid;index;not null" json:"author_id"`
	ReplyCount int       `gorm:"default:0" json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type Reply struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DiscussionID uuid.UUID  `gorm:"type:uuid;index;not null" json:"discussion_id"`
	Discussion   Discussion `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Body         string     `gorm:"not null" json:"body"`
	AuthorID     uuid.UUID  `gorm:"type:uuid;not null" json:"author_id"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Update struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `json:"body"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Registration struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProfileID uuid.UUID      `gorm:"type:uuid;index;not null" json:"profile_id"`
	TeamName  string         `gorm:"not null" json:"team_name"`
	Members   datatypes.JSON `json:"members,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (p *Profile) BeforeCreate(*gorm.DB) error      { return ensureID(&p.ID) }
func (t *Team) BeforeCreate(*gorm.DB) error         { return ensureID(&t.ID) }
func (p *Project) BeforeCreate(*gorm.DB) error      { return ensureID(&p.ID) }
func (d *Discussion) BeforeCreate(*gorm.DB) error   { return ensureID(&d.ID) }
func (r *Reply) BeforeCreate(*gorm.DB) error        { return ensureID(&r.ID) }
func (u *Update) BeforeCreate(*gorm.DB) error       { return ensureID(&u.ID) }
func (r *Registration) BeforeCreate(*gorm.DB) error { return ensureID(&r.ID) }

func ensureID(id *uuid.UUID) error {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	return nil
}

func (Profile) TableName() string        { return "profiles" }
func (RoleAssignment) TableName() string { return "role_assignments" }
func (Team) TableName() string           { return "teams" }
func (TeamMember) TableName() string     { return "team_members" }
func (Project) TableName() string        { return "projects" }
func (Like) TableName() string           { return "project_likes" }
func (View) TableName() string           { return "project_views" }
func (JudgeFeedback) TableName() string  { return "judge_feedback" }
func (Discussion) TableName() string     { return "discussions" }
func (Reply) TableName() string          { return "discussion_replies" }
func (Update) TableName() string         { return "updates" }
func (Registration) TableName() string   { return "registrations" }
