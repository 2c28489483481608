package model

import (
	"time"
)

const (
	ProvenanceConfirmed     = "confirmed"
	ProvenancePendingCreate = "pending-create"
	ProvenancePendingDelete = "pending-delete"
	ProvenancePendingUpdate = "pending-update"
)

type SkillList []Skill

type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s Skill) ItemID() int64 { return s.ID }

type FriendList []Friend

type Friend struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (f Friend) ItemID() int64 { return f.ID }

type BlockList []Block

// Block is one layout block of the user's page; the list is order-sensitive.
type Block struct {
	ID       int64  `json:"id"`
	Kind     string `json:"kind"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

func (b Block) ItemID() int64 { return b.ID }

type JobList []Job

type Job struct {
	ID        int64      `json:"id"`
	Company   string     `json:"company"`
	Title     string     `json:"title"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

func (j Job) ItemID() int64 { return j.ID }
