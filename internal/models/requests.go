// SideQuest - Social Quest Matchmaking and Engagement Analytics
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sidequest-dev/sidequest

package models

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	DisplayName   string   `json:"display_name" validate:"required,min=1,max=64"`
	Password      string   `json:"password" validate:"required,min=3,max=128"`
	DefaultEnergy string   `json:"default_energy" validate:"omitempty,oneof=low neutral high"`
	SocialStyle   string   `json:"social_style" validate:"omitempty,oneof=quiet talkative either"`
	Mode          string   `json:"mode" validate:"omitempty,oneof=online offline either"`
	Interests     []string `json:"interests" validate:"max=32,dive,max=48"`
	Area          string   `json:"area" validate:"omitempty,max=64"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// CheckinRequest is the body of POST /api/v1/users/{id}/checkin.
type CheckinRequest struct {
	Energy string `json:"energy" validate:"required,oneof=low neutral high"`
}

// CreateQuestRequest is the body of POST /api/v1/quests.
// StartTime must be RFC3339; the rfc3339 rule is registered in package
// validation.
type CreateQuestRequest struct {
	OrganizerID  string   `json:"organizer_id" validate:"required"`
	Title        string   `json:"title" validate:"required,min=1,max=120"`
	Description  string   `json:"description" validate:"max=2000"`
	Area         string   `json:"area" validate:"omitempty,max=64"`
	SocialStyle  string   `json:"social_style" validate:"omitempty,oneof=quiet talkative either"`
	Mode         string   `json:"mode" validate:"omitempty,oneof=online offline either"`
	Tags         []string `json:"tags" validate:"max=32,dive,max=48"`
	StartTime    string   `json:"start_time" validate:"required,rfc3339"`
	DurationMins int      `json:"duration_mins" validate:"required,min=10,max=240"`
	Capacity     int      `json:"capacity" validate:"required,min=2,max=50"`
}

// JoinQuestRequest is the body of POST /api/v1/quests/{id}/join.
type JoinQuestRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// CompleteQuestRequest is the body of POST /api/v1/quests/{id}/complete.
type CompleteQuestRequest struct {
	UserID              string `json:"user_id" validate:"required"`
	ConnectednessRating int    `json:"connectedness_rating" validate:"required,min=1,max=5"`
}
