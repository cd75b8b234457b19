package dto

type OrganizerStatsResponse struct {
	Venues      int `json:"venues"`
	InvitesSent int `json:"invites_sent"`
	Favorites   int `json:"favorites"`
	OpenEvents  int `json:"open_events"`
}
