package models

// BanUpdate represents a single record of the incremental ban update feed.
// The Active flag tells a ban apart from an unban.
type BanUpdate struct {
	User      int64    `json:"id"`           // User ID the update is about.
	Reason    string   `json:"reason"`       // Reason for the ban.
	Proof     string   `json:"proof"`        // Link to the proof of the ban.
	Moderator int64    `json:"moderator_id"` // ID of the moderator who issued the ban.
	Active    bool     `json:"active"`       // Whether the ban is in effect.
	Timestamp UnixTime `json:"timestamp"`    // Time the update was recorded.
}

// Ban represents a single entry of the global ban list.
type Ban struct {
	User          int64    `json:"id"`            // Banned user ID.
	Name          string   `json:"name"`          // Username at report time.
	Discriminator string   `json:"discriminator"` // Discriminator at report time.
	Moderator     int64    `json:"moderator_id"`  // ID of the moderator who issued the ban.
	Reason        string   `json:"reason"`        // Reason for the ban.
	Proof         string   `json:"proof"`         // Link to the proof of the ban.
	IsBanActive   bool     `json:"is_ban_active"` // Whether the ban is in effect.
	CanBeAppealed bool     `json:"can_be_appealed"`
	Timestamp     UnixTime `json:"timestamp"` // Time the ban was issued.
	AppealReason  string   `json:"appeal_reason,omitempty"`
	AppealDate    UnixTime `json:"appeal_date,omitempty"`
}

// BanInfo represents detailed information about a single ban.
type BanInfo struct {
	Ban
	RequestedBy string `json:"requested_by"` // Who requested the ban, if it came through a report.
	Exists      bool   `json:"exists"`       // Whether a ban record exists at all.
}

// BanPage represents one page of the paginated ban list.
type BanPage struct {
	BanCount     int   `json:"ban_count"`     // Total number of bans.
	PageCount    int   `json:"page_count"`    // Total number of pages.
	PerPage      int   `json:"per_page"`      // Entries per page.
	Page         int   `json:"page"`          // Current page number, 1-based.
	OnPage       int   `json:"on_page"`       // Entries on the current page.
	NextPage     int   `json:"next_page"`     // Next page number, 0 when on the last page.
	PreviousPage int   `json:"previous_page"` // Previous page number, 0 when on the first page.
	Data         []Ban `json:"data"`          // Entries of the current page.
}

// BanReport represents a new ban to be submitted to the global list.
type BanReport struct {
	User           int64  // User ID to ban.
	Username       string // Username, for record keeping.
	Discriminator  string // Discriminator, for record keeping.
	Moderator      int64  // ID of the moderator issuing the ban.
	Reason         string // Reason for the ban.
	Proof          string // Link to the proof of the ban.
	AppealPossible bool   // Whether the banned user may appeal.
}
