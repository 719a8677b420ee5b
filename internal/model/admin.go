package model

// UnknownOwner is shown for pages whose owner has no profile.
const UnknownOwner = "Desconhecido"

// DashboardTotals are the counters at the top of the admin dashboard.
type DashboardTotals struct {
	Users     int `json:"users"`
	Pages     int `json:"pages"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
}

// AdminPage is a page listed for administrators together with its owner's email.
type AdminPage struct {
	PageSummary
	OwnerEmail string `json:"owner_email"`
}

// AdminUser is a profile with its page count and admin flag.
type AdminUser struct {
	Profile
	PageCount int  `json:"page_count"`
	IsAdmin   bool `json:"is_admin"`
}

// Dashboard is the full admin overview.
type Dashboard struct {
	Totals         DashboardTotals `json:"totals"`
	CustomersCount int             `json:"customers_count"`
	Pages          []AdminPage     `json:"pages"`
	Users          []AdminUser     `json:"users"`
}
