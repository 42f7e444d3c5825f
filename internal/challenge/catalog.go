package challenge

// The challenge, reward, and leaderboard catalogs are a curated set
// served as-is; only the caller's own stats are computed from real
// ledger data.

type Challenge struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Progress     int    `json:"progress,omitempty"`
	Total        int    `json:"total,omitempty"`
	Points       int    `json:"points"`
	EndsIn       string `json:"ends_in,omitempty"`
	StartsIn     string `json:"starts_in,omitempty"`
	CompletedAt  string `json:"completed_at,omitempty"`
	Type         string `json:"type,omitempty"`
	Participants int    `json:"participants,omitempty"`
}

type ChallengeCatalog struct {
	Active    []Challenge `json:"active"`
	Upcoming  []Challenge `json:"upcoming"`
	Completed []Challenge `json:"completed"`
}

type Reward struct {
	Title       string `json:"title"`
	Partner     string `json:"partner"`
	Description string `json:"description,omitempty"`
	PointsCost  int    `json:"points_cost"`
	ExpiresIn   string `json:"expires_in,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
}

type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Points    int    `json:"points"`
	Level     int    `json:"level"`
}

var challenges = ChallengeCatalog{
	Active: []Challenge{
		{
			ID: 1, Title: "Weekend Explorer",
			Description: "Visit 5 different locations this weekend",
			Progress:    3, Total: 5, Points: 500,
			EndsIn: "2 days", Type: "weekly", Participants: 1234,
		},
		{
			ID: 2, Title: "Foodie Adventure",
			Description: "Check in at 3 restaurants",
			Progress:    1, Total: 3, Points: 300,
			EndsIn: "5 days", Type: "category", Participants: 856,
		},
		{
			ID: 3, Title: "Nature Lover",
			Description: "Visit 4 nature spots",
			Progress:    2, Total: 4, Points: 400,
			EndsIn: "4 days", Type: "category", Participants: 1567,
		},
	},
	Upcoming: []Challenge{
		{
			ID: 4, Title: "Cultural Quest",
			Description: "Explore 5 cultural landmarks",
			Total:       5, Points: 600, StartsIn: "3 days", Type: "special",
		},
		{
			ID: 5, Title: "Adventure Seeker",
			Description: "Complete 3 adventure activities",
			Total:       3, Points: 750, StartsIn: "1 week", Type: "special",
		},
	},
	Completed: []Challenge{
		{
			ID: 6, Title: "First Steps",
			Description: "Visit your first 3 locations",
			Points:      150, CompletedAt: "2 days ago",
		},
		{
			ID: 7, Title: "Early Bird",
			Description: "Check in before 9 AM",
			Points:      100, CompletedAt: "1 week ago",
		},
	},
}

var rewards = []Reward{
	{
		Title: "20% Off Spa Treatment", Partner: "Serenity Spa",
		Description: "Relax and unwind with a complimentary spa session",
		PointsCost:  500, ExpiresIn: "7 days", Category: "Wellness",
	},
	{
		Title: "Free Coffee & Pastry", Partner: "Mountain Café",
		Description: "Enjoy a hot brew with a fresh pastry",
		PointsCost:  150, ExpiresIn: "3 days", Category: "Food & Drink",
	},
	{
		Title: "Hotel Stay Discount", Partner: "Grand Resort",
		Description: "Get 30% off your next hotel booking",
		PointsCost:  2000, ExpiresIn: "14 days", Category: "Accommodation",
	},
	{
		Title: "Adventure Tour Pass", Partner: "Thrill Seekers",
		Description: "Free entry to any adventure activity",
		PointsCost:  1200, ExpiresIn: "10 days", Category: "Experiences",
	},
	{
		Title: "Museum Entry", Partner: "Heritage Museum",
		Description: "Free admission for two people",
		PointsCost:  300, ExpiresIn: "21 days", Category: "Culture",
	},
	{
		Title: "Fine Dining Experience", Partner: "Ocean View Restaurant",
		Description: "Complimentary dessert with any main course",
		PointsCost:  400, ExpiresIn: "5 days", Category: "Food & Drink",
	},
}

var leaderboard = []LeaderboardEntry{
	{Rank: 1, Username: "TravelMaster", Points: 15420, Level: 12},
	{Rank: 2, Username: "WanderlustSoul", Points: 13890, Level: 11},
	{Rank: 3, Username: "ExplorerMax", Points: 12450, Level: 10},
	{Rank: 4, Username: "AdventureSeeker", Points: 11200, Level: 9},
	{Rank: 5, Username: "GlobeTrotter", Points: 10100, Level: 8},
}
