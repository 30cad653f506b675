package applications

// listData is the view model for the pending applications page.
type listData struct {
	Title      string
	Flash      []string
	Count      int
	CountLabel string
	Items      []cardVM
}

// cardVM is one pending application as displayed.
type cardVM struct {
	ID            string
	PositionTitle string
	Department    string
	SubmittedOn   string
	Category      string
	HasCategory   bool
	Section       string
	ReasonExcerpt string
}

// newData is the view model for the apply form.
type newData struct {
	Title             string
	Flash             []string
	PositionID        string
	PositionTitle     string
	Department        string
	Section           string
	Category          string
	AlreadyApplied    bool
	AppliedCategories []string
}

// positionStatus is the JSON body of the per-position status endpoint.
type positionStatus struct {
	PositionID string   `json:"position_id"`
	Category   string   `json:"category,omitempty"`
	Applied    bool     `json:"applied"`
	Categories []string `json:"categories"`
}
