package domain

// Dashboard aggregates the working set shown on the overview screen
type Dashboard struct {
	Deals        []Deal        `json:"deals"`
	Leads        []Lead        `json:"leads"`
	Interactions []Interaction `json:"interactions"`
	Customers    []Customer    `json:"customers"`
}

// OpenDeals returns the deals that have not reached a terminal stage
func (d Dashboard) OpenDeals() []Deal {
	open := make([]Deal, 0, len(d.Deals))
	for _, deal := range d.Deals {
		if !deal.Stage.IsClosed() {
			open = append(open, deal)
		}
	}
	return open
}

// PipelineValue sums the value of all open deals
func (d Dashboard) PipelineValue() float64 {
	var total float64
	for _, deal := range d.OpenDeals() {
		total += deal.Value
	}
	return total
}
