package service

import "slices"

var leadSources = []string{
	"Angies List",
	"Bing",
	"Dexonline",
	"Facebook",
	"Google",
	"Magazine",
	"Mailers",
	"MSN",
	"Other",
	"Radio",
	"Realtor",
	"Referral",
	"Sales Rep",
	"Saw Truck",
	"Trade Show",
	"Yahoo",
	"Yelp",
}

// LeadSources lists where a customer may have heard of us.
func LeadSources() []string {
	return slices.Clone(leadSources)
}
