package http

// PageDTO is the pagination envelope returned by both search endpoints.
// It matches the published API output format with snake_case fields.
type PageDTO struct {
	Content       []RewardFlightDTO `json:"content"`
	PageNumber    int               `json:"page_number"`
	PageSize      int               `json:"page_size"`
	TotalElements int64             `json:"total_elements"`
	TotalPages    int               `json:"total_pages"`
}

// RewardFlightDTO is the data transfer object for one reward flight.
type RewardFlightDTO struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Departure is the calendar departure date in YYYY-MM-DD format
	Departure   string `json:"departure"`
	CarrierCode string `json:"carrier_code"`

	// ScrapedAt is the capture timestamp in RFC 3339 format
	ScrapedAt string `json:"scraped_at"`

	// Per-cabin award offers; null when the cabin has no award inventory
	AwardEconomy        *AwardOfferDTO `json:"award_economy"`
	AwardBusiness       *AwardOfferDTO `json:"award_business"`
	AwardPremiumEconomy *AwardOfferDTO `json:"award_premium_economy"`
	AwardFirst          *AwardOfferDTO `json:"award_first"`
}

// AwardOfferDTO is the data transfer object for one cabin's award offer.
// Optional attributes serialize as null when the source row omitted them.
type AwardOfferDTO struct {
	ID                        string  `json:"id"`
	CabinPointsValue          *int    `json:"cabin_points_value"`
	IsSaverAward              *bool   `json:"is_saver_award"`
	CabinClassSeatCount       *int    `json:"cabin_class_seat_count"`
	CabinClassSeatCountString *string `json:"cabin_class_seat_count_string"`
}
