package http

import (
	"time"

	"github.com/rewardo/reward-flight-search/internal/domain"
)

// ToPageDTO converts a domain page of reward flights to its wire shape.
func ToPageDTO(page domain.Page[domain.RewardFlight]) PageDTO {
	content := make([]RewardFlightDTO, len(page.Content))
	for i := range page.Content {
		content[i] = ToRewardFlightDTO(&page.Content[i])
	}

	return PageDTO{
		Content:       content,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

// ToRewardFlightDTO converts a domain RewardFlight to a RewardFlightDTO.
func ToRewardFlightDTO(flight *domain.RewardFlight) RewardFlightDTO {
	return RewardFlightDTO{
		ID:                  flight.ID,
		Origin:              flight.Origin,
		Destination:         flight.Destination,
		Departure:           flight.Departure,
		CarrierCode:         flight.CarrierCode,
		ScrapedAt:           flight.ScrapedAt.UTC().Format(time.RFC3339),
		AwardEconomy:        toAwardOfferDTO(flight.AwardEconomy),
		AwardBusiness:       toAwardOfferDTO(flight.AwardBusiness),
		AwardPremiumEconomy: toAwardOfferDTO(flight.AwardPremiumEconomy),
		AwardFirst:          toAwardOfferDTO(flight.AwardFirst),
	}
}

// toAwardOfferDTO converts one cabin's offer; absence stays absence.
func toAwardOfferDTO(offer *domain.AwardOffer) *AwardOfferDTO {
	if offer == nil {
		return nil
	}
	return &AwardOfferDTO{
		ID:                        offer.ID,
		CabinPointsValue:          offer.CabinPointsValue,
		IsSaverAward:              offer.IsSaverAward,
		CabinClassSeatCount:       offer.CabinClassSeatCount,
		CabinClassSeatCountString: offer.CabinClassSeatCountString,
	}
}
