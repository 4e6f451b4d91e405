package usecase

import "github.com/polkiloo/foodbridge/internal/domain/model"

// pointUnit is the monetary amount that earns one point.
const pointUnit = 100

// ComputePoints derives the points earned by a donation history. Every monetary
// donation earns one point per whole pointUnit and every food donation earns one
// point regardless of its status. The result is never negative.
func ComputePoints(donations []model.Donation) int64 {
	var total int64
	for _, d := range donations {
		switch d.Type {
		case model.DonationTypeMonetary:
			if d.Amount > 0 {
				total += d.Amount / pointUnit
			}
		case model.DonationTypeFood:
			total++
		}
	}
	return total
}
