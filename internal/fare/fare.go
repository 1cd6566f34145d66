// Package fare implements the subway fare policy: a distance-tiered base fare,
// the surcharge of the most expensive line on the path and an age discount.
package fare

import (
	"errors"
	"fmt"
)

const (
	baseFare = 1250

	// distance tiers, km
	firstTierLimit  = 10
	secondTierLimit = 50
	secondTierStep  = 5
	thirdTierStep   = 8
	stepFare        = 100

	// part of the fare never discounted
	discountExemption = 350

	childMinAge    = 6
	teenagerMinAge = 13
	adultMinAge    = 19

	// percent
	childDiscountRate    = 50
	teenagerDiscountRate = 20
)

var (
	// ErrInvalidAge is returned when an authenticated age is negative.
	ErrInvalidAge = errors.New("fare: age must not be negative")

	// ErrInvalidInput is returned for a negative distance or surcharge.
	ErrInvalidInput = errors.New("fare: distance and surcharge must not be negative")
)

// Calculate returns the fare for a path of the given total distance.
// surcharge is the highest surcharge among the lines used; age is nil for
// anonymous requests. The result is floored to a multiple of 10.
func Calculate(distance, surcharge int, age *int) (int, error) {
	if distance < 0 || surcharge < 0 {
		return 0, fmt.Errorf("%w: distance=%d surcharge=%d", ErrInvalidInput, distance, surcharge)
	}
	if age != nil && *age < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAge, *age)
	}

	total := BaseFare(distance) + surcharge
	rate := DiscountRate(age)

	// scaled by 100 to stay in integer arithmetic
	scaled := total*100 - (total-discountExemption)*rate
	return scaled / 1000 * 10, nil
}

// BaseFare returns the distance-tiered fare before surcharge and discount.
func BaseFare(distance int) int {
	switch {
	case distance <= firstTierLimit:
		return baseFare
	case distance <= secondTierLimit:
		return baseFare + ceilDiv(distance-firstTierLimit, secondTierStep)*stepFare
	default:
		return baseFare +
			ceilDiv(secondTierLimit-firstTierLimit, secondTierStep)*stepFare +
			ceilDiv(distance-secondTierLimit, thirdTierStep)*stepFare
	}
}

// DiscountRate returns the discount percentage for an age bracket.
func DiscountRate(age *int) int {
	if age == nil {
		return 0
	}
	switch a := *age; {
	case a >= childMinAge && a < teenagerMinAge:
		return childDiscountRate
	case a >= teenagerMinAge && a < adultMinAge:
		return teenagerDiscountRate
	default:
		return 0
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
