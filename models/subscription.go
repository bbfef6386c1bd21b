// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Subscription is the tier of a user account.
type Subscription string

const (
	// Starter is the tier every account gets at registration unless another one is requested.
	Starter Subscription = "starter"
	// Pro is the intermediate tier.
	Pro Subscription = "pro"
	// Business is the highest tier.
	Business Subscription = "business"
)

// DefaultSubscription is assigned to newly registered users.
const DefaultSubscription = Starter

// Subscriptions lists all known tiers in ascending order.
var Subscriptions = []Subscription{Starter, Pro, Business}

// IsValid reports whether s is one of the known tiers.
func (s Subscription) IsValid() bool {
	switch s {
	case Starter, Pro, Business:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (s Subscription) String() string {
	return string(s)
}
