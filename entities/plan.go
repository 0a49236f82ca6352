package entities

import "time"

type (
	BillingInterval    string
	SubscriptionStatus string
	Feature            string
)

const (
	IntervalMonth BillingInterval = "month"
	IntervalYear  BillingInterval = "year"

	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionUnpaid   SubscriptionStatus = "unpaid"

	FeatureFoodRecognition Feature = "food_recognition"
	FeatureBodyAnalysis    Feature = "body_analysis"
	FeatureWorkouts        Feature = "workouts"
	FeatureRecipes         Feature = "recipes"
	FeatureAIChat          Feature = "ai_chat"
	FeatureReports         Feature = "reports"
)

type Plan struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"`
	Currency string          `json:"currency"`
	Interval BillingInterval `json:"interval"`
	Features []string        `json:"features"`
	Popular  bool            `json:"popular"`
	Access   []Feature       `json:"-"`
}

type UserSubscription struct {
	ID               string             `json:"id"`
	PlanID           string             `json:"planId"`
	Status           SubscriptionStatus `json:"status"`
	CurrentPeriodEnd time.Time          `json:"currentPeriodEnd"`
	CancelAtEnd      bool               `json:"cancelAtPeriodEnd"`
}
