package domain

import "time"

// Campaign representa uma campanha publicitária com os totais acumulados
// reportados pela fonte (não incrementais)
type Campaign struct {
	ID          int64     `json:"id"`
	AccountID   string    `json:"account_id"`
	CampaignID  int64     `json:"campaign_id"`
	Name        string    `json:"name"`
	DailyBudget float64   `json:"daily_budget"`
	Spent       float64   `json:"spent"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	UpdatedAt   time.Time `json:"updated_at"`
}
