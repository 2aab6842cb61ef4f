package wbdomain

import (
	"fmt"
	"time"

	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
)

// Status de campanha consultados na listagem de adverts
// (7 = ativa, 9 = pausada, 11 = finalizada)
var AdvertStatuses = []int{7, 9, 11}

// Advert é um item bruto da listagem de campanhas
type Advert struct {
	AdvertID    int64   `json:"advertId"`
	Name        string  `json:"name"`
	DailyBudget float64 `json:"dailyBudget"`
	ChangeTime  string  `json:"changeTime"`
	Status      int     `json:"status"`
}

// AdvertStats é a resposta bruta do endpoint fullstats para uma campanha,
// com o detalhamento aninhado dia × aplicativo × produto
type AdvertStats struct {
	AdvertID int64       `json:"advertId"`
	Days     []AdvertDay `json:"days"`
}

type AdvertDay struct {
	Date string      `json:"date"`
	Apps []AdvertApp `json:"apps"`
}

type AdvertApp struct {
	Nm []AdvertProduct `json:"nm"`
}

type AdvertProduct struct {
	NmID   int64   `json:"nmId"`
	Views  int64   `json:"views"`
	Clicks int64   `json:"clicks"`
	Sum    float64 `json:"sum"`
}

// Totals soma o detalhamento aninhado no lado do cliente, produzindo os
// totais acumulados da campanha
func (s AdvertStats) Totals() (impressions, clicks int64, spent float64) {
	for _, day := range s.Days {
		for _, app := range day.Apps {
			for _, nm := range app.Nm {
				impressions += nm.Views
				clicks += nm.Clicks
				spent += nm.Sum
			}
		}
	}
	return impressions, clicks, spent
}

// ToDomain combina a listagem e as estatísticas de uma campanha na entidade
// normalizada. Campanhas sem nome na listagem recebem um nome derivado do id.
func (s AdvertStats) ToDomain(accountID string, advert *Advert, now time.Time) *domain.Campaign {
	impressions, clicks, spent := s.Totals()

	campaign := &domain.Campaign{
		AccountID:   accountID,
		CampaignID:  s.AdvertID,
		Name:        fmt.Sprintf("Campaign %d", s.AdvertID),
		Spent:       spent,
		Impressions: impressions,
		Clicks:      clicks,
		UpdatedAt:   now,
	}

	if advert != nil {
		if advert.Name != "" {
			campaign.Name = advert.Name
		} else if advert.ChangeTime != "" {
			campaign.Name = advert.ChangeTime
		}
		campaign.DailyBudget = advert.DailyBudget
	}

	return campaign
}
