package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-analytics-api/internal/domain"
	"github.com/vfg2006/marketplace-analytics-api/pkg/utils"
)

type CampaignRepository interface {
	SaveOrUpdateBatch(campaigns []*domain.Campaign) (int, error)
	ListByPeriod(accountID, startDate, endDate string) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// SaveOrUpdateBatch insere ou atualiza campanhas em lotes, chaveadas pelo
// campaign_id externo. Os valores de gasto e tráfego são acumulados da fonte,
// então a atualização sempre sobrescreve
func (r *campaignRepository) SaveOrUpdateBatch(campaigns []*domain.Campaign) (int, error) {
	total := 0

	for _, batch := range utils.Chunk(campaigns, upsertBatchSize) {
		queryBuilder := squirrel.
			Insert("campaigns").
			Columns(
				"account_id", "campaign_id", "name", "daily_budget",
				"spent", "impressions", "clicks", "updated_at",
			).
			Suffix(`ON CONFLICT (campaign_id) DO UPDATE SET
				name = EXCLUDED.name,
				daily_budget = EXCLUDED.daily_budget,
				spent = EXCLUDED.spent,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				updated_at = EXCLUDED.updated_at`).
			PlaceholderFormat(squirrel.Dollar)

		for _, campaign := range batch {
			queryBuilder = queryBuilder.Values(
				campaign.AccountID, campaign.CampaignID, campaign.Name,
				campaign.DailyBudget, campaign.Spent, campaign.Impressions,
				campaign.Clicks, campaign.UpdatedAt,
			)
		}

		query, args, err := queryBuilder.ToSql()
		if err != nil {
			return total, fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.Exec(query, args...); err != nil {
			return total, fmt.Errorf("erro ao executar a query: %w", err)
		}

		total += len(batch)
	}

	return total, nil
}

// ListByPeriod retorna as campanhas tocadas pela sincronização dentro da
// janela informada. O filtro usa a data da última atualização: campanhas que
// pararam de gastar antes da janela não entram no cálculo de despesas dela.
func (r *campaignRepository) ListByPeriod(accountID, startDate, endDate string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(
			"c.id, c.account_id, c.campaign_id, c.name, c.daily_budget",
			"c.spent, c.impressions, c.clicks, c.updated_at",
		).
		From("campaigns c").
		Where(squirrel.Eq{"c.account_id": accountID}).
		Where(squirrel.Expr("c.updated_at::date >= ?", startDate)).
		Where(squirrel.Expr("c.updated_at::date <= ?", endDate)).
		OrderBy("c.spent DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)

	for rows.Next() {
		campaign := &domain.Campaign{}

		if err := rows.Scan(
			&campaign.ID,
			&campaign.AccountID,
			&campaign.CampaignID,
			&campaign.Name,
			&campaign.DailyBudget,
			&campaign.Spent,
			&campaign.Impressions,
			&campaign.Clicks,
			&campaign.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear a campanha: %w", err)
		}

		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return campaigns, nil
}
