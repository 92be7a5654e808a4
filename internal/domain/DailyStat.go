package domain

import "time"

// DailyStat é uma linha de campaign_stats_history: uma campanha em um dia do calendário
type DailyStat struct {
	CampaignID string    `json:"campaign_id"`
	Date       time.Time `json:"date"`
	Leads      int       `json:"leads"`
	Cases      int       `json:"cases"`
	Retainers  int       `json:"retainers"`
	Revenue    float64   `json:"revenue"`
	AdSpend    float64   `json:"ad_spend"`
}

// DailyTotal soma as estatísticas de todas as campanhas em um mesmo dia
type DailyTotal struct {
	Date    time.Time `json:"date"`
	Leads   int       `json:"leads"`
	Cases   int       `json:"cases"`
	Revenue float64   `json:"revenue"`
	AdSpend float64   `json:"ad_spend"`
}
