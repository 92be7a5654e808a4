package analyzing

import (
	"fmt"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const dateLayout = "2006-01-02"

const systemPromptTemplate = `You are TortShark's campaign analyst, an expert in paid acquisition for mass-tort legal leads.
You help a law-firm marketing team understand campaign performance and decide what to do next.

Rules:
- Base every statement on the DATA below. Never invent numbers.
- Currency values are USD. Fields ending in "Change" or "Trend" are already percentages.
- ROAS is revenue / ad spend. CPL is ad spend / leads. Portfolio ROAS and CPL are spend-weighted.
- capacityFillPercent is leads in the window over (targetLeadsPerDay x daysInWindow). null means no target is configured, not zero.
- A change marked tooRecent has no complete day of data after it yet: say it is too early to measure, do not guess.
- The change day itself is excluded from both the before and after windows.

Analysis window: %s to %s (%s). Today (%s) is excluded because its data is incomplete.

DATA:
%s`

const reportInstruction = `Write a complete performance report in Markdown using exactly these sections:

## Executive Summary
Two or three sentences on overall portfolio health in this window.

## Portfolio Metrics
Spend, revenue, ROAS, leads, CPL, cases and retainers, with a short interpretation.

## Campaign Breakdown
One bullet per campaign: spend, leads, CPL, ROAS, CPL trend and capacity fill when a target exists.

## Change Impact
For each logged change: what changed, when, and the before/after effect on CPL, ROAS and leads per day. Call out changes that are too recent to measure.

## Risks
Campaigns with rising CPL, ROAS below target or under-filled capacity.

## Recommendations
Three to five concrete, prioritized actions.`

const briefingInstruction = `Write this morning's briefing for yesterday's performance.
Return at most 3 bullet points, one line each, most important first.
Each bullet names the campaign (or "Portfolio") and one number that matters.
No headings, no introduction, no closing remarks.`

type promptData struct {
	WorkspaceID    string                  `json:"workspaceId"`
	AnalysisPeriod domain.AnalysisPeriod   `json:"analysisPeriod"`
	StartDate      string                  `json:"startDate"`
	EndDate        string                  `json:"endDate"`
	Portfolio      domain.PortfolioMetrics `json:"portfolio"`
	ChangeImpacts  []impactView            `json:"changeImpacts"`
	DailyTotals    []dailyTotalView        `json:"dailyTotals"`
}

type impactView struct {
	Campaign    string              `json:"campaign"`
	ChangeType  domain.ChangeType   `json:"changeType"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	ChangeDate  string              `json:"changeDate"`
	TooRecent   bool                `json:"tooRecent"`
	Before      *windowView         `json:"before"`
	After       *windowView         `json:"after"`
	Impact      *domain.ImpactDelta `json:"impact"`
}

type windowView struct {
	Start string `json:"start"`
	End   string `json:"end"`
	domain.Metrics
}

type dailyTotalView struct {
	Date    string  `json:"date"`
	Leads   int     `json:"leads"`
	Cases   int     `json:"cases"`
	Revenue float64 `json:"revenue"`
	AdSpend float64 `json:"adSpend"`
}

// BuildPrompt serializa o payload e monta as mensagens do modo pedido.
// O payload não é alterado: os arredondamentos acontecem em cópias.
func BuildPrompt(mode domain.AnalysisMode, payload *domain.AnalysisPayload, history []domain.ChatMessage, model string) (*domain.LLMRequest, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: payload vazio", ErrBuildPrompt)
	}

	data, err := json.MarshalIndent(newPromptData(payload), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildPrompt, err)
	}

	window := payload.Window
	messages := []domain.ChatMessage{{
		Role: domain.RoleSystem,
		Content: fmt.Sprintf(systemPromptTemplate,
			window.Start.Format(dateLayout),
			window.End.Format(dateLayout),
			window.Period,
			window.Today().Format(dateLayout),
			data,
		),
	}}

	switch mode {
	case domain.AnalysisModeChat:
		messages = append(messages, slices.Clone(history)...)
	case domain.AnalysisModeBriefing:
		messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: briefingInstruction})
	case domain.AnalysisModeReport:
		messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: reportInstruction})
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	return &domain.LLMRequest{
		Model:    model,
		Messages: messages,
		Stream:   true,
	}, nil
}

func newPromptData(payload *domain.AnalysisPayload) promptData {
	data := promptData{
		WorkspaceID:    payload.WorkspaceID,
		AnalysisPeriod: payload.Window.Period,
		StartDate:      payload.Window.Start.Format(dateLayout),
		EndDate:        payload.Window.End.Format(dateLayout),
		Portfolio:      roundPortfolio(payload.Portfolio),
		ChangeImpacts:  make([]impactView, 0, len(payload.ChangeImpacts)),
		DailyTotals:    make([]dailyTotalView, 0, len(payload.DailyTotals)),
	}

	for _, ci := range payload.ChangeImpacts {
		view := impactView{
			Campaign:    ci.Change.CampaignName,
			ChangeType:  ci.Change.ChangeType,
			Title:       ci.Change.Title,
			Description: ci.Change.Description,
			ChangeDate:  ci.Change.ChangeDate.Format(dateLayout),
			TooRecent:   ci.TooRecent,
			Before:      roundWindow(ci.Before),
			After:       roundWindow(ci.After),
		}
		if ci.Impact != nil {
			view.Impact = &domain.ImpactDelta{
				CPLChange:         utils.RoundWithTwoDecimalPlace(ci.Impact.CPLChange),
				ROASChange:        utils.RoundWithTwoDecimalPlace(ci.Impact.ROASChange),
				LeadsPerDayChange: utils.RoundWithTwoDecimalPlace(ci.Impact.LeadsPerDayChange),
			}
		}
		data.ChangeImpacts = append(data.ChangeImpacts, view)
	}

	for _, total := range payload.DailyTotals {
		data.DailyTotals = append(data.DailyTotals, dailyTotalView{
			Date:    total.Date.Format(dateLayout),
			Leads:   total.Leads,
			Cases:   total.Cases,
			Revenue: utils.RoundWithTwoDecimalPlace(total.Revenue),
			AdSpend: utils.RoundWithTwoDecimalPlace(total.AdSpend),
		})
	}

	return data
}

func roundPortfolio(p domain.PortfolioMetrics) domain.PortfolioMetrics {
	rounded := p
	rounded.TotalSpend = utils.RoundWithTwoDecimalPlace(p.TotalSpend)
	rounded.TotalRevenue = utils.RoundWithTwoDecimalPlace(p.TotalRevenue)
	rounded.ROAS = utils.RoundWithTwoDecimalPlace(p.ROAS)
	rounded.CostPerLead = utils.RoundWithTwoDecimalPlace(p.CostPerLead)

	rounded.Campaigns = make([]domain.CampaignSummary, len(p.Campaigns))
	for i, c := range p.Campaigns {
		c.Metrics = roundMetrics(c.Metrics)
		c.TargetLeadsPerDay = roundPtr(c.TargetLeadsPerDay)
		c.CapacityFillPercent = roundPtr(c.CapacityFillPercent)
		c.TargetROAS = roundPtr(c.TargetROAS)
		c.ROASVsTarget = roundPtr(c.ROASVsTarget)
		rounded.Campaigns[i] = c
	}

	return rounded
}

func roundWindow(w *domain.WindowMetrics) *windowView {
	if w == nil {
		return nil
	}
	return &windowView{
		Start:   w.Start.Format(dateLayout),
		End:     w.End.Format(dateLayout),
		Metrics: roundMetrics(w.Metrics),
	}
}

func roundMetrics(m domain.Metrics) domain.Metrics {
	m.TotalSpend = utils.RoundWithTwoDecimalPlace(m.TotalSpend)
	m.TotalRevenue = utils.RoundWithTwoDecimalPlace(m.TotalRevenue)
	m.CostPerLead = utils.RoundWithTwoDecimalPlace(m.CostPerLead)
	m.ROAS = utils.RoundWithTwoDecimalPlace(m.ROAS)
	m.AvgLeadsPerDay = utils.RoundWithTwoDecimalPlace(m.AvgLeadsPerDay)
	m.AvgSpendPerDay = utils.RoundWithTwoDecimalPlace(m.AvgSpendPerDay)
	m.CPLTrend = utils.RoundWithTwoDecimalPlace(m.CPLTrend)
	return m
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := utils.RoundWithTwoDecimalPlace(*v)
	return &rounded
}
