// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleet-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/fleet-dashboard/backend/internal/domain/valueobject"
)

// DashboardResponse represents the response for the dashboard API.
type DashboardResponse struct {
	Data DashboardData `json:"data"`
}

// DashboardData is the full set of dashboard values for a filter.
type DashboardData struct {
	SnapshotID      string                   `json:"snapshot_id"`
	Filter          FilterResponse           `json:"filter"`
	KPIs            KPIResponse              `json:"kpis"`
	Channels        ChannelBreakdownResponse `json:"channels"`
	Providers       []CategoryCountResponse  `json:"providers"`
	Trend           TrendResponse            `json:"trend"`
	MonthDaily      DailySeriesResponse      `json:"month_daily"`
	Table           []SummaryRowResponse     `json:"table"`
	FleetByProvider []CategoryCountResponse  `json:"fleet_by_provider"`
	ServiceByType   []CategoryCountResponse  `json:"service_by_type"`
	Occupation      OccupationResponse       `json:"occupation"`
	Fleet           FleetResponse            `json:"fleet"`
}

// FilterResponse echoes the resolved filter state.
type FilterResponse struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Branches  []string `json:"branches"`
	Agents    []string `json:"agents"`
}

// KPIResponse represents the headline indicators.
type KPIResponse struct {
	TotalRevenue      float64  `json:"total_revenue"`
	TotalAncillaries  float64  `json:"total_ancillaries"`
	TotalDurationDays int64    `json:"total_duration_days"`
	RevenuePerDay     float64  `json:"revenue_per_day"`
	AncillariesPerDay float64  `json:"ancillaries_per_day"`
	IncidentCost      float64  `json:"incident_cost"`
	BookingCount      int      `json:"booking_count"`
	AverageDuration   *float64 `json:"average_duration"`
}

// CategoryCountResponse represents one slice of a categorical chart.
type CategoryCountResponse struct {
	Label       string   `json:"label"`
	Count       int      `json:"count"`
	Percentage  *float64 `json:"percentage,omitempty"`
	Highlighted bool     `json:"highlighted,omitempty"`
}

// ChannelBreakdownResponse represents bookings per channel.
type ChannelBreakdownResponse struct {
	Items          []CategoryCountResponse `json:"items"`
	HighlightIndex int                     `json:"highlight_index"`
}

// DailySeriesResponse represents a gap-filled daily series.
type DailySeriesResponse struct {
	Labels   []string  `json:"labels"`
	Counts   []int     `json:"counts"`
	Revenues []float64 `json:"revenues"`
}

// TrendResponse is the range series with the fleet size line.
type TrendResponse struct {
	DailySeriesResponse
	Fleet []int `json:"fleet"`
}

// SummaryRowResponse represents one line of the summary table.
type SummaryRowResponse struct {
	Branch       string  `json:"branch"`
	Agent        string  `json:"agent"`
	Revenue      float64 `json:"revenue"`
	Ancillaries  float64 `json:"ancillaries"`
	BookingCount int     `json:"booking_count"`
}

// BranchOccupationResponse represents one branch utilization card.
type BranchOccupationResponse struct {
	Branch     string  `json:"branch"`
	Occupation float64 `json:"occupation"`
}

// OccupationResponse represents the occupation overview.
type OccupationResponse struct {
	Branches []BranchOccupationResponse `json:"branches"`
	Average  float64                    `json:"average"`
}

// FleetResponse represents the fleet status.
type FleetResponse struct {
	Total     int `json:"total"`
	InService int `json:"in_service"`
}

// ToDashboardResponse converts a GetDashboardOutput to DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	providers := toCategoryCounts(output.Providers)
	for i := range providers {
		pct := output.Providers[i].Percentage
		providers[i].Percentage = &pct
	}

	return DashboardResponse{
		Data: DashboardData{
			SnapshotID: output.SnapshotID.String(),
			Filter:     ToFilterResponse(output.Filter),
			KPIs:       ToKPIResponse(output.KPIs),
			Channels: ChannelBreakdownResponse{
				Items:          toCategoryCounts(output.Channels.Items),
				HighlightIndex: output.Channels.HighlightIndex,
			},
			Providers: providers,
			Trend: TrendResponse{
				DailySeriesResponse: toDailySeries(output.Trend.DailySeries),
				Fleet:               output.Trend.Fleet,
			},
			MonthDaily:      toDailySeries(output.MonthDaily),
			Table:           ToSummaryRows(output.Table),
			FleetByProvider: toCategoryCounts(output.FleetByProvider),
			ServiceByType:   toCategoryCounts(output.ServiceByType),
			Occupation:      toOccupation(output.Occupation),
			Fleet: FleetResponse{
				Total:     output.Fleet.Total,
				InService: output.Fleet.InService,
			},
		},
	}
}

// ToFilterResponse converts a filter state.
func ToFilterResponse(state valueobject.FilterState) FilterResponse {
	return FilterResponse{
		StartDate: state.Start,
		EndDate:   state.End,
		Branches:  state.Branches.Values(),
		Agents:    state.Agents.Values(),
	}
}

// ToKPIResponse converts the KPI set.
func ToKPIResponse(k dashboard.KPIs) KPIResponse {
	var avg *float64
	if k.AverageDuration != nil {
		f := toFloat(*k.AverageDuration)
		avg = &f
	}

	return KPIResponse{
		TotalRevenue:      toFloat(k.TotalRevenue),
		TotalAncillaries:  toFloat(k.TotalAncillaries),
		TotalDurationDays: k.TotalDurationDays,
		RevenuePerDay:     toFloat(k.RevenuePerDay),
		AncillariesPerDay: toFloat(k.AncillariesPerDay),
		IncidentCost:      toFloat(k.IncidentCost),
		BookingCount:      k.BookingCount,
		AverageDuration:   avg,
	}
}

// ToSummaryRows converts the summary table.
func ToSummaryRows(rows []dashboard.SummaryRow) []SummaryRowResponse {
	out := make([]SummaryRowResponse, len(rows))
	for i, r := range rows {
		out[i] = SummaryRowResponse{
			Branch:       r.Branch,
			Agent:        r.Agent,
			Revenue:      toFloat(r.Revenue),
			Ancillaries:  toFloat(r.Ancillaries),
			BookingCount: r.BookingCount,
		}
	}
	return out
}

func toCategoryCounts(items []dashboard.CategoryCount) []CategoryCountResponse {
	out := make([]CategoryCountResponse, len(items))
	for i, item := range items {
		out[i] = CategoryCountResponse{
			Label:       item.Label,
			Count:       item.Count,
			Highlighted: item.Highlighted,
		}
	}
	return out
}

func toDailySeries(s dashboard.DailySeries) DailySeriesResponse {
	revenues := make([]float64, len(s.Revenues))
	for i, r := range s.Revenues {
		revenues[i] = toFloat(r)
	}
	labels := s.Labels
	if labels == nil {
		labels = []string{}
	}
	counts := s.Counts
	if counts == nil {
		counts = []int{}
	}
	return DailySeriesResponse{
		Labels:   labels,
		Counts:   counts,
		Revenues: revenues,
	}
}

func toOccupation(o dashboard.Occupation) OccupationResponse {
	branches := make([]BranchOccupationResponse, len(o.Branches))
	for i, b := range o.Branches {
		branches[i] = BranchOccupationResponse{Branch: b.Branch, Occupation: b.Occupation}
	}
	return OccupationResponse{
		Branches: branches,
		Average:  o.Average,
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// OptionsResponse represents the filter options.
type OptionsResponse struct {
	Branches []string       `json:"branches"`
	Agents   []string       `json:"agents"`
	Range    WindowResponse `json:"range"`
	Month    WindowResponse `json:"month"`
}

// WindowResponse represents a closed date window.
type WindowResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ToOptionsResponse converts a GetOptionsOutput to OptionsResponse DTO.
func ToOptionsResponse(output *dashboard.GetOptionsOutput) OptionsResponse {
	return OptionsResponse{
		Branches: output.Branches,
		Agents:   output.Agents,
		Range:    WindowResponse{StartDate: output.Range.Start, EndDate: output.Range.End},
		Month:    WindowResponse{StartDate: output.Month.Start, EndDate: output.Month.End},
	}
}

// StatusResponse represents the dataset status.
type StatusResponse struct {
	Loaded       bool    `json:"loaded"`
	Message      string  `json:"message"`
	SnapshotID   *string `json:"snapshot_id,omitempty"`
	LoadedAt     *string `json:"loaded_at,omitempty"`
	BookingCount int     `json:"booking_count"`
}

// ToStatusResponse converts a GetStatusOutput to StatusResponse DTO.
func ToStatusResponse(output *dashboard.GetStatusOutput) StatusResponse {
	resp := StatusResponse{
		Loaded:       output.Loaded,
		Message:      output.Message,
		BookingCount: output.BookingCount,
	}
	if output.SnapshotID != nil {
		id := output.SnapshotID.String()
		resp.SnapshotID = &id
	}
	if output.LoadedAt != nil {
		at := output.LoadedAt.UTC().Format(time.RFC3339)
		resp.LoadedAt = &at
	}
	return resp
}
