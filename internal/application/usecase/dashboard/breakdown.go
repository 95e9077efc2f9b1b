package dashboard

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fleet-dashboard/backend/internal/domain/entity"
)

// UnknownLabel is used for records with an empty category.
const UnknownLabel = "N/D"

// DefaultHighlight is the channel substring flagged for emphasis.
const DefaultHighlight = "walk"

// inServiceMarker marks a service event as currently active.
const inServiceMarker = "progress"

// CategoryCount is one slice of a categorical chart.
type CategoryCount struct {
	Label       string
	Count       int
	Percentage  float64 // Only set by ProviderShare
	Highlighted bool
}

// CategoryBreakdown is a list of categories plus the index of the highlighted
// one (-1 when none).
type CategoryBreakdown struct {
	Items          []CategoryCount
	HighlightIndex int
}

// LabelOrder sorts labels with locale-aware collation.
type LabelOrder struct {
	tag language.Tag
}

// NewLabelOrder creates a LabelOrder for a BCP 47 language tag.
// An unparseable tag falls back to language.Und.
func NewLabelOrder(lang string) LabelOrder {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return LabelOrder{tag: tag}
}

// Sort sorts labels in place.
func (o LabelOrder) Sort(labels []string) {
	// Collators are not safe for concurrent use; build one per call.
	collate.New(o.tag).SortStrings(labels)
}

func labelOrUnknown(s string) string {
	if s == "" {
		return UnknownLabel
	}
	return s
}

// ChannelBreakdown counts bookings per channel in first-occurrence order and
// flags the first label containing highlight (case-insensitive).
func ChannelBreakdown(bookings []entity.Booking, highlight string) CategoryBreakdown {
	counts := Count(bookings, func(b entity.Booking) string { return labelOrUnknown(b.Channel) })

	needle := strings.ToLower(highlight)
	out := CategoryBreakdown{HighlightIndex: -1}
	for i, label := range counts.Keys() {
		n, _ := counts.Get(label)
		item := CategoryCount{Label: label, Count: n}
		if out.HighlightIndex < 0 && needle != "" && strings.Contains(strings.ToLower(label), needle) {
			out.HighlightIndex = i
			item.Highlighted = true
		}
		out.Items = append(out.Items, item)
	}
	if out.Items == nil {
		out.Items = []CategoryCount{}
	}
	return out
}

// ProviderShare counts bookings per provider, sorted by count descending,
// with each provider's share of the subset in percent (one decimal).
func ProviderShare(bookings []entity.Booking) []CategoryCount {
	counts := Count(bookings, func(b entity.Booking) string { return labelOrUnknown(b.Provider) })
	items := sortedByCount(counts)

	total := len(bookings)
	if total == 0 {
		total = 1
	}
	for i := range items {
		items[i].Percentage = math.Round(float64(items[i].Count)/float64(total)*1000) / 10
	}
	return items
}

// FleetByProvider counts fleet units per provider, labels in collated order.
func FleetByProvider(fleet []entity.FleetUnit, order LabelOrder) []CategoryCount {
	counts := Count(fleet, func(f entity.FleetUnit) string { return labelOrUnknown(f.Provider) })
	labels := counts.Keys()
	order.Sort(labels)

	items := make([]CategoryCount, 0, len(labels))
	for _, label := range labels {
		n, _ := counts.Get(label)
		items = append(items, CategoryCount{Label: label, Count: n})
	}
	return items
}

// ServiceByType counts service events per maintenance type, sorted by count
// descending.
func ServiceByType(events []entity.ServiceEvent) []CategoryCount {
	counts := Count(events, func(s entity.ServiceEvent) string { return labelOrUnknown(s.Type) })
	return sortedByCount(counts)
}

// sortedByCount orders a tally by count descending; equal counts keep their
// first-occurrence order.
func sortedByCount(counts *Tally[string, int]) []CategoryCount {
	items := make([]CategoryCount, 0, counts.Len())
	for _, label := range counts.Keys() {
		n, _ := counts.Get(label)
		items = append(items, CategoryCount{Label: label, Count: n})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })
	return items
}

// BranchOccupation is one branch card of the occupation overview.
type BranchOccupation struct {
	Branch     string
	Occupation float64
}

// Occupation is the per-branch utilization plus its simple average.
type Occupation struct {
	Branches []BranchOccupation
	Average  float64
}

// OccupationOverview keeps records with a branch and a finite ratio, sorted
// by branch, and averages them. The average is zero when none remain.
func OccupationOverview(records []entity.OccupationRecord, order LabelOrder) Occupation {
	branches := make([]BranchOccupation, 0, len(records))
	for _, r := range records {
		if r.BranchOffice == "" || !r.Occupation.Valid() {
			continue
		}
		branches = append(branches, BranchOccupation{Branch: r.BranchOffice, Occupation: r.Occupation.Float()})
	}

	collator := collate.New(order.tag)
	sort.SliceStable(branches, func(i, j int) bool {
		return collator.CompareString(branches[i].Branch, branches[j].Branch) < 0
	})

	out := Occupation{Branches: branches}
	if len(branches) > 0 {
		sum := 0.0
		for _, b := range branches {
			sum += b.Occupation
		}
		out.Average = sum / float64(len(branches))
	}
	return out
}

// Fleet is the fleet size and the number of vehicles currently in service.
type Fleet struct {
	Total     int
	InService int
}

// FleetStatus counts the fleet and the distinct vehicles with an active
// service event. Plates identify vehicles; the car field is used only when no
// active event carries a plate.
func FleetStatus(fleet []entity.FleetUnit, events []entity.ServiceEvent) Fleet {
	plates := make([]string, 0)
	cars := make([]string, 0)
	for _, e := range events {
		if !strings.Contains(strings.ToLower(e.Status), inServiceMarker) {
			continue
		}
		plates = append(plates, e.LicensePlate)
		cars = append(cars, e.Car)
	}

	inService := len(DistinctNonEmpty(plates))
	if inService == 0 {
		inService = len(DistinctNonEmpty(cars))
	}

	return Fleet{Total: len(fleet), InService: inService}
}

// Options are the selectable branches and agents.
type Options struct {
	Branches []string
	Agents   []string
}

// FilterOptions lists the distinct branches and agents found in bookings,
// in collated order.
func FilterOptions(bookings []entity.Booking, order LabelOrder) Options {
	branches := make([]string, 0, len(bookings))
	agents := make([]string, 0, len(bookings))
	for _, b := range bookings {
		branches = append(branches, b.BranchOffice)
		agents = append(agents, b.Agent)
	}

	out := Options{
		Branches: DistinctNonEmpty(branches),
		Agents:   DistinctNonEmpty(agents),
	}
	order.Sort(out.Branches)
	order.Sort(out.Agents)
	return out
}
