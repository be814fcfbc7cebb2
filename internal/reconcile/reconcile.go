// Package reconcile merges raw rate items from all of a state's query
// points into one normalized record per utility identity, backfilling
// known major utilities that the geographic queries missed.
package reconcile

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/solarcrm/ratesync/internal/extract"
	"github.com/solarcrm/ratesync/internal/models"
	"github.com/solarcrm/ratesync/internal/reference"
)

// RateSource is the slice of the API client the reconciler needs.
type RateSource interface {
	QueryRegion(ctx context.Context, lat, lon float64) ([]models.RawRateItem, error)
	QueryUtility(ctx context.Context, name string) ([]models.RawRateItem, error)
}

// Reconciler builds the per-state utility record set. It waits on the
// shared pacing limiter after every query, geographic or direct-name, so
// the upstream service sees one steady request cadence.
type Reconciler struct {
	source  RateSource
	tables  *reference.Tables
	limiter *rate.Limiter
	now     func() time.Time
	logger  *logrus.Logger
}

func New(source RateSource, tables *reference.Tables, limiter *rate.Limiter, logger *logrus.Logger) *Reconciler {
	return &Reconciler{
		source:  source,
		tables:  tables,
		limiter: limiter,
		now:     time.Now,
		logger:  logger,
	}
}

// candidate is one raw item attributed to a utility identity.
type candidate struct {
	id   string
	name string
	item models.RawRateItem
}

// State reconciles one state's utilities. A failed query is logged and
// treated as zero items; the only error returned is context cancellation
// from the pacing limiter.
func (r *Reconciler) State(ctx context.Context, state string) ([]models.UtilityRecord, error) {
	known := r.tables.KnownUtilities[state]

	var candidates []candidate
	for _, point := range r.tables.QueryPoints[state] {
		r.logger.WithFields(logrus.Fields{
			"state": state,
			"point": point.Label,
			"lat":   point.Lat,
			"lon":   point.Lon,
		}).Info("querying region")

		items, err := r.source.QueryRegion(ctx, point.Lat, point.Lon)
		if err != nil {
			r.logger.WithFields(logrus.Fields{
				"state": state,
				"point": point.Label,
			}).WithError(err).Warn("geographic query failed, continuing with zero items")
		}
		for _, item := range items {
			// Items without an EIA identifier cannot be deduplicated
			// across query points and are dropped.
			if item.EIAID == 0 {
				continue
			}
			candidates = append(candidates, candidate{
				id:   strconv.FormatInt(item.EIAID, 10),
				name: item.Utility,
				item: item,
			})
		}

		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	merged := mergeCandidates(candidates)

	order := make([]string, 0, len(merged))
	byID := make(map[string]models.UtilityRecord, len(merged))
	for _, c := range merged {
		byID[c.id] = r.build(state, c.id, c.name, c.item, known)
		order = append(order, c.id)
	}

	// Second-chance pass: every known major utility absent from the
	// geographic results gets a direct-name lookup, and a synthesized
	// reference-data record if even that comes back empty.
	for _, k := range known {
		if k.Customers == 0 {
			continue
		}
		if covered(k.Name, byID) {
			continue
		}

		r.logger.WithFields(logrus.Fields{
			"state":   state,
			"utility": k.Name,
		}).Info("known utility missing from geographic results, searching directly")

		items, err := r.source.QueryUtility(ctx, k.Name)
		if err != nil {
			r.logger.WithFields(logrus.Fields{
				"state":   state,
				"utility": k.Name,
			}).WithError(err).Warn("direct utility lookup failed")
			items = nil
		}

		var rec models.UtilityRecord
		if len(items) > 0 {
			item := items[0]
			rec = r.build(state, utilityID(item.EIAID, k.Name), k.Name, item, known)
		} else {
			rec = r.synthesize(state, k)
		}
		if _, ok := byID[rec.UtilityID]; !ok {
			order = append(order, rec.UtilityID)
		}
		byID[rec.UtilityID] = rec

		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	records := make([]models.UtilityRecord, 0, len(order))
	for _, id := range order {
		records = append(records, byID[id])
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CustomerCount > records[j].CustomerCount
	})
	return records, nil
}

// mergeCandidates reduces the candidate sequence to one entry per utility
// id: a later candidate supersedes the held one only when its effective
// start date is strictly newer; ties keep the first-seen candidate. First
// encounter order is preserved.
func mergeCandidates(candidates []candidate) []candidate {
	index := make(map[string]int, len(candidates))
	merged := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		i, ok := index[c.id]
		if !ok {
			index[c.id] = len(merged)
			merged = append(merged, c)
			continue
		}
		if c.item.StartDate > merged[i].item.StartDate {
			merged[i] = c
		}
	}
	return merged
}

// build assembles a UtilityRecord from one raw item plus reference data.
func (r *Reconciler) build(state, id, name string, item models.RawRateItem, known []reference.KnownUtility) models.UtilityRecord {
	avgRate, ok := extract.AverageRate(item)
	if !ok || avgRate < 0.01 || avgRate > 1.0 {
		// Missing or implausible: substitute the state average rather
		// than surface the raw value.
		avgRate = r.tables.AvgRate(state)
	}

	structure := extract.ClassifyStructure(item)
	policy := r.tables.Policy(state)

	return models.UtilityRecord{
		UtilityID:          id,
		UtilityName:        name,
		State:              state,
		StatesServed:       []string{state},
		Type:               extract.ClassifyUtilityType(name),
		CustomerCount:      lookupCustomers(name, known),
		ResidentialAvgRate: round4(avgRate),
		RateStructure:      structure,
		HasNetMetering:     policy.HasNetMetering,
		NetMeteringType:    policy.NetMeteringType,
		ExportRate:         policy.ExportRate,
		TOUAvailable:       structure == models.RateStructureTOU,
		DemandCharges:      extract.HasDemandCharges(item),
		UpdatedAt:          r.now().Format("2006-01-02"),
		StartDate:          item.StartDate,
		RateName:           item.Name,
		RateSource:         item.Source,
	}
}

// synthesize builds a reference-data-only record for a known utility that
// neither geographic nor direct queries could find, so every major
// utility is always represented.
func (r *Reconciler) synthesize(state string, k reference.KnownUtility) models.UtilityRecord {
	policy := r.tables.Policy(state)
	return models.UtilityRecord{
		UtilityID:          utilityID(0, k.Name),
		UtilityName:        k.Name,
		State:              state,
		StatesServed:       []string{state},
		Type:               extract.ClassifyUtilityType(k.Name),
		CustomerCount:      k.Customers,
		ResidentialAvgRate: round4(r.tables.AvgRate(state)),
		RateStructure:      models.RateStructureTiered,
		HasNetMetering:     policy.HasNetMetering,
		NetMeteringType:    policy.NetMeteringType,
		ExportRate:         policy.ExportRate,
		TOUAvailable:       false,
		DemandCharges:      false,
		UpdatedAt:          r.now().Format("2006-01-02"),
		RateName:           "Estimated",
		RateSource:         "EIA-861",
	}
}

// lookupCustomers resolves a customer count by exact name, then by
// case-insensitive substring match in either direction.
func lookupCustomers(name string, known []reference.KnownUtility) int {
	for _, k := range known {
		if k.Name == name {
			if k.Customers != 0 {
				return k.Customers
			}
			break
		}
	}
	lower := strings.ToLower(name)
	for _, k := range known {
		knownLower := strings.ToLower(k.Name)
		if strings.Contains(lower, knownLower) || strings.Contains(knownLower, lower) {
			return k.Customers
		}
	}
	return 0
}

// covered reports whether a known utility name substring-matches any
// accumulated record name, in either direction.
func covered(name string, byID map[string]models.UtilityRecord) bool {
	lower := strings.ToLower(name)
	for _, rec := range byID {
		recLower := strings.ToLower(rec.UtilityName)
		if strings.Contains(recLower, lower) || strings.Contains(lower, recLower) {
			return true
		}
	}
	return false
}

// utilityNamespace seeds deterministic IDs for utilities the API knows by
// name but not by EIA ID.
var utilityNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("usurdb.openei.org"))

func utilityID(eiaID int64, name string) string {
	if eiaID != 0 {
		return strconv.FormatInt(eiaID, 10)
	}
	return uuid.NewSHA1(utilityNamespace, []byte(name)).String()
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
