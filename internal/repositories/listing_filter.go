package repositories

import (
	"net/url"
	"strconv"
	"time"

	"github.com/Keyroamos/hunt/internal/models"
	"github.com/google/uuid"
)

// NewListedWindow is how far back the "newly listed" filter reaches.
const NewListedWindow = 14 * 24 * time.Hour

// Boolean query params are recognized only when they match one of these.
var truthyParams = map[string]bool{"true": true, "1": true, "True": true}

// BoundingBox restricts results to a map viewport.
type BoundingBox struct {
	LatMin float64
	LatMax float64
	LngMin float64
	LngMax float64
}

// ListingFilter is the typed form of the listing search query. Zero/nil
// fields mean "filter not applied".
type ListingFilter struct {
	OwnerID           *uuid.UUID // "mine" mode: all of the owner's listings
	PublishedOnly     bool
	BBox              *BoundingBox
	PropertyType      string
	Location          string // case-insensitive substring match
	MinPrice          *float64
	MaxPrice          *float64
	MinBedrooms       *int
	VerifiedOwnerOnly bool
	PromotedOnly      bool
	Status            string
	CreatedAfter      *time.Time
	Limit             int
}

// ParseListingFilter converts raw query parameters into a ListingFilter.
// Malformed numeric input never raises: the filter is simply dropped, so an
// invalid value is indistinguishable from "no filter requested".
//
// When owner is non-nil the caller asked for "mine" mode: the result covers
// all of that owner's listings regardless of status or publication. Everyone
// else sees published listings only, defaulting to status "active".
func ParseListingFilter(q url.Values, owner *uuid.UUID) ListingFilter {
	f := ListingFilter{}

	if owner != nil {
		f.OwnerID = owner
	} else {
		f.PublishedOnly = true
		f.Status = string(models.ListingStatusActive)
		if _, present := q["status"]; present {
			f.Status = q.Get("status")
		}
	}

	// Bounding box applies only when all four edges parse.
	latMin, e1 := strconv.ParseFloat(q.Get("lat_min"), 64)
	latMax, e2 := strconv.ParseFloat(q.Get("lat_max"), 64)
	lngMin, e3 := strconv.ParseFloat(q.Get("lng_min"), 64)
	lngMax, e4 := strconv.ParseFloat(q.Get("lng_max"), 64)
	if e1 == nil && e2 == nil && e3 == nil && e4 == nil {
		f.BBox = &BoundingBox{LatMin: latMin, LatMax: latMax, LngMin: lngMin, LngMax: lngMax}
	}

	f.PropertyType = q.Get("property_type")
	f.Location = q.Get("location")

	if v := q.Get("min_price"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &parsed
		}
	}
	if v := q.Get("max_price"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &parsed
		}
	}
	if v := q.Get("bedrooms"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			f.MinBedrooms = &parsed
		}
	}

	f.VerifiedOwnerOnly = truthyParams[q.Get("verified_only")]
	f.PromotedOnly = truthyParams[q.Get("promoted_only")]

	if truthyParams[q.Get("newly_listed")] {
		cutoff := time.Now().Add(-NewListedWindow)
		f.CreatedAfter = &cutoff
	}

	return f
}

// buildSearchQuery renders the filter into SQL. Ordering is fixed: promoted
// listings first, then newest first.
func buildSearchQuery(f ListingFilter) (string, []interface{}) {
	sql := baseSelectListing()
	var args []interface{}

	next := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	sql += " WHERE 1=1"
	if f.OwnerID != nil {
		sql += " AND l.owner_id = " + next(*f.OwnerID)
	}
	if f.PublishedOnly {
		sql += " AND l.is_published = TRUE"
	}
	if f.BBox != nil {
		sql += " AND l.latitude >= " + next(f.BBox.LatMin)
		sql += " AND l.latitude <= " + next(f.BBox.LatMax)
		sql += " AND l.longitude >= " + next(f.BBox.LngMin)
		sql += " AND l.longitude <= " + next(f.BBox.LngMax)
	}
	if f.PropertyType != "" {
		sql += " AND l.property_type = " + next(f.PropertyType)
	}
	if f.Location != "" {
		sql += " AND l.location ILIKE " + next("%"+f.Location+"%")
	}
	if f.MinPrice != nil {
		sql += " AND l.rent_per_month >= " + next(*f.MinPrice)
	}
	if f.MaxPrice != nil {
		sql += " AND l.rent_per_month <= " + next(*f.MaxPrice)
	}
	if f.MinBedrooms != nil {
		sql += " AND l.bedrooms >= " + next(*f.MinBedrooms)
	}
	if f.VerifiedOwnerOnly {
		sql += " AND EXISTS (SELECT 1 FROM users u WHERE u.id = l.owner_id AND u.is_verified = TRUE)"
	}
	if f.PromotedOnly {
		sql += " AND l.is_promoted = TRUE"
	}
	if f.Status != "" {
		sql += " AND l.status = " + next(f.Status)
	}
	if f.CreatedAfter != nil {
		sql += " AND l.created_at >= " + next(*f.CreatedAfter)
	}

	sql += " ORDER BY l.is_promoted DESC, l.created_at DESC"
	if f.Limit > 0 {
		sql += " LIMIT " + next(f.Limit)
	}
	return sql, args
}
