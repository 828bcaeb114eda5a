// Package catalog provides roundtrip catalog sources: a JSON file loader and
// a snapshot cache decorator backed by Redis.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ticket-search/roundtrip-analyzer/internal/domain"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/logger"
	"github.com/ticket-search/roundtrip-analyzer/internal/infrastructure/timeutil"
)

// FileProviderName identifies the JSON file catalog in logs and errors.
const FileProviderName = "file"

// idNamespace seeds deterministic IDs for entries published without one.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("roundtrip-analyzer/catalog"))

// dateTimeLayouts are tried in order; values without an offset use the catalog timezone.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// FileOptions configures a FileProvider.
type FileOptions struct {
	// Location is the timezone of the timetable; nil means UTC
	Location *time.Location

	// Logger receives warnings about skipped entries; nil disables them
	Logger *logger.Logger
}

// FileProvider reads the full catalog from a JSON file on every call.
type FileProvider struct {
	path string
	loc  *time.Location
	log  *logger.Logger
}

// NewFileProvider creates a provider for the catalog file at path.
func NewFileProvider(path string, opts FileOptions) *FileProvider {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &FileProvider{
		path: path,
		loc:  loc,
		log:  log.WithCatalog(FileProviderName),
	}
}

// Name implements domain.CatalogProvider.
func (p *FileProvider) Name() string {
	return FileProviderName
}

// All implements domain.CatalogProvider.
// A missing or undecodable file is a permanent failure; other read errors are retryable.
func (p *FileProvider) All(ctx context.Context) ([]domain.Roundtrip, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewCatalogError(FileProviderName, err)
	}

	raw, err := os.ReadFile(p.path)
	if err != nil {
		err = fmt.Errorf("read %s: %w", p.path, err)
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewCatalogError(FileProviderName, err)
		}
		return nil, domain.NewRetryableCatalogError(FileProviderName, err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, domain.NewCatalogError(FileProviderName, fmt.Errorf("%w: %v", domain.ErrMalformedCatalog, err))
	}

	roundtrips := make([]domain.Roundtrip, 0, len(file.Roundtrips))
	for i, entry := range file.Roundtrips {
		rt, err := entry.toDomain(p.loc)
		if err != nil {
			p.log.Warn().Err(err).Int("index", i).Str("id", entry.ID).Msg("Skipping catalog entry")
			continue
		}
		roundtrips = append(roundtrips, rt)
	}

	return roundtrips, nil
}

// catalogFile is the on-disk catalog document.
type catalogFile struct {
	Roundtrips []fileRoundtrip `json:"roundtrips"`
}

type fileRoundtrip struct {
	ID                string      `json:"id"`
	TotalCost         float64     `json:"totalCost"`
	Route             fileRoute   `json:"route"`
	OriginatingTicket fileTicket  `json:"originatingTicket"`
	ReturningTicket   *fileTicket `json:"returningTicket"`
}

type fileRoute struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type fileTicket struct {
	DateTime string  `json:"datetime"`
	Train    string  `json:"train"`
	Cost     float64 `json:"cost"`
}

// toDomain converts an entry, deriving date, weekday and month from the departure time.
func (f fileRoundtrip) toDomain(loc *time.Location) (domain.Roundtrip, error) {
	route := domain.Route{
		From: strings.ToUpper(strings.TrimSpace(f.Route.From)),
		To:   strings.ToUpper(strings.TrimSpace(f.Route.To)),
	}
	if route.From == "" || route.To == "" {
		return domain.Roundtrip{}, errors.New("route must name both stations")
	}

	outbound, err := f.OriginatingTicket.toDomain(loc)
	if err != nil {
		return domain.Roundtrip{}, fmt.Errorf("originating ticket: %w", err)
	}

	var inbound *domain.Ticket
	if f.ReturningTicket != nil {
		t, err := f.ReturningTicket.toDomain(loc)
		if err != nil {
			return domain.Roundtrip{}, fmt.Errorf("returning ticket: %w", err)
		}
		inbound = &t
	}

	total := f.TotalCost
	if total == 0 {
		total = outbound.Cost
		if inbound != nil {
			total += inbound.Cost
		}
	}
	if total < 0 {
		return domain.Roundtrip{}, fmt.Errorf("negative total cost %v", total)
	}

	departure := outbound.DateTime
	rt := domain.Roundtrip{
		ID:                strings.TrimSpace(f.ID),
		TotalCost:         total,
		OriginatingTicket: outbound,
		ReturningTicket:   inbound,
		Route:             route,
		Weekday:           domain.WeekdayOf(departure),
		Month:             int(departure.Month()) - 1,
	}
	if rt.ID == "" {
		rt.ID = deriveID(rt)
	}
	return rt, nil
}

func (f fileTicket) toDomain(loc *time.Location) (domain.Ticket, error) {
	t, err := timeutil.ParseInLocation(strings.TrimSpace(f.DateTime), loc, dateTimeLayouts...)
	if err != nil {
		return domain.Ticket{}, err
	}
	t = t.In(loc)
	return domain.Ticket{
		Date:     domain.NewDate(t),
		DateTime: t,
		Train:    f.Train,
		Cost:     f.Cost,
	}, nil
}

// deriveID builds a stable ID from the fields that identify a roundtrip.
func deriveID(rt domain.Roundtrip) string {
	parts := []string{
		rt.Route.String(),
		rt.OriginatingTicket.DateTime.UTC().Format(time.RFC3339),
		rt.OriginatingTicket.Train,
		strconv.FormatFloat(rt.TotalCost, 'f', -1, 64),
	}
	if rt.ReturningTicket != nil {
		parts = append(parts, rt.ReturningTicket.DateTime.UTC().Format(time.RFC3339), rt.ReturningTicket.Train)
	}
	return uuid.NewSHA1(idNamespace, []byte(strings.Join(parts, "|"))).String()
}

var _ domain.CatalogProvider = (*FileProvider)(nil)
